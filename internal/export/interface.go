package export

import (
	"fmt"
	"io"

	"github.com/iksnae/session-history/internal"
)

// Exporter defines the interface for all report formats
type Exporter interface {
	Export(report *internal.Report, w io.Writer) error
	Extension() string
}

// NewExporter creates a new exporter based on format
func NewExporter(format string) (Exporter, error) {
	switch format {
	case "", "text", "txt":
		return &TextExporter{}, nil
	case "jsonl":
		return &JSONLExporter{}, nil
	case "md", "markdown":
		return &MarkdownExporter{}, nil
	case "yaml", "yml":
		return &YAMLExporter{}, nil
	case "json":
		return &JSONExporter{}, nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: text, md, json, jsonl, yaml)", format)
	}
}

// document is the machine-readable shape of a report
type document struct {
	Date          string                  `json:"date" yaml:"date"`
	TotalProjects int                     `json:"total_projects" yaml:"total_projects"`
	TotalSessions int                     `json:"total_sessions" yaml:"total_sessions"`
	Projects      []internal.ProjectGroup `json:"projects" yaml:"projects"`
}

func newDocument(report *internal.Report) document {
	projects := report.Projects
	if projects == nil {
		projects = []internal.ProjectGroup{}
	}
	return document{
		Date:          report.Date,
		TotalProjects: report.ProjectCount(),
		TotalSessions: report.SessionCount(),
		Projects:      projects,
	}
}
