package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/iksnae/session-history/internal"
)

// JSONLExporter exports reports in JSONL format (one session per line)
type JSONLExporter struct{}

// Export exports a report to JSONL format
func (e *JSONLExporter) Export(report *internal.Report, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, project := range report.Projects {
		for _, entry := range project.Entries {
			obj := map[string]interface{}{
				"date":    report.Date,
				"project": project.Name,
				"time":    entry.Time,
				"message": entry.Message,
			}
			if entry.SessionID != "" {
				obj["session_id"] = entry.SessionID
			}

			if err := enc.Encode(obj); err != nil {
				return fmt.Errorf("failed to encode entry: %w", err)
			}
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
