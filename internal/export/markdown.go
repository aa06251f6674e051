package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/iksnae/session-history/internal"
)

// MarkdownExporter exports reports in Markdown format
type MarkdownExporter struct{}

// Export exports a report to Markdown format
func (e *MarkdownExporter) Export(report *internal.Report, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Claude Code sessions for %s (KST)\n\n", report.Date)

	for _, project := range report.Projects {
		_, _ = fmt.Fprintf(w, "## %s\n\n", project.Name)
		for _, entry := range project.Entries {
			_, _ = fmt.Fprintf(w, "- **%s** %s\n", entry.Time, escapeMarkdown(entry.Message))
		}
		_, _ = fmt.Fprintln(w)
	}

	_, _ = fmt.Fprintf(w, "---\n\n")
	_, err := fmt.Fprintf(w, "**Total:** %s\n", report.Summary())
	return err
}

// escapeMarkdown escapes markdown emphasis in single-line text
func escapeMarkdown(text string) string {
	text = strings.ReplaceAll(text, "**", "\\*\\*")
	text = strings.ReplaceAll(text, "__", "\\_\\_")
	return text
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
