package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/iksnae/session-history/internal"
)

const (
	reportRuleWidth  = 50
	projectRuleWidth = 40
)

// TextExporter renders the console report. Colors are only emitted when w is
// a terminal.
type TextExporter struct{}

// Export writes the grouped report to w
func (e *TextExporter) Export(report *internal.Report, w io.Writer) error {
	r := lipgloss.NewRenderer(w)

	headerStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("212"))

	projectStyle := r.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("62"))

	timeStyle := r.NewStyle().
		Foreground(lipgloss.Color("243"))

	ruleStyle := r.NewStyle().
		Foreground(lipgloss.Color("240"))

	countStyle := r.NewStyle().
		Foreground(lipgloss.Color("42")).
		Bold(true)

	rule := ruleStyle.Render(strings.Repeat("=", reportRuleWidth))

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(headerStyle.Render(fmt.Sprintf("📅 %s (KST) Claude Code sessions", report.Date)) + "\n")
	b.WriteString(rule + "\n")

	for _, project := range report.Projects {
		b.WriteString("\n")
		b.WriteString(projectStyle.Render("📁 "+project.Name) + "\n")
		b.WriteString(ruleStyle.Render(strings.Repeat("-", projectRuleWidth)) + "\n")

		for _, entry := range project.Entries {
			b.WriteString("  " + timeStyle.Render("["+entry.Time+"]") + " " + internal.DisplayMessage(entry.Message) + "\n")
		}
	}

	b.WriteString("\n" + rule + "\n")
	b.WriteString(countStyle.Render(report.Summary()) + "\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return &internal.ExportError{Format: "text", Err: err}
	}
	return nil
}

// Extension returns the file extension for this format
func (e *TextExporter) Extension() string {
	return "txt"
}
