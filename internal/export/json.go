package export

import (
	"encoding/json"
	"io"

	"github.com/iksnae/session-history/internal"
)

// JSONExporter exports reports in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports a report to JSON format
func (e *JSONExporter) Export(report *internal.Report, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(newDocument(report))
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
