package report

import (
	"encoding/json"
	"io"
)

// Indent is the per-level indentation of the JSON report.
const Indent = "    "

// JSONWriter prints the selector to presence mapping as indented JSON.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to the given writer.
func NewJSONWriter(output io.Writer) *JSONWriter {
	return &JSONWriter{output: output}
}

// Write outputs the mapping followed by a newline. Map keys come out in
// sorted order; selectors such as "ul > li" are written without HTML escaping.
func (w *JSONWriter) Write(s *Summary) error {
	enc := json.NewEncoder(w.output)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", Indent)
	return enc.Encode(s.Report.Result())
}
