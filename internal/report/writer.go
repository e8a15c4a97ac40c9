// Package report renders check results for humans and for tools.
package report

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/Devon-White/htmlcheck/internal/checker"
)

// Summary is everything a writer needs to render one run.
type Summary struct {
	// Source is the file path or URL the document came from.
	Source string

	// Report holds the per-selector findings in sorted order.
	Report *checker.Report
}

// Writer renders a Summary to an output stream.
type Writer interface {
	Write(s *Summary) error
}

// New returns the writer for format ("json" or "markdown").
func New(format string, output io.Writer) (Writer, error) {
	switch format {
	case "json":
		return NewJSONWriter(output), nil
	case "markdown":
		return NewMarkdownWriter(output), nil
	default:
		return nil, fmt.Errorf("unknown report format %q", format)
	}
}

// WriteFile renders s with the given format into path, creating parent
// directories as needed.
func WriteFile(path, format string, s *Summary) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", path, err)
		}
	}

	f, err := os.Create(path) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	w, err := New(format, f)
	if err != nil {
		f.Close()
		return err
	}
	if err := w.Write(s); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
