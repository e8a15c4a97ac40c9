package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/nao1215/markdown"

	"github.com/Devon-White/htmlcheck/internal/converter"
)

// snippetLength bounds the first-match column.
const snippetLength = 60

// MarkdownWriter prints a human-readable report with a row per selector.
type MarkdownWriter struct {
	output io.Writer
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{output: output}
}

// Write outputs the report in Markdown.
func (w *MarkdownWriter) Write(s *Summary) error {
	md := markdown.NewMarkdown(w.output)

	findings := s.Report.Findings
	matched := s.Report.Matched()

	md.H1("HTML Check Report")
	md.PlainText("")
	md.PlainText("Source: `" + s.Source + "`")
	md.PlainText("")

	switch {
	case len(findings) == 0:
		md.Note("No selectors were checked.")
	case matched == len(findings):
		md.Tip(fmt.Sprintf("All %d selectors are present.", len(findings)))
	default:
		md.Warningf("%d of %d selectors are missing.", len(findings)-matched, len(findings))
	}
	md.PlainText("")

	if len(findings) > 0 {
		rows := make([][]string, 0, len(findings))
		for _, f := range findings {
			rows = append(rows, []string{
				"`" + escapeCell(f.Selector) + "`",
				presence(f.Present),
				strconv.Itoa(f.Count),
				firstMatch(f.FirstHTML),
			})
		}
		md.Table(markdown.TableSet{
			Header: []string{"Selector", "Present", "Matches", "First match"},
			Rows:   rows,
		})
		md.PlainText("")
	}

	return md.Build()
}

func presence(ok bool) string {
	if ok {
		return "yes"
	}
	return "no"
}

func firstMatch(html string) string {
	if html == "" {
		return ""
	}
	snippet, err := converter.Snippet(html, snippetLength)
	if err != nil || snippet == "" {
		return "-"
	}
	return snippet
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
