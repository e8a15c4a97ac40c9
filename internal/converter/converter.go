package converter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
)

// removeTags are HTML tags that should be stripped entirely during conversion.
var removeTags = []string{
	"script", "style", "noscript", "iframe",
}

var (
	multiBlankLines = regexp.MustCompile(`\n{3,}`)
	whitespaceRun   = regexp.MustCompile(`\s+`)
)

// ConvertHTML converts an HTML fragment to markdown.
func ConvertHTML(fragment string) (string, error) {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)

	for _, tag := range removeTags {
		conv.Register.TagType(tag, converter.TagTypeRemove, converter.PriorityStandard)
	}

	md, err := conv.ConvertString(fragment)
	if err != nil {
		return "", fmt.Errorf("html-to-markdown conversion: %w", err)
	}

	return CleanMarkdown(md), nil
}

// Snippet renders fragment as a single line of markdown of at most maxRunes
// runes, for use inside a table cell.
func Snippet(fragment string, maxRunes int) (string, error) {
	md, err := ConvertHTML(fragment)
	if err != nil {
		return "", err
	}

	md = whitespaceRun.ReplaceAllString(md, " ")
	md = strings.ReplaceAll(md, "|", `\|`)

	runes := []rune(md)
	if maxRunes > 0 && len(runes) > maxRunes {
		md = strings.TrimSpace(string(runes[:maxRunes])) + "…"
	}
	return md, nil
}

// CleanMarkdown normalizes whitespace in markdown output.
func CleanMarkdown(md string) string {
	// Collapse 3+ blank lines to 2
	md = multiBlankLines.ReplaceAllString(md, "\n\n")

	lines := strings.Split(md, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	md = strings.Join(lines, "\n")

	return strings.TrimSpace(md)
}
