// Package checker tests a parsed document for the presence of CSS selectors.
package checker

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
)

// ErrInvalidSelector is returned when a selector cannot be compiled.
var ErrInvalidSelector = errors.New("invalid selector")

// Result maps each selector to whether at least one element matched it.
type Result map[string]bool

// Finding is the outcome of a single selector.
type Finding struct {
	Selector  string
	Present   bool
	Count     int
	FirstHTML string // outer HTML of the first match, empty when absent
}

// Report holds findings in sorted selector order, one per distinct selector.
type Report struct {
	Findings []Finding
}

// Result projects the report onto the selector to presence mapping.
func (r *Report) Result() Result {
	out := make(Result, len(r.Findings))
	for _, f := range r.Findings {
		out[f.Selector] = f.Present
	}
	return out
}

// Matched returns how many selectors were present.
func (r *Report) Matched() int {
	n := 0
	for _, f := range r.Findings {
		if f.Present {
			n++
		}
	}
	return n
}

// Check reports, for each selector, whether doc contains a matching element.
func Check(doc *goquery.Document, selectors []string) (Result, error) {
	report, err := Inspect(doc, selectors)
	if err != nil {
		return nil, err
	}
	return report.Result(), nil
}

// Inspect evaluates selectors against doc in sorted order. The selectors
// slice is not modified. A repeated selector overwrites its earlier finding.
func Inspect(doc *goquery.Document, selectors []string) (*Report, error) {
	sorted := slices.Clone(selectors)
	slices.Sort(sorted)

	report := &Report{Findings: make([]Finding, 0, len(sorted))}
	index := make(map[string]int, len(sorted))

	for _, sel := range sorted {
		finding, err := inspectOne(doc, sel)
		if err != nil {
			return nil, err
		}
		if i, ok := index[sel]; ok {
			report.Findings[i] = finding
			continue
		}
		index[sel] = len(report.Findings)
		report.Findings = append(report.Findings, finding)
	}

	return report, nil
}

func inspectOne(doc *goquery.Document, sel string) (Finding, error) {
	// An empty selector matches nothing.
	if strings.TrimSpace(sel) == "" {
		return Finding{Selector: sel}, nil
	}

	matcher, err := cascadia.Compile(sel)
	if err != nil {
		return Finding{}, fmt.Errorf("%w %q: %v", ErrInvalidSelector, sel, err)
	}

	matches := doc.FindMatcher(matcher)
	finding := Finding{
		Selector: sel,
		Count:    matches.Length(),
	}
	finding.Present = finding.Count > 0

	if finding.Present {
		html, err := goquery.OuterHtml(matches.First())
		if err == nil {
			finding.FirstHTML = html
		}
	}

	return finding, nil
}
