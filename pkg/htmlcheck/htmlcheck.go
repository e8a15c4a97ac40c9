// Package htmlcheck reports which CSS selectors from a checks file are present
// in an HTML document. It is the embeddable counterpart of the htmlcheck
// command and never prints or exits.
package htmlcheck

import (
	"github.com/PuerkitoBio/goquery"

	"github.com/Devon-White/htmlcheck/internal/checker"
	"github.com/Devon-White/htmlcheck/internal/checks"
	"github.com/Devon-White/htmlcheck/internal/document"
)

// Result maps each selector to whether the document contains a match.
type Result = checker.Result

// Errors callers may test for with errors.Is.
var (
	ErrChecksNotFound  = checks.ErrNotFound
	ErrHTMLNotFound    = document.ErrNotFound
	ErrParse           = checks.ErrParse // the checks file is not a list of selectors
	ErrHTMLParse       = document.ErrParse
	ErrInvalidSelector = checker.ErrInvalidSelector
)

// CheckHTMLFile runs the selectors in checksFile against the HTML file at htmlFile.
func CheckHTMLFile(htmlFile, checksFile string) (Result, error) {
	doc, err := document.FromFile(htmlFile)
	if err != nil {
		return nil, err
	}
	return checkDocument(doc, checksFile)
}

// CheckHTMLString runs the selectors in checksFile against an HTML string.
func CheckHTMLString(html, checksFile string) (Result, error) {
	doc, err := document.FromString(html)
	if err != nil {
		return nil, err
	}
	return checkDocument(doc, checksFile)
}

func checkDocument(doc *goquery.Document, checksFile string) (Result, error) {
	selectors, err := checks.Load(checksFile)
	if err != nil {
		return nil, err
	}
	return checker.Check(doc, selectors)
}
