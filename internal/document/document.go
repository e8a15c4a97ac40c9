// Package document loads HTML into a queryable goquery document, either from
// disk or over HTTP.
package document

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dustin/go-humanize"

	"github.com/Devon-White/htmlcheck/internal/fetcher"
)

var (
	// ErrNotFound is returned when the HTML file does not exist.
	ErrNotFound = errors.New("html file not found")

	// ErrParse is returned when the markup cannot be parsed.
	ErrParse = errors.New("parsing html")
)

// FromReader parses HTML read from r.
func FromReader(r io.Reader) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParse, err)
	}
	return doc, nil
}

// FromString parses an HTML string.
func FromString(html string) (*goquery.Document, error) {
	return FromReader(strings.NewReader(html))
}

// FromFile reads and parses a local HTML file.
func FromFile(path string) (*goquery.Document, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc, err := FromReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// FromURL fetches url with f and parses the response body.
func FromURL(ctx context.Context, f *fetcher.Fetcher, url string, logger *slog.Logger) (*goquery.Document, error) {
	logger.Info("Fetching document", "url", url)

	body, err := f.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	logger.Debug("Fetched document", "url", url, "size", humanize.Bytes(uint64(len(body))))

	doc, err := FromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", url, err)
	}
	return doc, nil
}
