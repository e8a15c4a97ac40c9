package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/PuerkitoBio/goquery"

	"github.com/Devon-White/htmlcheck/internal/checker"
	"github.com/Devon-White/htmlcheck/internal/checks"
	"github.com/Devon-White/htmlcheck/internal/config"
	"github.com/Devon-White/htmlcheck/internal/document"
	"github.com/Devon-White/htmlcheck/internal/fetcher"
	"github.com/Devon-White/htmlcheck/internal/report"
)

// Run executes one htmlcheck run: load the document, load the checks, run
// them, and write the report to out (or to cfg.Output when set).
// cfg must already have passed Validate.
func Run(ctx context.Context, cfg *config.Config, out io.Writer, logger *slog.Logger) error {
	doc, err := loadDocument(ctx, cfg, logger)
	if err != nil {
		return err
	}

	selectors, err := checks.Load(cfg.ChecksFile)
	if err != nil {
		return err
	}
	logger.Debug("Loaded checks", "file", cfg.ChecksFile, "count", len(selectors))

	result, err := checker.Inspect(doc, selectors)
	if err != nil {
		return err
	}
	logger.Debug("Checked selectors", "matched", result.Matched(), "total", len(result.Findings))

	summary := &report.Summary{Source: cfg.Source(), Report: result}

	if cfg.Output != "" {
		if err := report.WriteFile(cfg.Output, cfg.Format, summary); err != nil {
			return fmt.Errorf("report: %w", err)
		}
		logger.Info("Report written", "path", cfg.Output)
		return nil
	}

	w, err := report.New(cfg.Format, out)
	if err != nil {
		return err
	}
	return w.Write(summary)
}

// loadDocument reads the HTML from the URL when one is configured, otherwise
// from the local file.
func loadDocument(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*goquery.Document, error) {
	if cfg.UseURL() {
		f := fetcher.New(cfg.UserAgent, cfg.Timeout)
		return document.FromURL(ctx, f, cfg.URL, logger)
	}

	logger.Debug("Reading document", "file", cfg.HTMLFile)
	return document.FromFile(cfg.HTMLFile)
}
