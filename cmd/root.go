package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Devon-White/htmlcheck/internal/config"
	"github.com/Devon-White/htmlcheck/internal/pipeline"
	"github.com/spf13/cobra"
)

// NewRootCmd builds the htmlcheck command with its flags bound to a fresh Config.
func NewRootCmd() *cobra.Command {
	var cfg config.Config

	rootCmd := &cobra.Command{
		Use:   "htmlcheck",
		Short: "Check an HTML page for the presence of CSS selectors",
		Long: `htmlcheck loads a list of CSS selectors from a checks file and reports,
as JSON, whether each one matches at least one element of an HTML document.

The document is read from a local file (--file) or fetched over HTTP (--url);
--url takes precedence when both are given. Checks files may be JSON (the
default), YAML (.yaml/.yml) or TOML (.toml, with a "checks" array).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &cfg)
		},
	}

	rootCmd.Flags().StringVarP(&cfg.ChecksFile, "checks", "c", config.DefaultChecksFile, "path to the checks file")
	rootCmd.Flags().StringVarP(&cfg.HTMLFile, "file", "f", config.DefaultHTMLFile, "path to the HTML file")
	rootCmd.Flags().StringVarP(&cfg.URL, "url", "u", "", "URL to read the HTML from (overrides --file)")
	rootCmd.Flags().DurationVar(&cfg.Timeout, "timeout", config.DefaultTimeout, "HTTP request timeout for --url")
	rootCmd.Flags().StringVar(&cfg.UserAgent, "user-agent", config.DefaultUserAgent, "custom User-Agent string")
	rootCmd.Flags().StringVar(&cfg.Format, "format", config.FormatJSON, "report format: json or markdown")
	rootCmd.Flags().StringVarP(&cfg.Output, "output", "o", "", "write the report to this file instead of stdout")
	rootCmd.Flags().BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose logging")

	return rootCmd
}

func run(cmd *cobra.Command, cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		var nf *config.NotFoundError
		if errors.As(err, &nf) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s does not exist.  Exiting.\n", nf.Path)
		}
		return err
	}

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer cancel()

	logger := newLogger(cmd.ErrOrStderr(), cfg.Verbose)
	return pipeline.Run(ctx, cfg, cmd.OutOrStdout(), logger)
}

func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// Execute runs the root command. Missing input files have already been
// reported on stdout; every other error is printed to stderr.
func Execute() error {
	err := NewRootCmd().ExecuteContext(context.Background())
	if err != nil && !errors.Is(err, config.ErrNotFound) {
		fmt.Fprintln(os.Stderr, "Error:", err)
	}
	return err
}
