package config

import (
	"fmt"
	"net/url"
	"os"
	"time"
)

// Defaults applied by the CLI flags.
const (
	DefaultChecksFile = "checks.json"
	DefaultHTMLFile   = "index.html"
	DefaultTimeout    = 30 * time.Second
	DefaultUserAgent  = "htmlcheck/1.0"
)

// Report formats accepted by --format.
const (
	FormatJSON     = "json"
	FormatMarkdown = "markdown"
)

// Config holds all CLI options for an htmlcheck run.
type Config struct {
	ChecksFile string
	HTMLFile   string
	URL        string // when set, HTMLFile is ignored
	Timeout    time.Duration
	UserAgent  string
	Format     string
	Output     string // empty = stdout
	Verbose    bool
}

// UseURL reports whether the document should be fetched instead of read from disk.
func (c *Config) UseURL() bool {
	return c.URL != ""
}

// Source returns the location the HTML document is loaded from.
func (c *Config) Source() string {
	if c.UseURL() {
		return c.URL
	}
	return c.HTMLFile
}

// Validate checks the parsed options. Missing local files are reported as a
// *NotFoundError wrapping ErrNotFound so the caller can print the path.
func (c *Config) Validate() error {
	if err := assertFileExists(c.ChecksFile); err != nil {
		return err
	}
	if c.UseURL() {
		u, err := url.Parse(c.URL)
		if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
			return fmt.Errorf("%w: %q", ErrInvalidURL, c.URL)
		}
	} else if err := assertFileExists(c.HTMLFile); err != nil {
		return err
	}
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}
	switch c.Format {
	case FormatJSON, FormatMarkdown:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidFormat, c.Format)
	}
	return nil
}

func assertFileExists(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return &NotFoundError{Path: path}
		}
		return fmt.Errorf("checking %s: %w", path, err)
	}
	return nil
}
