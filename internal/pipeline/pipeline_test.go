package pipeline

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Devon-White/htmlcheck/internal/checker"
	"github.com/Devon-White/htmlcheck/internal/checks"
	"github.com/Devon-White/htmlcheck/internal/config"
	"github.com/Devon-White/htmlcheck/internal/fetcher"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func newConfig(dir string) *config.Config {
	return &config.Config{
		ChecksFile: filepath.Join(dir, "checks.json"),
		HTMLFile:   filepath.Join(dir, "index.html"),
		Timeout:    5 * time.Second,
		UserAgent:  config.DefaultUserAgent,
		Format:     config.FormatJSON,
	}
}

func TestRun_File(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["h1", "a[href]", "#comment-box"]`)
	writeFile(t, dir, "index.html", `<h1>Hi</h1><a href="/">home</a>`)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), newConfig(dir), &out, discardLogger()))

	assert.Equal(t, "{\n    \"#comment-box\": false,\n    \"a[href]\": true,\n    \"h1\": true\n}\n", out.String())
}

func TestRun_URL(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte("<h1>Hi</h1>"))
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["h1", "h2"]`)
	cfg := newConfig(dir)
	cfg.URL = srv.URL
	cfg.HTMLFile = filepath.Join(dir, "does-not-matter.html")

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, &out, discardLogger()))
	assert.Equal(t, "{\n    \"h1\": true,\n    \"h2\": false\n}\n", out.String())
}

func TestRun_URLFailureProducesNoOutput(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["h1"]`)
	cfg := newConfig(dir)
	cfg.URL = srv.URL

	var out bytes.Buffer
	err := Run(context.Background(), cfg, &out, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, fetcher.ErrStatus)
	assert.Empty(t, out.String())
}

func TestRun_InvalidChecks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["h1"`)
	writeFile(t, dir, "index.html", `<h1>Hi</h1>`)

	var out bytes.Buffer
	err := Run(context.Background(), newConfig(dir), &out, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, checks.ErrParse)
	assert.Empty(t, out.String())
}

func TestRun_InvalidSelector(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["h1", "div[class"]`)
	writeFile(t, dir, "index.html", `<h1>Hi</h1>`)

	err := Run(context.Background(), newConfig(dir), io.Discard, discardLogger())
	assert.ErrorIs(t, err, checker.ErrInvalidSelector)
}

func TestRun_OutputFileMarkdown(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["h1"]`)
	writeFile(t, dir, "index.html", `<h1>Hi</h1>`)
	cfg := newConfig(dir)
	cfg.Format = config.FormatMarkdown
	cfg.Output = filepath.Join(dir, "out", "report.md")

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), cfg, &out, discardLogger()))
	assert.Empty(t, out.String())

	data, err := os.ReadFile(cfg.Output)
	require.NoError(t, err)
	assert.Contains(t, string(data), "# HTML Check Report")
	assert.Contains(t, string(data), "`h1`")
}

func TestRun_OversizedPageIsAnError(t *testing.T) {
	page := "<html><body>" + strings.Repeat("x", 11<<20) + `<footer id="end"></footer></body></html>`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(page))
	}))
	defer srv.Close()

	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["#end"]`)
	cfg := newConfig(dir)
	cfg.URL = srv.URL
	cfg.Timeout = 10 * time.Second

	var out bytes.Buffer
	err := Run(context.Background(), cfg, &out, discardLogger())
	require.Error(t, err)
	assert.ErrorIs(t, err, fetcher.ErrTooLarge)
	assert.Empty(t, out.String())
}

func TestRun_EmptySelector(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "checks.json", `["", "h1"]`)
	writeFile(t, dir, "index.html", `<h1>Hi</h1>`)

	var out bytes.Buffer
	require.NoError(t, Run(context.Background(), newConfig(dir), &out, discardLogger()))
	assert.Equal(t, "{\n    \"\": false,\n    \"h1\": true\n}\n", out.String())
}
