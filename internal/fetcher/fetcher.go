package fetcher

import (
	"bytes"
	"compress/gzip"
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"time"

	"golang.org/x/net/html/charset"
)

// MaxBodySize is the largest response body accepted; larger bodies fail
// with ErrTooLarge rather than being checked partially.
const MaxBodySize = 10 << 20

// Fetcher wraps an HTTP client with a timeout, User-Agent, gzip and charset support.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a Fetcher with the given User-Agent and request timeout.
func New(userAgent string, timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{
			Timeout: timeout,
		},
		userAgent: userAgent,
	}
}

// Fetch retrieves the body of the given URL as UTF-8. It decompresses gzip
// responses and transcodes bodies declared in another charset.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %v", ErrNetwork, err)
	}
	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept-Encoding", "gzip")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, classify(url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("%w: HTTP %d for %s", ErrStatus, resp.StatusCode, url)
	}

	var reader io.Reader = resp.Body

	if resp.Header.Get("Content-Encoding") == "gzip" {
		gz, err := gzip.NewReader(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("%w: decompressing gzip response from %s: %v", ErrNetwork, url, err)
		}
		defer gz.Close()
		reader = gz
	}

	raw, err := io.ReadAll(io.LimitReader(reader, MaxBodySize+1))
	if err != nil {
		return nil, classify(url, err)
	}
	if len(raw) > MaxBodySize {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, url, MaxBodySize)
	}

	utf8Reader, err := charset.NewReader(bytes.NewReader(raw), resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: decoding charset from %s: %v", ErrNetwork, url, err)
	}

	body, err := io.ReadAll(utf8Reader)
	if err != nil {
		return nil, fmt.Errorf("%w: decoding charset from %s: %v", ErrNetwork, url, err)
	}

	return body, nil
}

// classify maps a transport error onto ErrTimeout or ErrNetwork.
func classify(url string, err error) error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return fmt.Errorf("%w: fetching %s: %v", ErrTimeout, url, err)
	}
	return fmt.Errorf("%w: fetching %s: %v", ErrNetwork, url, err)
}
