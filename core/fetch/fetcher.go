// Package fetch implements the Fetcher interface.
// It reads HTML over HTTP with sensible defaults, from local files, or from stdin.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"

	"github.com/gaurav-prasanna/richtext/core"
)

const (
	defaultTimeout   = 30 * time.Second
	defaultUserAgent = "richtext/1.0 (https://github.com/gaurav-prasanna/richtext)"
)

// Stdin is the source name that reads HTML from standard input.
const Stdin = "-"

// HTTPFetcher fetches web pages via HTTP.
type HTTPFetcher struct {
	client *http.Client
}

// New creates an HTTPFetcher with a sensible timeout.
func New() *HTTPFetcher {
	return &HTTPFetcher{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Fetch GETs source and returns the body of a 2xx response.
func (f *HTTPFetcher) Fetch(ctx context.Context, source string) (*core.FetchResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, source, nil)
	if err != nil {
		return nil, fmt.Errorf("requesting %s: %w", source, err)
	}
	req.Header.Set("User-Agent", defaultUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("unexpected status %d for %s", resp.StatusCode, source)
	}
	return readResult(source, resp.StatusCode, resp.Body)
}

// FileFetcher reads HTML from the filesystem, or from In for Stdin.
type FileFetcher struct {
	In io.Reader
}

// NewFile creates a FileFetcher reading stdin from os.Stdin.
func NewFile() *FileFetcher {
	return &FileFetcher{In: os.Stdin}
}

// Fetch reads the named file, or all of In when path is Stdin.
func (f *FileFetcher) Fetch(ctx context.Context, path string) (*core.FetchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if path == Stdin {
		return readResult(path, 0, f.In)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer file.Close()
	return readResult(path, 0, file)
}

// readResult drains r into a FetchResult. Local sources have no status.
func readResult(source string, status int, r io.Reader) (*core.FetchResult, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}
	return &core.FetchResult{
		Source:     source,
		StatusCode: status,
		HTML:       string(body),
	}, nil
}

// IsURL reports whether source names an http(s) URL.
func IsURL(source string) bool {
	parsed, err := url.Parse(source)
	if err != nil {
		return false
	}
	return (parsed.Scheme == "http" || parsed.Scheme == "https") && parsed.Host != ""
}

// ForSource picks the fetcher matching a source: HTTP for URLs, files otherwise.
func ForSource(source string) core.Fetcher {
	if IsURL(source) {
		return New()
	}
	return NewFile()
}
