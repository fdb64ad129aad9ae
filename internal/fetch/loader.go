package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// PageFetcher fetches a URL and returns the page HTML. The plain HTTP
// path is built into the Loader; this is the hook for the rendered path.
type PageFetcher interface {
	FetchPage(ctx context.Context, url string) (string, error)
}

// Loader turns a source identifier into raw HTML text. A source with an
// http/https scheme is fetched over the network, anything else is read
// as a local file.
type Loader struct {
	UserAgent string
	Timeout   time.Duration

	// Policy applies robots.txt and per-host rate limiting to network
	// fetches. Optional; nil skips both.
	Policy *HostPolicy

	// Renderer, when set, replaces the plain HTTP fetch with a
	// headless-browser fetch.
	Renderer PageFetcher
}

func (l *Loader) Load(ctx context.Context, source string) (string, error) {
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		return l.fetchURL(ctx, source)
	}

	data, err := os.ReadFile(source)
	if err != nil {
		return "", fmt.Errorf("read source file: %w", err)
	}
	return string(data), nil
}

func (l *Loader) fetchURL(ctx context.Context, target string) (string, error) {
	if l.Policy != nil {
		if !l.Policy.IsAllowed(target) {
			return "", fmt.Errorf("fetch %s: disallowed by robots.txt", target)
		}
		if err := l.Policy.Wait(ctx, target); err != nil {
			return "", err
		}
	}

	if l.Renderer != nil {
		return l.Renderer.FetchPage(ctx, target)
	}

	client := http.Client{Timeout: l.Timeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", l.UserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", target, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("fetch %s: unexpected status %d", target, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("read body: %w", err)
	}
	return string(body), nil
}
