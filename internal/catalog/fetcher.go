package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// DefaultFetchTimeout bounds how long a single page fetch may take.
const DefaultFetchTimeout = 30 * time.Second

// Fetcher retrieves the rendered HTML of a catalog page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

// HTTPFetcher fetches pages over plain HTTP.
type HTTPFetcher struct {
	client *resty.Client
}

// NewHTTPFetcher creates an HTTP fetcher with the given timeout. A
// non-positive timeout falls back to DefaultFetchTimeout.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}
	client := resty.New().SetTimeout(timeout)
	return &HTTPFetcher{client: client}
}

// Fetch retrieves the page body. Non-2xx responses are errors.
func (f *HTTPFetcher) Fetch(ctx context.Context, url string) (string, error) {
	resp, err := f.client.R().SetContext(ctx).Get(url)
	if err != nil {
		return "", fmt.Errorf("fetch catalog page: %w", err)
	}
	if resp.IsError() {
		return "", fmt.Errorf("fetch catalog page: unexpected status %s", resp.Status())
	}
	return resp.String(), nil
}
