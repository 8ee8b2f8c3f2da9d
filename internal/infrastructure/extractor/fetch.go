package extractor

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"ArticleDigest/internal/domain"
)

const (
	fetchTimeout = 30 * time.Second

	// Browser-like identity reduces anti-bot rejections on news sites.
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/108.0.0.0 Safari/537.36"
)

// fetcher retrieves raw article markup with a browser-like request identity
// and a text-oriented accept policy. Both extraction strategies share it.
type fetcher struct {
	client *http.Client
}

func newFetcher(client *http.Client) *fetcher {
	if client == nil {
		client = &http.Client{Timeout: fetchTimeout}
	}
	return &fetcher{client: client}
}

// fetch returns the response body for pageURL, or a classified
// ExtractionError. A 403-class status maps to network-blocked so the caller
// can tell an anti-bot rejection from an ordinary fetch failure.
func (f *fetcher) fetch(ctx context.Context, pageURL string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, &domain.ExtractionError{Kind: domain.ExtractNetworkFailed, Err: err}
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, &domain.ExtractionError{Kind: domain.ExtractNetworkFailed, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		resp.Body.Close()
		kind := domain.ExtractNetworkFailed
		if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
			kind = domain.ExtractNetworkBlocked
		}
		return nil, &domain.ExtractionError{
			Kind:       kind,
			StatusCode: resp.StatusCode,
			Err:        fmt.Errorf("fetch %s: %s", pageURL, resp.Status),
		}
	}

	return resp.Body, nil
}
