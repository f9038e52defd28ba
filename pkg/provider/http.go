package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"time"

	"github.com/umputun/newsdeck/pkg/domain"
)

// maxResponseSize limits provider response bodies
const maxResponseSize = 8 * 1024 * 1024

// acceptLanguages contains common browser Accept-Language values
var acceptLanguages = []string{
	"en-US,en;q=0.9",
	"en-GB,en;q=0.9",
	"en-US,en;q=0.9,es;q=0.8",
	"en-US,en;q=0.9,fr;q=0.8",
}

// NewHTTPClient makes the client shared by all adapters
func NewHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			MaxIdleConnsPerHost: 10,
			IdleConnTimeout:     90 * time.Second,
		},
	}
}

// get performs GET request and returns the body of a 2xx response.
// Transport failures and non-2xx statuses are returned as *domain.ProviderError.
func (b *base) get(ctx context.Context, reqURL string, headers map[string]string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, http.NoBody)
	if err != nil {
		return nil, &domain.ProviderError{Provider: string(b.id), Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("User-Agent", "newsdeck/1.0")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return nil, &domain.ProviderError{Provider: string(b.id), Err: fmt.Errorf("do request: %w", err)}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, &domain.ProviderError{Provider: string(b.id), Err: fmt.Errorf("read body: %w", err)}
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, domain.NewStatusError(string(b.id), resp.StatusCode, body)
	}
	return body, nil
}

// getJSON performs GET request and decodes JSON response into dst
func (b *base) getJSON(ctx context.Context, reqURL string, headers map[string]string, dst any) error {
	if headers == nil {
		headers = map[string]string{}
	}
	headers["Accept"] = "application/json"
	body, err := b.get(ctx, reqURL, headers)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return &domain.ProviderError{Provider: string(b.id), Err: fmt.Errorf("%w: %v", domain.ErrMalformedPayload, err)}
	}
	return nil
}

// feedHeaders returns browser-like headers for RSS fetching
func feedHeaders() map[string]string {
	h := map[string]string{
		"Accept":          "application/rss+xml,application/atom+xml,application/xml;q=0.9,text/xml;q=0.8,*/*;q=0.5",
		"Cache-Control":   "no-cache",
		"Accept-Language": acceptLanguages[rand.Intn(len(acceptLanguages))], //nolint:gosec // header variation only
	}
	return h
}
