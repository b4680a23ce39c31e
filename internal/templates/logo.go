package templates

import (
	"context"
	"encoding/base64"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"

	"invoice-service/internal/models"
)

// LogoFetcher turns a remote logo URL into a data URI suitable for inlining
// into the invoice markup. A failed fetch is cosmetic, not fatal: callers
// omit the logo block and keep rendering.
type LogoFetcher interface {
	FetchDataURI(ctx context.Context, url string) (string, error)
}

const maxLogoBytes = 2 << 20 // 2MB

// HTTPLogoFetcher fetches logos over HTTP with a bounded timeout.
type HTTPLogoFetcher struct {
	client *http.Client
}

func NewHTTPLogoFetcher(timeout time.Duration) *HTTPLogoFetcher {
	return &HTTPLogoFetcher{
		client: &http.Client{Timeout: timeout},
	}
}

func (f *HTTPLogoFetcher) FetchDataURI(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrLogoFetch, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrLogoFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("%w: unexpected status %d for %s", models.ErrLogoFetch, resp.StatusCode, url)
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes))
	if err != nil {
		return "", fmt.Errorf("%w: %v", models.ErrLogoFetch, err)
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

// CachedLogoFetcher caches fetched data URIs in Redis keyed by URL, so
// repeated renders of the same company don't refetch the logo. Cache
// failures are silent; the inner fetcher is always the fallback.
type CachedLogoFetcher struct {
	inner LogoFetcher
	rdb   *redis.Client
	ttl   time.Duration
}

func NewCachedLogoFetcher(inner LogoFetcher, rdb *redis.Client, ttl time.Duration) *CachedLogoFetcher {
	return &CachedLogoFetcher{inner: inner, rdb: rdb, ttl: ttl}
}

func (f *CachedLogoFetcher) FetchDataURI(ctx context.Context, url string) (string, error) {
	key := "invoice:logo:" + url

	if cached, err := f.rdb.Get(ctx, key).Result(); err == nil && cached != "" {
		return cached, nil
	}

	dataURI, err := f.inner.FetchDataURI(ctx, url)
	if err != nil {
		return "", err
	}

	if err := f.rdb.Set(ctx, key, dataURI, f.ttl).Err(); err != nil {
		slog.Warn("failed to cache logo data URI", "url", url, "error", err)
	}

	return dataURI, nil
}

// inlineLogo resolves the company logo for templates that embed it as a data
// URI. Missing URL, nil fetcher, and fetch failures all yield an empty
// string so the template drops the logo block.
func inlineLogo(fetcher LogoFetcher, data *models.InvoiceData) string {
	if fetcher == nil || data.Company == nil || data.Company.LogoURL == nil || *data.Company.LogoURL == "" {
		return ""
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	dataURI, err := fetcher.FetchDataURI(ctx, *data.Company.LogoURL)
	if err != nil {
		slog.Warn("logo fetch failed, rendering without logo",
			"logo_url", *data.Company.LogoURL,
			"error", err)
		return ""
	}
	return dataURI
}
