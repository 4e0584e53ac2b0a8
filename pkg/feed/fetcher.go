package feed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"time"

	"github.com/go-pkgz/lgr"
	"golang.org/x/net/html/charset"
)

//go:generate moq -out mocks/cache.go -pkg mocks -skip-ensure -fmt goimports . Cache
//go:generate moq -out mocks/text_fetcher.go -pkg mocks -skip-ensure -fmt goimports . TextFetcher

// ErrBodyTooLarge is returned when a feed body is bigger than the configured limit
var ErrBodyTooLarge = errors.New("feed body too large")

// Cache keeps raw feed text for a limited time. Implementations never fail, a fault is a miss.
type Cache interface {
	Get(ctx context.Context, url string) (string, bool)
	Put(ctx context.Context, url, text string)
}

// TextFetcher retrieves raw feed text for a URL
type TextFetcher interface {
	FetchText(ctx context.Context, url string) (string, error)
}

// FetcherParams configures HTTPFetcher
type FetcherParams struct {
	Cache     Cache         // required
	Timeout   time.Duration // per request, zero disables the timeout
	UserAgent string
	MaxBody   int64        // zero means unlimited, a bigger body is an error
	Client    *http.Client // optional, replaces the default client
}

// HTTPFetcher fetches feed text over HTTP, consulting the cache first
type HTTPFetcher struct {
	client    *http.Client
	cache     Cache
	userAgent string
	maxBody   int64
}

// NewHTTPFetcher creates a new cache-backed fetcher
func NewHTTPFetcher(params FetcherParams) *HTTPFetcher {
	client := params.Client
	if client == nil {
		// no cookie jar, requests never carry credentials
		client = &http.Client{
			Timeout: params.Timeout,
			Transport: &http.Transport{
				Proxy:               http.ProxyFromEnvironment,
				MaxIdleConns:        100,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		}
	}
	return &HTTPFetcher{
		client:    client,
		cache:     params.Cache,
		userAgent: params.UserAgent,
		maxBody:   params.MaxBody,
	}
}

// FetchText returns the feed body for url. A cache hit returns without network access,
// a miss downloads the whole body, stores it in the cache and returns it.
// Network and HTTP status failures are returned as errors, there are no retries.
func (f *HTTPFetcher) FetchText(ctx context.Context, url string) (string, error) {
	if text, ok := f.cache.Get(ctx, url); ok {
		lgr.Printf("[DEBUG] cache hit for %s", url)
		fetchTotal.WithLabelValues(resultCacheHit).Inc()
		return text, nil
	}

	text, err := f.download(ctx, url)
	if err != nil {
		fetchTotal.WithLabelValues(resultError).Inc()
		return "", err
	}
	fetchTotal.WithLabelValues(resultOK).Inc()

	f.cache.Put(ctx, url, text)
	return text, nil
}

func (f *HTTPFetcher) download(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}
	addBrowserHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetch %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("unexpected status code %d for %s", resp.StatusCode, url)
	}

	var body io.Reader = resp.Body
	if f.maxBody > 0 {
		body = io.LimitReader(body, f.maxBody+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return "", fmt.Errorf("read body of %s: %w", url, err)
	}
	if f.maxBody > 0 && int64(len(raw)) > f.maxBody {
		return "", fmt.Errorf("body of %s exceeds %d bytes: %w", url, f.maxBody, ErrBodyTooLarge)
	}

	data, err := io.ReadAll(decodeCharset(bytes.NewReader(raw), resp.Header.Get("Content-Type")))
	if err != nil {
		return "", fmt.Errorf("decode body of %s: %w", url, err)
	}
	return string(data), nil
}

// decodeCharset converts the body to UTF-8 when the content type declares another charset.
// Undeclared or unknown charsets leave the body as is, it is taken as UTF-8.
func decodeCharset(r io.Reader, contentType string) io.Reader {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil || params["charset"] == "" {
		return r
	}
	decoded, err := charset.NewReaderLabel(params["charset"], r)
	if err != nil {
		lgr.Printf("[DEBUG] unsupported charset %q, reading as utf-8", params["charset"])
		return r
	}
	return decoded
}
