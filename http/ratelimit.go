package http

import (
	"context"
	"net/url"
	"sync"

	"github.com/bookbind/bookbind"
	"golang.org/x/time/rate"
)

// Ensure RateLimitedFetcher implements bookbind.Fetcher at compile time.
var _ bookbind.Fetcher = (*RateLimitedFetcher)(nil)

// RateLimitedFetcher wraps a Fetcher with per-host token-bucket rate
// limiting. Conversion runs are sequential, so the limiter's job is simply
// to pace repeated requests to the same site (pages plus their images).
type RateLimitedFetcher struct {
	next bookbind.Fetcher
	rps  float64

	mu       sync.Mutex
	limiters map[string]*rate.Limiter
}

// NewRateLimitedFetcher creates a fetcher limited to rps requests per
// second per host, with a burst of 1 (no bursting allowed).
func NewRateLimitedFetcher(next bookbind.Fetcher, rps float64) *RateLimitedFetcher {
	return &RateLimitedFetcher{
		next:     next,
		rps:      rps,
		limiters: make(map[string]*rate.Limiter),
	}
}

// Fetch waits for the host's rate limit, then delegates.
func (f *RateLimitedFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	host := ""
	if u, err := url.Parse(rawURL); err == nil {
		host = u.Host
	}

	f.mu.Lock()
	limiter, ok := f.limiters[host]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.rps), 1)
		f.limiters[host] = limiter
	}
	f.mu.Unlock()

	if err := limiter.Wait(ctx); err != nil {
		return nil, err
	}
	return f.next.Fetch(ctx, rawURL)
}

// Close delegates to the wrapped fetcher.
func (f *RateLimitedFetcher) Close() error {
	return f.next.Close()
}
