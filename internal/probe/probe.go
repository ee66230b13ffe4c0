// Package probe implements the URL reachability check behind the
// Accessibility indicators. A probe is a single HEAD request with a
// short timeout; any transport error, malformed URL, or status >= 400
// counts as unreachable. Probes are never retried.
package probe

import (
	"context"
	"net/http"
	"sync"
	"time"
)

// DefaultTimeout bounds a single probe. The rubric tolerates slow
// catalogs but not hanging ones.
const DefaultTimeout = 5 * time.Second

// Checker reports whether a URL answers at all. Implementations must
// not panic on garbage input.
type Checker interface {
	Reachable(ctx context.Context, url string) bool
}

// HTTPChecker probes URLs with HEAD requests.
type HTTPChecker struct {
	client *http.Client
}

// NewHTTPChecker returns a Checker with the given per-request timeout.
// A zero timeout falls back to DefaultTimeout.
func NewHTTPChecker(timeout time.Duration) *HTTPChecker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &HTTPChecker{
		client: &http.Client{Timeout: timeout},
	}
}

// Reachable performs the probe. Redirects are followed; 2xx and 3xx
// terminal statuses pass.
func (c *HTTPChecker) Reachable(ctx context.Context, url string) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, url, nil)
	if err != nil {
		return false
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode < 400
}

// Cached memoizes another Checker so each distinct URL is probed at
// most once per run. Safe for concurrent use.
type Cached struct {
	next Checker

	mu   sync.Mutex
	seen map[string]bool
}

// NewCached wraps next with a per-run memo.
func NewCached(next Checker) *Cached {
	return &Cached{next: next, seen: make(map[string]bool)}
}

func (c *Cached) Reachable(ctx context.Context, url string) bool {
	c.mu.Lock()
	hit, ok := c.seen[url]
	c.mu.Unlock()
	if ok {
		return hit
	}

	result := c.next.Reachable(ctx, url)

	c.mu.Lock()
	c.seen[url] = result
	c.mu.Unlock()
	return result
}

// Static answers every probe with a fixed result. Used by tests and by
// offline runs, where the Accessibility reachability indicators simply
// fail.
type Static bool

func (s Static) Reachable(context.Context, string) bool {
	return bool(s)
}
