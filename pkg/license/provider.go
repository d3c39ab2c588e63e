package license

import (
	"context"
	"sync"
	"time"
)

// DefaultFreshness is how long a fetched status (or a failed fetch's
// fail-closed default) stays valid before the next access triggers a new
// request.
const DefaultFreshness = 5 * time.Minute

// Provider exposes the current entitlement snapshot to the rest of the
// application. The first access fetches from the license server; subsequent
// accesses within the freshness window return the cached value. A failed
// fetch is not retried: the fail-closed default is cached for the same
// window, prioritizing uninterrupted browsing over correctness.
//
// The cache is read concurrently and written only on fetch completion. Two
// racing fetches resolve last-writer-wins; there is deliberately no stronger
// consistency mechanism.
type Provider struct {
	client    Client
	freshness time.Duration
	now       func() time.Time

	mu        sync.RWMutex
	status    Status
	fetchedAt time.Time
}

// ProviderOption configures the Provider.
type ProviderOption func(*Provider)

// WithFreshness overrides the cache freshness window. Non-positive values
// are ignored.
func WithFreshness(d time.Duration) ProviderOption {
	return func(p *Provider) {
		if d > 0 {
			p.freshness = d
		}
	}
}

// withClock injects a time source for tests.
func withClock(now func() time.Time) ProviderOption {
	return func(p *Provider) {
		if now != nil {
			p.now = now
		}
	}
}

// NewProvider creates a Provider backed by the given client.
func NewProvider(client Client, opts ...ProviderOption) *Provider {
	p := &Provider{
		client:    client,
		freshness: DefaultFreshness,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Status returns the current entitlement snapshot, fetching it if the cache
// is empty or stale. Errors never escape: a failed fetch yields the
// fail-closed default status.
func (p *Provider) Status(ctx context.Context) Status {
	p.mu.RLock()
	if !p.fetchedAt.IsZero() && p.now().Sub(p.fetchedAt) < p.freshness {
		status := p.status
		p.mu.RUnlock()
		return status.Clone()
	}
	p.mu.RUnlock()

	// Fetch outside the lock so readers are never blocked on the network.
	// Concurrent stale reads may each fetch; last writer wins.
	status, err := p.client.FetchStatus(ctx)
	if err != nil {
		status = DefaultStatus()
	}

	p.mu.Lock()
	p.status = status
	p.fetchedAt = p.now()
	p.mu.Unlock()

	return status.Clone()
}

// Capabilities derives the named capability set from the current status.
func (p *Provider) Capabilities(ctx context.Context) Capabilities {
	return NewCapabilities(p.Status(ctx))
}

// Invalidate drops the cached status so the next access fetches again.
func (p *Provider) Invalidate() {
	p.mu.Lock()
	p.fetchedAt = time.Time{}
	p.mu.Unlock()
}
