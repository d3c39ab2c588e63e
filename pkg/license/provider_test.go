package license

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// fakeClient counts fetches and serves a scripted sequence of results.
type fakeClient struct {
	mu     sync.Mutex
	calls  int
	status Status
	err    error
}

func (f *fakeClient) FetchStatus(ctx context.Context) (Status, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	if f.err != nil {
		return Status{}, f.err
	}
	return f.status, nil
}

func (f *fakeClient) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func TestProviderCachesWithinFreshnessWindow(t *testing.T) {
	t.Parallel()

	client := &fakeClient{status: Status{Tier: TierStandard, UpgradeURL: DefaultUpgradeURL}}
	provider := NewProvider(client)

	ctx := context.Background()
	first := provider.Status(ctx)
	second := provider.Status(ctx)

	assert.Equal(t, TierStandard, first.Tier)
	assert.Equal(t, TierStandard, second.Tier)
	assert.Equal(t, 1, client.callCount(), "second access within the window must not refetch")
}

func TestProviderRefetchesAfterWindowExpires(t *testing.T) {
	t.Parallel()

	now := time.Now()
	clock := func() time.Time { return now }

	client := &fakeClient{status: Status{Tier: TierStandard}}
	provider := NewProvider(client, withClock(func() time.Time { return clock() }))

	ctx := context.Background()
	provider.Status(ctx)
	assert.Equal(t, 1, client.callCount())

	// Still fresh just inside the window.
	now = now.Add(DefaultFreshness - time.Second)
	provider.Status(ctx)
	assert.Equal(t, 1, client.callCount())

	// Stale once the window has elapsed.
	now = now.Add(2 * time.Second)
	provider.Status(ctx)
	assert.Equal(t, 2, client.callCount())
}

func TestProviderFailureYieldsDefaultWithoutRetry(t *testing.T) {
	t.Parallel()

	client := &fakeClient{err: errors.New("connection refused")}
	provider := NewProvider(client)

	ctx := context.Background()
	status := provider.Status(ctx)

	assert.Equal(t, TierFree, status.Tier)
	assert.Empty(t, status.Features)
	assert.False(t, status.CanAdd(ResourceUsers))
	assert.Equal(t, DefaultUpgradeURL, status.UpgradeURL)

	// The failure is cached for the freshness window: no automatic retry.
	provider.Status(ctx)
	provider.Status(ctx)
	assert.Equal(t, 1, client.callCount())
}

func TestProviderInvalidateForcesRefetch(t *testing.T) {
	t.Parallel()

	client := &fakeClient{status: Status{Tier: TierEnterprise}}
	provider := NewProvider(client)

	ctx := context.Background()
	provider.Status(ctx)
	provider.Invalidate()
	provider.Status(ctx)

	assert.Equal(t, 2, client.callCount())
}

func TestProviderReturnsClones(t *testing.T) {
	t.Parallel()

	client := &fakeClient{status: Status{
		Tier:     TierStandard,
		Features: []Feature{FeatureWebhooks},
		Limits:   map[Resource]Usage{ResourceUsers: {Current: 1, Max: 3}},
	}}
	provider := NewProvider(client)

	ctx := context.Background()
	status := provider.Status(ctx)
	status.Limits[ResourceUsers] = Usage{Current: 99, Max: 3}
	status.Features[0] = FeatureSSO

	fresh := provider.Status(ctx)
	assert.True(t, fresh.CanAdd(ResourceUsers), "cached snapshot must not be mutable through returned copies")
	assert.True(t, fresh.HasFeature(FeatureWebhooks))
}

func TestProviderCapabilities(t *testing.T) {
	t.Parallel()

	client := &fakeClient{status: Status{Tier: TierStandard}}
	provider := NewProvider(client)

	caps := provider.Capabilities(context.Background())
	assert.True(t, caps.CanAccessWebhooks)
	assert.False(t, caps.CanAccessAdminMCP)
}
