package upgrade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gong8/sentinel-site/pkg/license"
	"github.com/gong8/sentinel-site/pkg/upgrade"
)

// staticSource serves a fixed status snapshot.
type staticSource struct {
	status license.Status
}

func (s staticSource) Status(ctx context.Context) license.Status {
	return s.status
}

// recordingController captures Show calls.
type recordingController struct {
	shown  []upgrade.ModalState
	hidden int
}

func (c *recordingController) Show(state upgrade.ModalState) {
	c.shown = append(c.shown, state)
}

func (c *recordingController) Hide() {
	c.hidden++
}

func allowedStatus() license.Status {
	s := license.DefaultStatus()
	s.Tier = license.TierFree
	s.Limits = map[license.Resource]license.Usage{
		license.ResourceUsers: {Current: 1, Max: 3},
	}
	return s
}

func deniedStatus() license.Status {
	s := license.DefaultStatus()
	s.Tier = license.TierFree
	s.UpgradeURL = "https://sentinel.london/upgrade"
	s.Limits = map[license.Resource]license.Usage{
		license.ResourceUsers: {Current: 3, Max: 3},
	}
	return s
}

func TestGatedActionInvoke(t *testing.T) {
	t.Parallel()

	t.Run("allowed runs the wrapped action untouched", func(t *testing.T) {
		t.Parallel()

		controller := &recordingController{}
		invoked := 0
		gate := upgrade.NewGatedAction(license.ResourceUsers,
			staticSource{status: allowedStatus()}, controller,
			func(ctx context.Context) error {
				invoked++
				return nil
			})

		ran, err := gate.Invoke(context.Background())
		require.NoError(t, err)
		assert.True(t, ran)
		assert.Equal(t, 1, invoked)
		assert.Empty(t, controller.shown, "no prompt on success")
	})

	t.Run("action errors pass through", func(t *testing.T) {
		t.Parallel()

		wantErr := errors.New("downstream failure")
		gate := upgrade.NewGatedAction(license.ResourceUsers,
			staticSource{status: allowedStatus()}, &recordingController{},
			func(ctx context.Context) error { return wantErr })

		ran, err := gate.Invoke(context.Background())
		assert.True(t, ran)
		assert.ErrorIs(t, err, wantErr)
	})

	t.Run("denied suppresses the action and opens the prompt", func(t *testing.T) {
		t.Parallel()

		controller := &recordingController{}
		invoked := 0
		gate := upgrade.NewGatedAction(license.ResourceUsers,
			staticSource{status: deniedStatus()}, controller,
			func(ctx context.Context) error {
				invoked++
				return nil
			})

		ran, err := gate.Invoke(context.Background())
		require.NoError(t, err)
		assert.False(t, ran)
		assert.Zero(t, invoked)

		require.Len(t, controller.shown, 1)
		state := controller.shown[0]
		assert.Equal(t, upgrade.TriggerLimit, state.Trigger)
		assert.Equal(t, "users", state.Feature)
		assert.Equal(t, "Users", state.DisplayName)
		assert.Equal(t, license.TierFree, state.CurrentTier)
		assert.Equal(t, "https://sentinel.london/upgrade", state.UpgradeURL)
		assert.Equal(t, "team member", state.ResourceType)
		assert.Equal(t, int64(3), state.CurrentUsage)
		assert.Equal(t, int64(3), state.Limit)
	})

	t.Run("missing limit entry denies with zero usage", func(t *testing.T) {
		t.Parallel()

		controller := &recordingController{}
		gate := upgrade.NewGatedAction(license.ResourceServers,
			staticSource{status: license.DefaultStatus()}, controller,
			func(ctx context.Context) error { return nil })

		ran, err := gate.Invoke(context.Background())
		require.NoError(t, err)
		assert.False(t, ran)

		require.Len(t, controller.shown, 1)
		state := controller.shown[0]
		assert.Equal(t, "MCP Servers", state.DisplayName)
		assert.Zero(t, state.CurrentUsage)
		assert.Zero(t, state.Limit)
	})
}

func TestGatedActionAllowed(t *testing.T) {
	t.Parallel()

	gate := upgrade.NewGatedAction(license.ResourceUsers,
		staticSource{status: allowedStatus()}, &recordingController{},
		func(ctx context.Context) error { return nil })
	assert.True(t, gate.Allowed(context.Background()))

	denied := upgrade.NewGatedAction(license.ResourceUsers,
		staticSource{status: deniedStatus()}, &recordingController{},
		func(ctx context.Context) error { return nil })
	assert.False(t, denied.Allowed(context.Background()))
}

func TestGatedActionHint(t *testing.T) {
	t.Parallel()

	gate := upgrade.NewGatedAction(license.ResourceUsers,
		staticSource{status: deniedStatus()}, &recordingController{},
		func(ctx context.Context) error { return nil })
	assert.Equal(t, "Team member limit reached (3/3). Click to upgrade.",
		gate.Hint(context.Background()))

	allowed := upgrade.NewGatedAction(license.ResourceUsers,
		staticSource{status: allowedStatus()}, &recordingController{},
		func(ctx context.Context) error { return nil })
	assert.Empty(t, allowed.Hint(context.Background()))
}

func TestNewGatedActionPanicsOnNilDependencies(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() {
		upgrade.NewGatedAction(license.ResourceUsers, nil, nil, nil)
	})
}
