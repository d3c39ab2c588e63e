package license_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gong8/sentinel-site/pkg/license"
)

func TestParseTier(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  license.Tier
	}{
		{"free", "free", license.TierFree},
		{"standard", "standard", license.TierStandard},
		{"enterprise", "enterprise", license.TierEnterprise},
		{"unknown collapses to free", "platinum", license.TierFree},
		{"empty collapses to free", "", license.TierFree},
		{"case sensitive", "Enterprise", license.TierFree},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, license.ParseTier(tt.input))
		})
	}
}

func TestTierAtLeast(t *testing.T) {
	t.Parallel()

	ordered := []license.Tier{license.TierFree, license.TierStandard, license.TierEnterprise}

	// Every higher tier satisfies every lower requirement; never the reverse.
	for i, lower := range ordered {
		for j, higher := range ordered {
			if i < j {
				assert.True(t, higher.AtLeast(lower), "%s should be at least %s", higher, lower)
				assert.False(t, lower.AtLeast(higher), "%s should not be at least %s", lower, higher)
			}
		}
	}

	for _, tier := range ordered {
		assert.True(t, tier.AtLeast(tier), "%s should be at least itself", tier)
	}
}

func TestTierAtLeastUnknownRanksAsFree(t *testing.T) {
	t.Parallel()

	unknown := license.Tier("platinum")
	assert.True(t, unknown.AtLeast(license.TierFree))
	assert.False(t, unknown.AtLeast(license.TierStandard))
}

func TestTierDisplayName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Free", license.TierFree.DisplayName())
	assert.Equal(t, "Team", license.TierStandard.DisplayName())
	assert.Equal(t, "Enterprise", license.TierEnterprise.DisplayName())
	assert.Equal(t, "Free", license.Tier("bogus").DisplayName())
}
