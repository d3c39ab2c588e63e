package pricing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gong8/sentinel-site/pkg/pricing"
)

func TestDefaultCatalogIsValid(t *testing.T) {
	t.Parallel()

	catalog := pricing.DefaultCatalog()
	require.NoError(t, catalog.Validate())
	assert.Len(t, catalog.Tiers, 3)

	team, ok := catalog.TierByID("team")
	require.True(t, ok)
	assert.True(t, team.Highlighted)
	assert.Equal(t, pricing.CTAStripe, team.CTAKind)

	limits, ok := catalog.Limits["free"]
	require.True(t, ok)
	assert.Equal(t, int64(3), limits.MaxUsers)
	assert.Equal(t, pricing.Unlimited, catalog.Limits["enterprise"].MaxServers)
}

func TestCatalogValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		mutate  func(*pricing.Catalog)
		wantErr error
	}{
		{
			name:    "empty catalog",
			mutate:  func(c *pricing.Catalog) { c.Tiers = nil },
			wantErr: pricing.ErrEmptyCatalog,
		},
		{
			name:    "missing tier id",
			mutate:  func(c *pricing.Catalog) { c.Tiers[0].ID = "" },
			wantErr: pricing.ErrMissingTierID,
		},
		{
			name:    "duplicate tier id",
			mutate:  func(c *pricing.Catalog) { c.Tiers[1].ID = c.Tiers[0].ID },
			wantErr: pricing.ErrDuplicateTierID,
		},
		{
			name:    "unknown cta kind",
			mutate:  func(c *pricing.Catalog) { c.Tiers[0].CTAKind = "carrier_pigeon" },
			wantErr: pricing.ErrUnknownCTAKind,
		},
		{
			name:    "stripe tier without payment links",
			mutate:  func(c *pricing.Catalog) { c.Links.YearlyPaymentLink = "" },
			wantErr: pricing.ErrMissingLink,
		},
		{
			name:    "email tier without sales contact",
			mutate:  func(c *pricing.Catalog) { c.Links.SalesEmail = "" },
			wantErr: pricing.ErrMissingLink,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			catalog := pricing.DefaultCatalog()
			tt.mutate(catalog)
			assert.ErrorIs(t, catalog.Validate(), tt.wantErr)
		})
	}
}

func TestLoad(t *testing.T) {
	t.Parallel()

	t.Run("loads and backfills links", func(t *testing.T) {
		t.Parallel()

		doc := `
tiers:
  - id: starter
    name: Starter
    price: Free
    price_detail: forever
    cta: Get Started
    cta_kind: github
  - id: pro
    name: Pro
    price: $20
    price_detail: per seat/month
    cta: Go Pro
    cta_kind: stripe
links:
  monthly_payment_link: https://buy.stripe.com/live_monthly
`
		catalog, err := pricing.Load(strings.NewReader(doc))
		require.NoError(t, err)

		assert.Len(t, catalog.Tiers, 2)
		assert.Equal(t, "https://buy.stripe.com/live_monthly", catalog.Links.MonthlyPaymentLink)
		// Unset links inherit the built-in defaults.
		assert.Equal(t, pricing.DefaultCatalog().Links.YearlyPaymentLink, catalog.Links.YearlyPaymentLink)
		assert.Equal(t, pricing.DefaultCatalog().Links.SalesEmail, catalog.Links.SalesEmail)
	})

	t.Run("rejects invalid yaml", func(t *testing.T) {
		t.Parallel()

		_, err := pricing.Load(strings.NewReader("tiers: ["))
		assert.ErrorIs(t, err, pricing.ErrFailedToLoad)
	})

	t.Run("rejects invalid catalog", func(t *testing.T) {
		t.Parallel()

		_, err := pricing.Load(strings.NewReader("tiers:\n  - name: NoID\n    cta_kind: github\n"))
		assert.ErrorIs(t, err, pricing.ErrMissingTierID)
	})
}
