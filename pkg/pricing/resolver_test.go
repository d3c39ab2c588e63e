package pricing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gong8/sentinel-site/pkg/pricing"
)

func TestParseBillingPeriod(t *testing.T) {
	t.Parallel()

	assert.Equal(t, pricing.BillingYearly, pricing.ParseBillingPeriod("yearly"))
	assert.Equal(t, pricing.BillingMonthly, pricing.ParseBillingPeriod("monthly"))
	assert.Equal(t, pricing.BillingMonthly, pricing.ParseBillingPeriod(""))
	assert.Equal(t, pricing.BillingMonthly, pricing.ParseBillingPeriod("quarterly"))
	assert.Equal(t, pricing.BillingMonthly, pricing.ParseBillingPeriod("Yearly"))
}

func TestCatalogResolve(t *testing.T) {
	t.Parallel()

	catalog := pricing.DefaultCatalog()

	team, ok := catalog.TierByID("team")
	require.True(t, ok)
	free, ok := catalog.TierByID("free")
	require.True(t, ok)
	enterprise, ok := catalog.TierByID("enterprise")
	require.True(t, ok)

	t.Run("stripe yearly resolves to yearly link", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, catalog.Links.YearlyPaymentLink, catalog.Resolve(team, pricing.BillingYearly))
	})

	t.Run("stripe monthly resolves to monthly link", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, catalog.Links.MonthlyPaymentLink, catalog.Resolve(team, pricing.BillingMonthly))
	})

	t.Run("garbage billing period falls back to monthly", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, catalog.Links.MonthlyPaymentLink, catalog.Resolve(team, pricing.BillingPeriod("biennial")))
	})

	t.Run("github navigates to releases", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, catalog.Links.GithubReleases, catalog.Resolve(free, pricing.BillingMonthly))
	})

	t.Run("email builds sales mailto", func(t *testing.T) {
		t.Parallel()
		target := catalog.Resolve(enterprise, pricing.BillingMonthly)
		assert.Equal(t, "mailto:hello@sentinel.dev?subject=Enterprise%20Inquiry", target)
	})

	t.Run("unknown cta kind falls back to releases", func(t *testing.T) {
		t.Parallel()
		bogus := pricing.PricingTier{ID: "bogus", CTAKind: pricing.CTAKind("phone")}
		assert.Equal(t, catalog.Links.GithubReleases, catalog.Resolve(bogus, pricing.BillingMonthly))
	})
}

func TestCatalogResolveByID(t *testing.T) {
	t.Parallel()

	catalog := pricing.DefaultCatalog()

	target, ok := catalog.ResolveByID("team", pricing.BillingYearly)
	require.True(t, ok)
	assert.Equal(t, catalog.Links.YearlyPaymentLink, target)

	_, ok = catalog.ResolveByID("platinum", pricing.BillingMonthly)
	assert.False(t, ok)
}
