package pricing

import (
	"net/url"
	"strings"
)

// Resolve returns the navigation target executed when the tier's call to
// action is chosen. Navigation always happens in the current page:
//
//   - github: the fixed releases URL
//   - stripe: the payment link for the billing period
//   - email: a mailto URL with a fixed subject to the sales contact
//
// Any billing period other than yearly resolves to the monthly link; an
// unknown CTA kind falls back to the releases URL so a stale catalog entry
// never breaks the page.
func (c *Catalog) Resolve(tier PricingTier, period BillingPeriod) string {
	switch tier.CTAKind {
	case CTAStripe:
		if ParseBillingPeriod(string(period)) == BillingYearly {
			return c.Links.YearlyPaymentLink
		}
		return c.Links.MonthlyPaymentLink
	case CTAEmail:
		subject := strings.ReplaceAll(url.QueryEscape("Enterprise Inquiry"), "+", "%20")
		return "mailto:" + c.Links.SalesEmail + "?subject=" + subject
	default:
		return c.Links.GithubReleases
	}
}

// ResolveByID looks the tier up by id before resolving. The second return is
// false when the tier does not exist in the catalog.
func (c *Catalog) ResolveByID(tierID string, period BillingPeriod) (string, bool) {
	tier, ok := c.TierByID(tierID)
	if !ok {
		return "", false
	}
	return c.Resolve(tier, period), true
}
