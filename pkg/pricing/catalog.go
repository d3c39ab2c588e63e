package pricing

// CTAKind selects which external action executes when a pricing tier is
// chosen.
type CTAKind string

const (
	// CTAGithub navigates to the releases page for self-hosted installs.
	CTAGithub CTAKind = "github"
	// CTAStripe navigates to the payment link for the chosen billing period.
	CTAStripe CTAKind = "stripe"
	// CTAEmail opens a pre-filled sales inquiry email.
	CTAEmail CTAKind = "email"
)

// BillingPeriod selects monthly or yearly payment links.
type BillingPeriod string

const (
	BillingMonthly BillingPeriod = "monthly"
	BillingYearly  BillingPeriod = "yearly"
)

// ParseBillingPeriod maps raw input to a billing period. Anything other than
// "yearly" is treated as monthly.
func ParseBillingPeriod(s string) BillingPeriod {
	if BillingPeriod(s) == BillingYearly {
		return BillingYearly
	}
	return BillingMonthly
}

// Unlimited marks a tier limit with no ceiling.
const Unlimited int64 = -1

// PricingTier is one static catalog entry shown on the pricing page.
type PricingTier struct {
	ID                string   `yaml:"id"`
	Name              string   `yaml:"name"`
	Description       string   `yaml:"description"`
	Price             string   `yaml:"price"`
	PriceYearly       string   `yaml:"price_yearly,omitempty"`
	PriceDetail       string   `yaml:"price_detail"`
	PriceDetailYearly string   `yaml:"price_detail_yearly,omitempty"`
	PriceSubtext      string   `yaml:"price_subtext,omitempty"`
	Features          []string `yaml:"features"`
	CTA               string   `yaml:"cta"`
	CTAKind           CTAKind  `yaml:"cta_kind"`
	Highlighted       bool     `yaml:"highlighted"`
}

// Links holds the external destinations the resolver navigates to.
type Links struct {
	MonthlyPaymentLink string `yaml:"monthly_payment_link"`
	YearlyPaymentLink  string `yaml:"yearly_payment_link"`
	CustomerPortal     string `yaml:"customer_portal"`
	GithubReleases     string `yaml:"github_releases"`
	SalesEmail         string `yaml:"sales_email"`
	SupportEmail       string `yaml:"support_email"`
	Docs               string `yaml:"docs,omitempty"`
}

// TierLimits mirrors the license-server limit configuration for display.
// Unlimited (-1) renders as "no ceiling".
type TierLimits struct {
	MaxUsers         int64 `yaml:"max_users"`
	MaxServers       int64 `yaml:"max_servers"`
	LogRetentionDays int64 `yaml:"log_retention_days"`
}

// ComparisonCell is one value in the feature-comparison matrix: either a
// plain included/excluded marker or a short note such as "7 days".
type ComparisonCell struct {
	Included bool   `yaml:"included"`
	Note     string `yaml:"note,omitempty"`
}

// ComparisonRow compares one feature across the three tiers.
type ComparisonRow struct {
	Name       string         `yaml:"name"`
	Free       ComparisonCell `yaml:"free"`
	Standard   ComparisonCell `yaml:"standard"`
	Enterprise ComparisonCell `yaml:"enterprise"`
}

// ComparisonCategory groups comparison rows under a heading.
type ComparisonCategory struct {
	Category string          `yaml:"category"`
	Features []ComparisonRow `yaml:"features"`
}

// Catalog is the single source of truth for pricing data: tiers, external
// links, the feature-comparison matrix, and per-tier limits. Every surface
// that renders pricing consumes the same catalog.
type Catalog struct {
	Tiers      []PricingTier         `yaml:"tiers"`
	Links      Links                 `yaml:"links"`
	Comparison []ComparisonCategory  `yaml:"comparison,omitempty"`
	Limits     map[string]TierLimits `yaml:"limits,omitempty"`
}

// TierByID returns the catalog entry with the given id.
func (c *Catalog) TierByID(id string) (PricingTier, bool) {
	for _, tier := range c.Tiers {
		if tier.ID == id {
			return tier, true
		}
	}
	return PricingTier{}, false
}

// Validate checks the catalog is usable by the resolver: every tier needs an
// id and a known CTA kind, and the links required by the CTA kinds in use
// must be present.
func (c *Catalog) Validate() error {
	if len(c.Tiers) == 0 {
		return ErrEmptyCatalog
	}

	seen := make(map[string]struct{}, len(c.Tiers))
	for _, tier := range c.Tiers {
		if tier.ID == "" {
			return ErrMissingTierID
		}
		if _, dup := seen[tier.ID]; dup {
			return ErrDuplicateTierID
		}
		seen[tier.ID] = struct{}{}

		switch tier.CTAKind {
		case CTAGithub:
			if c.Links.GithubReleases == "" {
				return ErrMissingLink
			}
		case CTAStripe:
			if c.Links.MonthlyPaymentLink == "" || c.Links.YearlyPaymentLink == "" {
				return ErrMissingLink
			}
		case CTAEmail:
			if c.Links.SalesEmail == "" {
				return ErrMissingLink
			}
		default:
			return ErrUnknownCTAKind
		}
	}

	return nil
}
