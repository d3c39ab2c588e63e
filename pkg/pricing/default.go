package pricing

// DefaultCatalog returns the built-in Sentinel pricing data. Deployments
// override it by loading a YAML catalog; both the landing page and the
// admin surfaces consume whichever catalog the server was started with, so
// pricing copy exists in exactly one place.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Tiers: []PricingTier{
			{
				ID:          "free",
				Name:        "Free",
				Description: "Get started with AI agent governance. No credit card required.",
				Price:       "Free",
				PriceDetail: "forever",
				Features: []string{
					"Up to 3 users",
					"3 MCP servers",
					"Basic DENY policies",
					"Complete audit logging",
					"7-day log retention",
					"Community support",
				},
				CTA:     "Get Started",
				CTAKind: CTAGithub,
			},
			{
				ID:                "team",
				Name:              "Team",
				Description:       "For teams deploying agents in production with compliance needs.",
				Price:             "$15",
				PriceYearly:       "$150",
				PriceDetail:       "per seat/month",
				PriceDetailYearly: "per seat/year",
				PriceSubtext:      "3 seat minimum • Save 17% yearly",
				Features: []string{
					"Per-seat pricing",
					"10 MCP servers",
					"All policy types",
					"A2A agent support",
					"Approval workflows",
					"Webhook alerts",
					"90-day log retention",
					"Priority support",
				},
				CTA:         "Start Team Plan",
				CTAKind:     CTAStripe,
				Highlighted: true,
			},
			{
				ID:          "enterprise",
				Name:        "Enterprise",
				Description: "For organisations with advanced security and compliance requirements.",
				Price:       "Custom",
				PriceDetail: "contact us",
				Features: []string{
					"Unlimited users",
					"Unlimited servers",
					"SSO (SAML/OIDC)",
					"Self-hosted deployment",
					"1-year+ log retention",
					"SLA guarantee",
					"Dedicated support",
					"Custom integrations",
				},
				CTA:     "Talk to Sales",
				CTAKind: CTAEmail,
			},
		},
		Links: Links{
			MonthlyPaymentLink: "https://buy.stripe.com/test_eVqdRbdvB1TT0M0flK83C02",
			YearlyPaymentLink:  "https://buy.stripe.com/test_cNi6oJfDJ6a9cuIb5u83C03",
			CustomerPortal:     "https://billing.stripe.com/p/login/test_00g3dW2jOfLF5Zy5kk",
			GithubReleases:     "https://github.com/gong8/sentinel/releases",
			SalesEmail:         "hello@sentinel.dev",
			SupportEmail:       "hello@sentinel.dev",
			Docs:               "https://docs.sentinel.london",
		},
		Comparison: []ComparisonCategory{
			{
				Category: "Core",
				Features: []ComparisonRow{
					{Name: "MCP Proxy", Free: included(), Standard: included(), Enterprise: included()},
					{Name: "Audit Logging", Free: note("7 days"), Standard: note("90 days"), Enterprise: note("1 year+")},
					{Name: "Max Users", Free: note("3"), Standard: note("Per seat"), Enterprise: note("Unlimited")},
					{Name: "Max MCP Servers", Free: note("3"), Standard: note("10"), Enterprise: note("Unlimited")},
				},
			},
			{
				Category: "Policies",
				Features: []ComparisonRow{
					{Name: "Basic DENY Policies", Free: included(), Standard: included(), Enterprise: included()},
					{Name: "All Policy Types", Standard: included(), Enterprise: included()},
					{Name: "Approval Workflows", Standard: included(), Enterprise: included()},
				},
			},
			{
				Category: "Integrations",
				Features: []ComparisonRow{
					{Name: "Webhook Alerts", Standard: included(), Enterprise: included()},
					{Name: "A2A Agent Support", Standard: included(), Enterprise: included()},
					{Name: "SSO (SAML/OIDC)", Enterprise: included()},
					{Name: "Custom Integrations", Enterprise: included()},
				},
			},
			{
				Category: "Support",
				Features: []ComparisonRow{
					{Name: "Community Support", Free: included(), Standard: included(), Enterprise: included()},
					{Name: "Priority Support", Standard: included(), Enterprise: included()},
					{Name: "Dedicated Support", Enterprise: included()},
					{Name: "SLA Guarantee", Enterprise: included()},
				},
			},
		},
		Limits: map[string]TierLimits{
			"free":       {MaxUsers: 3, MaxServers: 3, LogRetentionDays: 7},
			"team":       {MaxUsers: Unlimited, MaxServers: 10, LogRetentionDays: 90},
			"enterprise": {MaxUsers: Unlimited, MaxServers: Unlimited, LogRetentionDays: 365},
		},
	}
}

func included() ComparisonCell {
	return ComparisonCell{Included: true}
}

func note(text string) ComparisonCell {
	return ComparisonCell{Included: true, Note: text}
}
