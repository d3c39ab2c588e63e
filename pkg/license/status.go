package license

import (
	"maps"
	"net/url"
	"slices"
)

// Resource identifies a countable, limit-bound resource type.
type Resource string

// Resource tags known to the license server.
const (
	ResourceUsers   Resource = "users"
	ResourceServers Resource = "servers"
)

// Feature is an opaque feature identifier enabled for a tier or account.
type Feature string

// Feature identifiers issued by the license server.
const (
	FeatureAdvancedPolicies  Feature = "advanced_policies"
	FeatureWebhooks          Feature = "webhooks"
	FeatureAuditLogs         Feature = "audit_logs"
	FeatureSSO               Feature = "sso"
	FeatureApprovalWorkflows Feature = "approval_workflows"
	FeatureGlobalVariables   Feature = "global_variables"
	FeatureSentinelAgent     Feature = "sentinel_agent"
)

// Fallback destinations used whenever the license server omits or corrupts
// the corresponding URL.
const (
	DefaultUpgradeURL        = "https://sentinel.london/upgrade"
	DefaultCustomerPortalURL = "https://billing.stripe.com/p/login/sentinel"
)

// Usage holds the current consumption and ceiling for one resource.
type Usage struct {
	Current int64 `json:"current"`
	Max     int64 `json:"max"`
}

// Settings carries account-level toggles that gate capabilities beyond the
// tier itself.
type Settings struct {
	AdminMCPEnabled bool `json:"adminMcpEnabled"`
}

// Status is the caller's current entitlement snapshot. It is produced by
// Normalize and safe to share between goroutines: gate methods never
// mutate it.
type Status struct {
	Tier              Tier               `json:"tier"`
	Features          []Feature          `json:"features"`
	Limits            map[Resource]Usage `json:"limits"`
	UpgradeURL        string             `json:"upgradeUrl"`
	CustomerPortalURL string             `json:"customerPortalUrl"`
	Settings          Settings           `json:"settings"`
}

// statusResponse is the wire shape returned by the license status endpoint.
type statusResponse struct {
	Tier              string           `json:"tier"`
	Features          []string         `json:"features"`
	Limits            map[string]Usage `json:"limits"`
	UpgradeURL        string           `json:"upgradeUrl"`
	CustomerPortalURL string           `json:"customerPortalUrl"`
	Settings          *Settings        `json:"settings"`
}

// DefaultStatus returns the fail-closed entitlement snapshot: free tier, no
// features, no limit entries (so every CanAdd check denies). Used whenever
// the license server is unreachable or returns garbage.
func DefaultStatus() Status {
	return Status{
		Tier:              TierFree,
		Features:          []Feature{},
		Limits:            map[Resource]Usage{},
		UpgradeURL:        DefaultUpgradeURL,
		CustomerPortalURL: DefaultCustomerPortalURL,
	}
}

// normalize converts a raw license-server response into a Status. All
// "absent data means most restrictive" decisions live here so downstream
// gate logic never special-cases missing fields: unknown tiers collapse to
// free, nil collections become empty, and malformed URLs fall back to the
// fixed defaults.
func normalize(resp statusResponse) Status {
	status := Status{
		Tier:              ParseTier(resp.Tier),
		Features:          make([]Feature, 0, len(resp.Features)),
		Limits:            make(map[Resource]Usage, len(resp.Limits)),
		UpgradeURL:        normalizeURL(resp.UpgradeURL, DefaultUpgradeURL),
		CustomerPortalURL: normalizeURL(resp.CustomerPortalURL, DefaultCustomerPortalURL),
	}

	for _, f := range resp.Features {
		if f != "" {
			status.Features = append(status.Features, Feature(f))
		}
	}

	for res, usage := range resp.Limits {
		if res == "" {
			continue
		}
		status.Limits[Resource(res)] = usage
	}

	if resp.Settings != nil {
		status.Settings = *resp.Settings
	}

	return status
}

// normalizeURL returns raw when it parses as an absolute http(s) URL,
// otherwise the fallback.
func normalizeURL(raw, fallback string) string {
	if raw == "" {
		return fallback
	}
	u, err := url.Parse(raw)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return fallback
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fallback
	}
	return raw
}

// Clone returns a deep copy of the status so cached snapshots cannot be
// mutated through shared slices or maps.
func (s Status) Clone() Status {
	s.Features = slices.Clone(s.Features)
	s.Limits = maps.Clone(s.Limits)
	return s
}
