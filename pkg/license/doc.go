// Package license provides tier-based feature and limit gating backed by a
// remote license server.
//
// The package centers on Status, a normalized entitlement snapshot combining
// the account tier, its enabled feature identifiers, and per-resource usage
// limits. All fail-closed defaulting happens in one place when a server
// response is ingested: unknown tiers collapse to free, missing collections
// become empty, and malformed URLs fall back to fixed defaults. Gate methods
// on Status are pure and never special-case absent data themselves.
//
// Provider caches the snapshot for a fixed freshness window (5 minutes by
// default) and degrades silently to the free-tier default when the license
// server is unreachable, so gating never blocks the UI.
//
// Basic usage:
//
//	client, err := license.NewHTTPClient("https://api.sentinel.london/license/status")
//	if err != nil {
//		// Handle error
//	}
//	provider := license.NewProvider(client)
//
//	status := provider.Status(ctx)
//	if status.CanAdd(license.ResourceUsers) {
//		// Allow inviting another team member
//	}
//	if status.HasFeature(license.FeatureWebhooks) {
//		// Show webhook configuration
//	}
//
//	caps := license.NewCapabilities(status)
//	if caps.CanAccessGlobalVariables {
//		// Enterprise-only surface
//	}
package license
