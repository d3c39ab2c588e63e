// Package pricing holds the static pricing catalog and resolves the
// external action executed when a tier is chosen.
//
// The catalog is the single source of truth for tiers, payment links, the
// feature-comparison matrix, and per-tier limits; every page that renders
// pricing consumes the same Catalog value. A built-in default ships with the
// binary and deployments may override it with a YAML file.
//
// Resolve maps a tier's call-to-action kind to a navigation target: github
// releases for self-hosted installs, a Stripe payment link for the chosen
// billing period, or a pre-filled sales mailto. Unrecognized billing periods
// fall back to monthly.
package pricing
