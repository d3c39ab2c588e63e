package pricing

import "errors"

// Catalog validation and loading errors
var (
	ErrEmptyCatalog    = errors.New("pricing.errors.empty_catalog")
	ErrMissingTierID   = errors.New("pricing.errors.missing_tier_id")
	ErrDuplicateTierID = errors.New("pricing.errors.duplicate_tier_id")
	ErrUnknownCTAKind  = errors.New("pricing.errors.unknown_cta_kind")
	ErrMissingLink     = errors.New("pricing.errors.missing_link")
	ErrFailedToLoad    = errors.New("pricing.errors.failed_to_load")
)
