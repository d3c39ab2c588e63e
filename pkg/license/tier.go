package license

// Tier is a named subscription level governing feature availability and
// resource limits. The enumeration is closed and totally ordered by
// capability: free < standard < enterprise.
type Tier string

const (
	TierFree       Tier = "free"
	TierStandard   Tier = "standard"
	TierEnterprise Tier = "enterprise"
)

// tierRank fixes the capability ordering used for "at least" comparisons.
// Unknown tiers are absent from the map and rank as zero, same as free.
var tierRank = map[Tier]int{
	TierFree:       0,
	TierStandard:   1,
	TierEnterprise: 2,
}

// tierDisplayNames maps tiers to their customer-facing labels. The standard
// tier is sold as "Team".
var tierDisplayNames = map[Tier]string{
	TierFree:       "Free",
	TierStandard:   "Team",
	TierEnterprise: "Enterprise",
}

// ParseTier maps a raw tier identifier to a member of the closed enumeration.
// Unknown or empty input collapses to TierFree, so callers never observe an
// out-of-range tier.
func ParseTier(s string) Tier {
	t := Tier(s)
	if !t.Valid() {
		return TierFree
	}
	return t
}

// Valid reports whether t is a member of the closed enumeration.
func (t Tier) Valid() bool {
	_, ok := tierRank[t]
	return ok
}

// AtLeast reports whether t ranks at or above required in the fixed ordering.
// An invalid tier ranks as free.
func (t Tier) AtLeast(required Tier) bool {
	return tierRank[t] >= tierRank[required]
}

// DisplayName returns the customer-facing label for the tier.
func (t Tier) DisplayName() string {
	if name, ok := tierDisplayNames[t]; ok {
		return name
	}
	return tierDisplayNames[TierFree]
}

func (t Tier) String() string {
	return string(t)
}
