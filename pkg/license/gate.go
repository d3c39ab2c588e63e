package license

import "slices"

// HasFeature reports whether the feature identifier is a member of the
// status feature set.
func (s Status) HasFeature(f Feature) bool {
	return slices.Contains(s.Features, f)
}

// AtLeast reports whether the status tier ranks at or above required in the
// fixed free < standard < enterprise ordering.
func (s Status) AtLeast(required Tier) bool {
	return s.Tier.AtLeast(required)
}

// CanAdd reports whether one more instance of the resource may be created.
// A missing limit entry denies: absent usage data is treated as a zero
// allowance, never as unlimited.
func (s Status) CanAdd(res Resource) bool {
	usage, ok := s.Limits[res]
	if !ok {
		return false
	}
	return usage.Current < usage.Max
}

// Usage returns the recorded usage for the resource. The second return is
// false when the license server reported no limit entry for it.
func (s Status) Usage(res Resource) (Usage, bool) {
	usage, ok := s.Limits[res]
	return usage, ok
}
