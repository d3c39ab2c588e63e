// Package validator provides rule-based validation for request payloads.
//
// Rules are composed per call site and applied together, accumulating every
// failure instead of stopping at the first:
//
//	err := validator.Apply(
//		validator.Required("name", req.Name),
//		validator.Required("email", req.Email),
//		validator.ValidEmail("email", req.Email),
//	)
//	if err != nil {
//		for _, field := range validator.ExtractValidationErrors(err).Fields() {
//			// Surface per-field messages inline
//		}
//	}
package validator
