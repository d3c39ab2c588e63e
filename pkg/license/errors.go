package license

import "errors"

// Domain errors for license status operations
var (
	ErrInvalidEndpoint      = errors.New("license.errors.invalid_endpoint")
	ErrRequestFailed        = errors.New("license.errors.request_failed")
	ErrUnexpectedStatusCode = errors.New("license.errors.unexpected_status_code")
	ErrMalformedResponse    = errors.New("license.errors.malformed_response")
)
