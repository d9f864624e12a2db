package dynect

import "errors"

// Common static errors that can be wrapped with context.
var (
	ErrConfigRequired        = errors.New("config is required")
	ErrEmptyResponse         = errors.New("empty response body")
	ErrMalformedResponse     = errors.New("malformed response body")
	ErrUnsupportedRecordType = errors.New("unsupported record type")
	ErrInvalidEndpoint       = errors.New("invalid API endpoint")
)
