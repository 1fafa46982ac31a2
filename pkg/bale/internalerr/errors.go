package internalerr

import "errors"

// Sentinel errors for common cases
var (
	ErrNotFound      = errors.New("not found")
	ErrInvalidRule   = errors.New("invalid rule")
	ErrInvalidConfig = errors.New("invalid configuration")
	ErrDepthExceeded = errors.New("max proof depth exceeded")
)
