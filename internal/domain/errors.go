package domain

import "errors"

// Sentinel errors shared across services. Handlers map these to HTTP
// status codes; anything unrecognized becomes a 500.
var (
	ErrNotFound     = errors.New("not found")
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
)
