package http

import "errors"

// Sentinel errors raised while extracting the bearer token from the
// Authorization header.
var (
	// ErrEmptyAuthorizationHeader is returned when no Authorization
	// header is present on a protected route.
	ErrEmptyAuthorizationHeader = errors.New("empty authorization header")

	// ErrInvalidAuthorizationHeader is returned when the header does not
	// follow the "<scheme> <token>" format.
	ErrInvalidAuthorizationHeader = errors.New("invalid authorization header")

	// ErrEmptyToken is returned when the token part of the header is an
	// empty string.
	ErrEmptyToken = errors.New("empty token")
)
