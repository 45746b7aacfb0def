package service

import "errors"

// Every engine operation resolves to success or exactly one of these
// tagged outcomes. Callers should use [errors.Is] to match against them.
var (
	// ErrUnsupportedGrant rejects a grant type that is neither password
	// nor refresh. Terminal, never retried.
	ErrUnsupportedGrant = errors.New("unsupported grant type")

	// ErrUserNotFound covers a missing credential record on login and
	// every refresh-token verification failure. The merge at the refresh
	// boundary is intentional: the caller is not told whether the token
	// was forged, expired, or the user vanished.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidCredentials marks a password mismatch for an existing
	// user.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrUserAlreadyExists rejects a registration for an email already
	// on file.
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrInternal covers hashing primitive failures, token signing
	// failures, and unexpected errors during registration (which trigger
	// the compensating delete).
	ErrInternal = errors.New("internal error")
)
