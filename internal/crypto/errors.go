package crypto

import "errors"

// Sentinel errors returned by the hasher and the token codec. Callers
// should use [errors.Is] to match against these values.
var (
	// ErrHashingFailure is returned when the password hashing primitive
	// cannot complete (e.g. resource exhaustion or an over-long input).
	ErrHashingFailure = errors.New("password hashing failed")

	// ErrTokenInvalid is returned for a token whose signature, format, or
	// claim set cannot be verified.
	ErrTokenInvalid = errors.New("token is invalid")

	// ErrTokenExpired is returned for a structurally valid token whose
	// expiry has passed. Kept distinct from ErrTokenInvalid so callers
	// can log or message the two cases differently.
	ErrTokenExpired = errors.New("token is expired")

	// ErrInvalidKeyMaterial is returned when a configured key pair cannot
	// be parsed or is not an Ed25519 key.
	ErrInvalidKeyMaterial = errors.New("invalid signing key material")
)
