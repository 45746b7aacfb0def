package crypto

import (
	"time"

	"github.com/akarpenko/fashion-gateway/models"
)

// PasswordHasher is the one-way credential transform used at registration
// and login time.
type PasswordHasher interface {
	// Hash derives a salted, one-way hash of plaintext. The output format
	// is deterministic, the output value is not. Fails with
	// [ErrHashingFailure] if the underlying primitive cannot complete;
	// callers must treat that as fatal for the attempt.
	Hash(plaintext string) (string, error)

	// Verify reports whether plaintext matches hash. It never fails:
	// a malformed stored hash is a mismatch, not an error.
	Verify(plaintext, hash string) bool
}

// TokenCodec signs and verifies the self-contained bearer tokens issued
// by the authentication engine. Each [KeyPurpose] is backed by its own
// asymmetric key pair, so a refresh token can never be presented where an
// access token is expected and vice versa.
type TokenCodec interface {
	// Sign produces a compact signed token embedding the subject claims,
	// an issued-at of now and an expiry of now+ttl, signed with the key
	// pair selected by purpose.
	Sign(claims models.TokenClaims, purpose KeyPurpose, ttl time.Duration) (string, error)

	// Verify checks the token signature against the public key for
	// purpose and its expiry against the current time. Returns
	// [ErrTokenExpired] for a structurally valid but elapsed token and
	// [ErrTokenInvalid] for every other failure.
	Verify(token string, purpose KeyPurpose) (models.TokenClaims, error)

	// ExtractSubject is a convenience decomposition of Verify returning
	// the subject username and identifier.
	ExtractSubject(token string, purpose KeyPurpose) (username string, userID int64, err error)
}
