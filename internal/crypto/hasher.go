package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// bcryptHasher is the bcrypt-backed implementation of [PasswordHasher].
// bcrypt embeds a per-hash random salt into its output, so two hashes of
// the same plaintext never compare equal as strings while both verify.
type bcryptHasher struct {
	cost int
}

// NewBcryptHasher constructs a [PasswordHasher] with the given bcrypt
// cost. A cost outside the valid bcrypt range falls back to the library
// default.
func NewBcryptHasher(cost int) PasswordHasher {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &bcryptHasher{cost: cost}
}

// Hash derives a salted bcrypt hash of plaintext.
//
// Any failure of the primitive (including bcrypt's 72-byte input limit)
// is wrapped in [ErrHashingFailure] so the caller can treat it as a
// single terminal condition.
func (h *bcryptHasher) Hash(plaintext string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrHashingFailure, err)
	}
	return string(hash), nil
}

// Verify reports whether plaintext matches hash.
//
// A malformed stored hash makes bcrypt return an error; that is reported
// as a plain mismatch here, never as a crash or an error value.
func (h *bcryptHasher) Verify(plaintext, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plaintext)) == nil
}
