package models

import "github.com/golang-jwt/jwt/v5"

// TokenClaims is the claim set embedded into every issued token.
//
// It extends [jwt.RegisteredClaims] (sub, exp, iat, ...) with the two
// application claims the gateway relies on: the subject's email and its
// numeric identifier. Both access and refresh tokens for the same
// authentication event carry identical claim values; only the signing
// key pair and the expiry differ.
type TokenClaims struct {
	jwt.RegisteredClaims

	// Username is the subject's email address.
	Username string `json:"username"`

	// UserID is the subject's server-assigned identifier.
	UserID int64 `json:"userId"`
}

// TokenPair is the pair of bearer credentials issued on a successful
// login or refresh. Tokens are stateless and never persisted; their
// validity rests purely on signature and expiry.
type TokenPair struct {
	// AccessToken is the short-lived credential presented on every
	// authenticated request.
	AccessToken string `json:"access_token"`

	// RefreshToken is the longer-lived credential exchanged for a fresh
	// pair through the refresh flow.
	RefreshToken string `json:"refresh_token"`
}

// LoginResult is the success payload of a password login.
type LoginResult struct {
	TokenPair

	// Role is the authenticated user's role, returned alongside the
	// token pair so the caller does not need to decode the token.
	Role Role `json:"role"`

	// Warnings lists best-effort side mutations that failed without
	// blocking the login (e.g. the last-login timestamp update).
	// Empty on a fully clean login.
	Warnings []string `json:"warnings,omitempty"`
}

// RegisterResult is the success payload of a registration. Unlike a
// login, a successful registration has no best-effort side mutations, so
// it carries no warnings.
type RegisterResult struct {
	// User is the public projection of the created account.
	User PublicProjection `json:"user"`
}
