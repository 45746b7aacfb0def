package crypto

import (
	"crypto/ed25519"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/akarpenko/fashion-gateway/models"
	"github.com/golang-jwt/jwt/v5"
)

// KeyPurpose selects which of the codec's key pairs signs or verifies a
// token. Possessing a valid refresh token must never allow forging a
// valid access token directly, only obtaining one through the refresh
// flow.
type KeyPurpose string

const (
	// PurposeAccess is the key pair for short-lived access tokens.
	PurposeAccess KeyPurpose = "access"

	// PurposeRefresh is the key pair for longer-lived refresh tokens.
	PurposeRefresh KeyPurpose = "refresh"
)

// KeyPair holds one Ed25519 signing key pair scoped to a single purpose.
type KeyPair struct {
	Private ed25519.PrivateKey
	Public  ed25519.PublicKey
}

// edDSACodec is the EdDSA-backed implementation of [TokenCodec].
// All state is read-only after construction; the codec is safe for
// concurrent use.
type edDSACodec struct {
	keys   map[KeyPurpose]KeyPair
	issuer string
}

// NewTokenCodec constructs a [TokenCodec] holding one independent
// Ed25519 key pair per purpose. The issuer is embedded as the "iss"
// claim of every issued token and validated on every parse.
func NewTokenCodec(access, refresh KeyPair, issuer string) (TokenCodec, error) {
	if access.Private == nil || access.Public == nil || refresh.Private == nil || refresh.Public == nil {
		return nil, fmt.Errorf("%w: both key pairs are required", ErrInvalidKeyMaterial)
	}

	return &edDSACodec{
		keys: map[KeyPurpose]KeyPair{
			PurposeAccess:  access,
			PurposeRefresh: refresh,
		},
		issuer: issuer,
	}, nil
}

// Sign produces a compact EdDSA-signed token carrying the subject claims
// plus issuer, subject (the user ID), issued-at and expiry.
func (c *edDSACodec) Sign(claims models.TokenClaims, purpose KeyPurpose, ttl time.Duration) (string, error) {
	pair, ok := c.keys[purpose]
	if !ok {
		return "", fmt.Errorf("%w: unknown key purpose %q", ErrInvalidKeyMaterial, purpose)
	}
	if claims.Username == "" || claims.UserID == 0 || ttl <= 0 {
		return "", errors.New("invalid params for generating token")
	}

	now := time.Now()
	claims.RegisteredClaims = jwt.RegisteredClaims{
		Issuer:    c.issuer,
		Subject:   strconv.FormatInt(claims.UserID, 10),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		IssuedAt:  jwt.NewNumericDate(now),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodEdDSA, &claims)
	signed, err := token.SignedString(pair.Private)
	if err != nil {
		return "", fmt.Errorf("error occurred during signing token: %w", err)
	}

	return signed, nil
}

// Verify validates tokenString against the public key for purpose.
//
// The parser enforces the EdDSA signing method, the configured issuer,
// and expiry. Expiry is surfaced as [ErrTokenExpired]; every other
// parse or claim failure (including a missing username or user ID claim)
// collapses to [ErrTokenInvalid].
func (c *edDSACodec) Verify(tokenString string, purpose KeyPurpose) (models.TokenClaims, error) {
	pair, ok := c.keys[purpose]
	if !ok {
		return models.TokenClaims{}, fmt.Errorf("%w: unknown key purpose %q", ErrInvalidKeyMaterial, purpose)
	}

	var claims models.TokenClaims
	_, err := jwt.ParseWithClaims(tokenString, &claims, func(token *jwt.Token) (any, error) {
		return pair.Public, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodEdDSA.Alg()}),
		jwt.WithIssuer(c.issuer),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return models.TokenClaims{}, fmt.Errorf("%w: %w", ErrTokenInvalid, err)
	}

	if claims.Username == "" || claims.UserID == 0 {
		return models.TokenClaims{}, fmt.Errorf("%w: subject claims are missing", ErrTokenInvalid)
	}

	return claims, nil
}

// ExtractSubject verifies tokenString and returns its subject identity.
func (c *edDSACodec) ExtractSubject(tokenString string, purpose KeyPurpose) (string, int64, error) {
	claims, err := c.Verify(tokenString, purpose)
	if err != nil {
		return "", 0, err
	}
	return claims.Username, claims.UserID, nil
}
