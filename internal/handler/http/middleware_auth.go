package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/akarpenko/fashion-gateway/internal/crypto"
	"github.com/akarpenko/fashion-gateway/internal/logger"
)

// ctxKey is the private type for context keys set by this package.
type ctxKey string

// UserIDCtxKey stores the authenticated user's ID in the request
// context for downstream handlers.
const UserIDCtxKey ctxKey = "userID"

// auth is an HTTP middleware that enforces bearer authentication on the
// catalog routes.
//
// It inspects the incoming "Authorization" header, extracts the bearer
// token, and verifies it with the access key pair. A refresh token
// presented here fails signature verification because the refresh flow
// signs with a separate key pair.
//
// The middleware rejects requests with HTTP 401 Unauthorized when the
// header is absent or malformed, or the token is expired or invalid.
// All rejection events are logged via the context-scoped logger.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		tokenString, err := getTokenFromAuthHeader(authHeader)
		if err != nil {
			log.Err(err).Send()
			writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		claims, err := h.codec.Verify(tokenString, crypto.PurposeAccess)
		if err != nil {
			switch {
			case errors.Is(err, crypto.ErrTokenExpired):
				log.Warn().Err(err).Msg("access token expired")
			default:
				log.Warn().Err(err).Msg("access token rejected")
			}
			writeError(w, r, http.StatusUnauthorized, msgUnauthorized)
			return
		}

		// Store the authenticated user's ID in the context so that
		// downstream handlers can retrieve it without re-parsing the token.
		ctx := context.WithValue(r.Context(), UserIDCtxKey, claims.UserID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// getTokenFromAuthHeader extracts the bearer token string from a raw
// "Authorization" HTTP header value of the standard form
// "<scheme> <token>".
func getTokenFromAuthHeader(authHeader string) (string, error) {
	parts := strings.Split(authHeader, " ")
	if len(parts) < 2 {
		return "", ErrInvalidAuthorizationHeader
	}

	tokenString := parts[1]
	if tokenString == "" {
		return "", ErrEmptyToken
	}

	return tokenString, nil
}
