package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/akarpenko/fashion-gateway/internal/config"
	"github.com/akarpenko/fashion-gateway/internal/crypto"
	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/internal/store"
	"github.com/akarpenko/fashion-gateway/models"
)

// warnLastLoginUpdateFailed is reported on the login payload when the
// best-effort last-login mutation could not be persisted.
const warnLastLoginUpdateFailed = "last-login timestamp update failed"

// authService is the concrete implementation of AuthService.
//
// It orchestrates the credential and token lifecycle over three
// capability interfaces: the user repository for persistence, the
// password hasher for credential verification, and the token codec for
// all issuance and parsing. It holds no cross-request state; tokens are
// never persisted and stay valid purely by signature and expiry. In
// particular, refreshing does not revoke the previous refresh token,
// which remains independently valid until its own natural expiry.
type authService struct {
	userRepository store.UserRepository
	hasher         crypto.PasswordHasher
	codec          crypto.TokenCodec

	// accessTTL and refreshTTL are the independent lifetimes of the two
	// token kinds issued for one authentication event.
	accessTTL  time.Duration
	refreshTTL time.Duration

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given
// collaborators and populated with token lifetimes from cfg.
//
// The returned service is safe for concurrent use; all state is
// read-only after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, codec crypto.TokenCodec, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		codec:          codec,
		accessTTL:      cfg.AccessTokenTTL,
		refreshTTL:     cfg.RefreshTokenTTL,
		logger:         logger,
	}
}

// Login authenticates an existing user with a password grant.
//
// The grant type is checked first, then the user is looked up by email
// and the password is verified before tokens are issued. The last-login
// update is telemetry, not a security gate: its failure is logged,
// reported in the result's Warnings, and never blocks issuance.
//
// Returns [ErrUnsupportedGrant], [ErrUserNotFound],
// [ErrInvalidCredentials], or [ErrInternal] on a signing failure.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error) {
	log := logger.FromContext(ctx)

	if req.GrantType != models.GrantPassword {
		log.Error().Str("grant_type", string(req.GrantType)).Msg("unsupported grant type for login")
		return models.LoginResult{}, ErrUnsupportedGrant
	}

	user, err := a.userRepository.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Warn().Str("email", req.Email).Msg("login attempt for unknown user")
			return models.LoginResult{}, ErrUserNotFound
		}

		log.Err(err).Str("email", req.Email).Msg("user search by email failed")
		return models.LoginResult{}, fmt.Errorf("%w: user search by email failed: %w", ErrInternal, err)
	}

	if !a.hasher.Verify(req.Password, user.PasswordHash) {
		log.Warn().Int64("id", user.ID).Str("email", user.Email).Msg("wrong password")
		return models.LoginResult{}, ErrInvalidCredentials
	}

	var warnings []string
	if err := a.userRepository.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		log.Warn().Err(err).Int64("id", user.ID).Msg("last-login update failed, continuing")
		warnings = append(warnings, warnLastLoginUpdateFailed)
	}

	pair, err := a.issuePair(ctx, user.Email, user.ID)
	if err != nil {
		return models.LoginResult{}, err
	}

	return models.LoginResult{
		TokenPair: pair,
		Role:      user.Role,
		Warnings:  warnings,
	}, nil
}

// Register creates a new user account.
//
// Runs a duplicate check, hashes the password, creates the record and
// verifies the persisted result. If anything fails once the record exists, the
// just-created record is deleted again (best-effort, its own failure is
// swallowed and logged) and the original error is the one surfaced, so
// no orphaned account survives a half-finished registration.
//
// Returns the public projection of the created user, never the hash,
// or [ErrUserAlreadyExists] / [ErrInternal].
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error) {
	log := logger.FromContext(ctx)

	if _, err := a.userRepository.FindByEmail(ctx, req.Email); err == nil {
		log.Warn().Str("email", req.Email).Msg("registration for existing email")
		return models.RegisterResult{}, ErrUserAlreadyExists
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", req.Email).Msg("duplicate check failed")
		return models.RegisterResult{}, fmt.Errorf("%w: duplicate check failed: %w", ErrInternal, err)
	}

	hash, err := a.hasher.Hash(req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("password hashing failed, no user created")
		return models.RegisterResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	created, err := a.userRepository.Create(ctx, models.User{
		Email:        req.Email,
		PasswordHash: hash,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	})
	if err != nil {
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			// lost the race against a concurrent registration
			return models.RegisterResult{}, ErrUserAlreadyExists
		}

		log.Err(err).Str("email", req.Email).Msg("user creation ended with error")
		a.rollbackRegistration(ctx, req.Email)
		return models.RegisterResult{}, fmt.Errorf("%w: user creation ended with error: %w", ErrInternal, err)
	}

	if created.ID == 0 || created.PasswordHash == "" {
		err := errors.New("persisted user failed invariant check")
		log.Err(err).Str("email", req.Email).Msg("rolling back registration")
		a.rollbackRegistration(ctx, req.Email)
		return models.RegisterResult{}, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return models.RegisterResult{User: created.Public()}, nil
}

// Refresh exchanges a refresh grant for a freshly signed token pair.
//
// The new pair carries the subject claims extracted from the presented
// token and fresh expiries. Rotation without revocation: no server-side
// state records the old refresh token, so it stays valid until its own
// expiry.
//
// Every verification failure (bad signature, expired token, missing
// subject claims) collapses to [ErrUserNotFound]; the distinct cause is
// logged but not exposed to the caller.
func (a *authService) Refresh(ctx context.Context, req models.RefreshRequest) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	if req.GrantType != models.GrantRefresh {
		log.Error().Str("grant_type", string(req.GrantType)).Msg("unsupported grant type for refresh")
		return models.TokenPair{}, ErrUnsupportedGrant
	}

	username, userID, err := a.codec.ExtractSubject(req.RefreshToken, crypto.PurposeRefresh)
	if err != nil {
		log.Warn().Err(err).Msg("refresh token rejected")
		return models.TokenPair{}, ErrUserNotFound
	}

	return a.issuePair(ctx, username, userID)
}

// issuePair signs an access/refresh token pair carrying identical
// subject claims with the purpose-specific key pairs and lifetimes.
func (a *authService) issuePair(ctx context.Context, email string, userID int64) (models.TokenPair, error) {
	log := logger.FromContext(ctx)

	claims := models.TokenClaims{Username: email, UserID: userID}

	access, err := a.codec.Sign(claims, crypto.PurposeAccess, a.accessTTL)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("signing access token failed")
		return models.TokenPair{}, fmt.Errorf("%w: signing access token failed: %w", ErrInternal, err)
	}

	refresh, err := a.codec.Sign(claims, crypto.PurposeRefresh, a.refreshTTL)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("signing refresh token failed")
		return models.TokenPair{}, fmt.Errorf("%w: signing refresh token failed: %w", ErrInternal, err)
	}

	return models.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

// rollbackRegistration deletes the user record for email so a failed
// registration leaves no orphaned account behind. The delete is
// best-effort: its own failure is swallowed here because the original
// registration error must stay the surfaced one.
func (a *authService) rollbackRegistration(ctx context.Context, email string) {
	log := logger.FromContext(ctx)

	if err := a.userRepository.DeleteByEmail(ctx, email); err != nil {
		log.Warn().Err(err).Str("email", email).Msg("compensating delete failed, swallowing")
	}
}
