package service

import (
	"context"
	"encoding/json"

	"github.com/akarpenko/fashion-gateway/models"
)

// AuthService orchestrates the credential and token lifecycle: password
// login, registration, and refresh-token rotation.
type AuthService interface {
	// Login exchanges a password grant for a token pair plus the user's
	// role. Fails with ErrUnsupportedGrant, ErrUserNotFound,
	// ErrInvalidCredentials, or ErrInternal.
	Login(ctx context.Context, req models.LoginRequest) (models.LoginResult, error)

	// Register creates a new account and returns its public projection.
	// Fails with ErrUserAlreadyExists or ErrInternal.
	Register(ctx context.Context, req models.RegisterRequest) (models.RegisterResult, error)

	// Refresh exchanges a valid refresh grant for a freshly signed token
	// pair. Every verification failure collapses to ErrUserNotFound.
	Refresh(ctx context.Context, req models.RefreshRequest) (models.TokenPair, error)
}

// CatalogService exposes the product catalog pass-through.
type CatalogService interface {
	// GetProducts returns a page of products for the given paging
	// filter.
	GetProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error)

	// GetProduct returns the raw catalog payload of a single product.
	GetProduct(ctx context.Context, productID string) (json.RawMessage, error)
}
