package service

import (
	"github.com/akarpenko/fashion-gateway/internal/adapter"
	"github.com/akarpenko/fashion-gateway/internal/config"
	"github.com/akarpenko/fashion-gateway/internal/crypto"
	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/internal/store"
)

// Services aggregates every application service consumed by the
// transport layer.
type Services struct {
	AuthService    AuthService
	CatalogService CatalogService
}

// NewServices wires all services to their collaborators.
func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, codec crypto.TokenCodec, catalog adapter.CatalogAdapter, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, codec, cfg.Auth, logger),
		CatalogService: NewCatalogService(catalog, logger),
	}
}
