package http

import (
	"github.com/akarpenko/fashion-gateway/internal/crypto"
	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/internal/service"
)

// Handler owns the REST surface of the gateway. It dispatches requests
// to the service layer and maps tagged failures to status codes and
// localized messages.
type Handler struct {
	services *service.Services

	// codec verifies access tokens in the bearer middleware. The
	// middleware only ever uses the access purpose, so a refresh token
	// presented as a bearer credential is rejected by key separation.
	codec crypto.TokenCodec

	logger *logger.Logger
}

// NewHandler constructs the HTTP handler set.
func NewHandler(services *service.Services, codec crypto.TokenCodec, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		codec:    codec,
		logger:   logger,
	}
}
