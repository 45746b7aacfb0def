package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/internal/service"
	"github.com/akarpenko/fashion-gateway/models"
)

// refreshTokenHeader carries the refresh token on the refresh endpoint;
// the JSON body only selects the grant.
const refreshTokenHeader = "Refresh-Token"

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Register(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUserAlreadyExists):
			log.Warn().Str("email", req.Email).Msg("user already exists")
			writeErrorWithID(w, r, http.StatusConflict, msgUserAlreadyExists, req.Email)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			writeError(w, r, http.StatusInternalServerError, msgUnhandled)
			return
		}
	}

	writeData(w, r, http.StatusOK, result)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, msgInvalidJSON)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedGrant):
			writeError(w, r, http.StatusBadRequest, msgInvalidGrantType)
			return
		case errors.Is(err, service.ErrUserNotFound):
			writeErrorWithID(w, r, http.StatusNotFound, msgUserNotFound, req.Email)
			return
		case errors.Is(err, service.ErrInvalidCredentials):
			writeError(w, r, http.StatusUnauthorized, msgLoginFailed)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user login")
			writeError(w, r, http.StatusInternalServerError, msgUnhandled)
			return
		}
	}

	log.Debug().Str("email", req.Email).Msg("user successfully logged in")

	writeData(w, r, http.StatusOK, result)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, http.StatusBadRequest, msgInvalidJSON)
		return
	}
	req.RefreshToken = r.Header.Get(refreshTokenHeader)

	pair, err := h.services.AuthService.Refresh(ctx, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrUnsupportedGrant):
			writeError(w, r, http.StatusBadRequest, msgInvalidGrantType)
			return
		case errors.Is(err, service.ErrUserNotFound):
			writeError(w, r, http.StatusNotFound, msgUserNotFound)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during token refresh")
			writeError(w, r, http.StatusInternalServerError, msgUnhandled)
			return
		}
	}

	writeData(w, r, http.StatusOK, pair)
}
