package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/akarpenko/fashion-gateway/internal/crypto"
	"github.com/akarpenko/fashion-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	rec, envelope := env.do(t, http.MethodGet, "/api/products", nil, nil)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "unauthorized", envelope.Message["error"])
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	for _, header := range []string{"Bearer", "Bearer ", "justonetoken"} {
		rec, _ := env.do(t, http.MethodGet, "/api/products", nil, func(req *http.Request) {
			req.Header.Set("Authorization", header)
		})

		assert.Equal(t, http.StatusUnauthorized, rec.Code, "header %q must be rejected", header)
	}
}

func TestAuthMiddleware_RefreshTokenRejectedAsBearer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	refreshToken, err := env.codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 7}, crypto.PurposeRefresh, time.Hour)
	require.NoError(t, err)

	rec, _ := env.do(t, http.MethodGet, "/api/products", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+refreshToken)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	accessToken, err := env.codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 7}, crypto.PurposeAccess, time.Nanosecond)
	require.NoError(t, err)
	time.Sleep(10 * time.Millisecond)

	rec, _ := env.do(t, http.MethodGet, "/api/products", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	})

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	accessToken, err := env.codec.Sign(models.TokenClaims{Username: "anna@example.com", UserID: 7}, crypto.PurposeAccess, time.Hour)
	require.NoError(t, err)

	env.catalog.EXPECT().GetProducts(gomock.Any(), models.ProductFilter{}).Return(models.ProductPage{}, nil)

	rec, _ := env.do(t, http.MethodGet, "/api/products", nil, func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+accessToken)
	})

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestTraceIDMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	env := newTestEnv(t, ctrl)

	// a generated trace ID is echoed back
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/products", nil))
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))

	// a caller-supplied trace ID is preserved
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set(traceIDHeader, "caller-trace-42")
	rec = httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)
	assert.Equal(t, "caller-trace-42", rec.Header().Get(traceIDHeader))
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	token, err := getTokenFromAuthHeader("Bearer abc.def.ghi")
	require.NoError(t, err)
	assert.Equal(t, "abc.def.ghi", token)

	_, err = getTokenFromAuthHeader("Bearer")
	assert.ErrorIs(t, err, ErrInvalidAuthorizationHeader)

	_, err = getTokenFromAuthHeader("Bearer ")
	assert.ErrorIs(t, err, ErrEmptyToken)
}
