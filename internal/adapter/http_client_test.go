package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/akarpenko/fashion-gateway/internal/config"
	"github.com/akarpenko/fashion-gateway/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newCatalogTestServer fakes the catalog plus its OAuth token endpoint.
func newCatalogTestServer(t *testing.T, tokenCalls *atomic.Int64, products http.HandlerFunc) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/oauth/token", func(w http.ResponseWriter, r *http.Request) {
		tokenCalls.Add(1)

		clientID, clientSecret, ok := r.BasicAuth()
		if !ok || clientID != "gateway" || clientSecret != "s3cret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"access_token": "machine-token",
			"expires_in":   3600,
		})
	})
	mux.Handle("/products", products)
	mux.Handle("/products/", products)

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)

	return ts
}

func newTestAdapter(ts *httptest.Server) CatalogAdapter {
	return NewHTTPCatalogAdapter(config.Catalog{
		BaseURL:      ts.URL,
		AuthURL:      ts.URL + "/oauth/token",
		ClientID:     "gateway",
		ClientSecret: "s3cret",
		Timeout:      5 * time.Second,
	})
}

func TestHTTPCatalogAdapter_GetProducts(t *testing.T) {
	var tokenCalls atomic.Int64

	ts := newCatalogTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer machine-token", r.Header.Get("Authorization"))
		assert.Equal(t, "20", r.URL.Query().Get("limit"))
		assert.Equal(t, "40", r.URL.Query().Get("offset"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"limit":20,"offset":40,"count":1,"total":120,"results":[{"id":"p-1"}]}`))
	})

	a := newTestAdapter(ts)

	page, err := a.GetProducts(context.Background(), models.ProductFilter{Limit: 20, Offset: 40})
	require.NoError(t, err)

	assert.Equal(t, 20, page.Limit)
	assert.Equal(t, 40, page.Offset)
	assert.Equal(t, 120, page.Total)
	require.Len(t, page.Results, 1)
	assert.JSONEq(t, `{"id":"p-1"}`, string(page.Results[0]))
}

func TestHTTPCatalogAdapter_TokenIsCached(t *testing.T) {
	var tokenCalls atomic.Int64

	ts := newCatalogTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"results":[]}`))
	})

	a := newTestAdapter(ts)
	ctx := context.Background()

	_, err := a.GetProducts(ctx, models.ProductFilter{})
	require.NoError(t, err)
	_, err = a.GetProducts(ctx, models.ProductFilter{})
	require.NoError(t, err)
	_, err = a.GetProductByID(ctx, "p-1")
	require.NoError(t, err)

	assert.Equal(t, int64(1), tokenCalls.Load(), "the machine token must be fetched once and reused")
}

func TestHTTPCatalogAdapter_GetProductByID(t *testing.T) {
	var tokenCalls atomic.Int64

	ts := newCatalogTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/p-1", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"p-1","name":"Silk scarf"}`))
	})

	a := newTestAdapter(ts)

	product, err := a.GetProductByID(context.Background(), "p-1")
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"p-1","name":"Silk scarf"}`, string(product))
}

func TestHTTPCatalogAdapter_ProductNotFound(t *testing.T) {
	var tokenCalls atomic.Int64

	ts := newCatalogTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	a := newTestAdapter(ts)

	_, err := a.GetProductByID(context.Background(), "ghost")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestHTTPCatalogAdapter_UnauthorizedUpstream(t *testing.T) {
	var tokenCalls atomic.Int64

	ts := newCatalogTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	})

	a := newTestAdapter(ts)

	_, err := a.GetProducts(context.Background(), models.ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogUnauthorized)
}

func TestHTTPCatalogAdapter_BadClientCredentials(t *testing.T) {
	var tokenCalls atomic.Int64

	ts := newCatalogTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("the catalog must not be called without a machine token")
	})

	a := NewHTTPCatalogAdapter(config.Catalog{
		BaseURL:      ts.URL,
		AuthURL:      ts.URL + "/oauth/token",
		ClientID:     "gateway",
		ClientSecret: "wrong",
	})

	_, err := a.GetProducts(context.Background(), models.ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogUnauthorized)
}

func TestHTTPCatalogAdapter_ServerErrorIsUnavailable(t *testing.T) {
	var tokenCalls atomic.Int64

	ts := newCatalogTestServer(t, &tokenCalls, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	a := newTestAdapter(ts)

	_, err := a.GetProducts(context.Background(), models.ProductFilter{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrCatalogUnavailable)
}
