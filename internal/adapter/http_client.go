package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/akarpenko/fashion-gateway/internal/config"
	"github.com/akarpenko/fashion-gateway/models"
	"github.com/go-resty/resty/v2"
)

// tokenSkew is subtracted from the reported token lifetime so a cached
// token is renewed before the catalog actually rejects it.
const tokenSkew = 30 * time.Second

// httpCatalogAdapter is the resty-backed implementation of
// [CatalogAdapter]. It authenticates to the catalog with the OAuth
// client-credentials flow and caches the machine token until shortly
// before its expiry.
type httpCatalogAdapter struct {
	client       *resty.Client
	authURL      string
	clientID     string
	clientSecret string

	mu          sync.RWMutex
	token       string
	tokenExpiry time.Time
}

// NewHTTPCatalogAdapter constructs a [CatalogAdapter] from the catalog
// configuration section.
func NewHTTPCatalogAdapter(cfg config.Catalog) CatalogAdapter {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	cli := resty.New().
		SetBaseURL(strings.TrimRight(cfg.BaseURL, "/")).
		SetTimeout(timeout)

	return &httpCatalogAdapter{
		client:       cli,
		authURL:      cfg.AuthURL,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
	}
}

// GetProducts fetches a product page, forwarding only the paging
// parameters the caller actually set.
func (a *httpCatalogAdapter) GetProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error) {
	token, err := a.bearerToken(ctx)
	if err != nil {
		return models.ProductPage{}, err
	}

	var page models.ProductPage
	req := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetResult(&page)

	if filter.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(filter.Limit))
	}
	if filter.Offset > 0 {
		req.SetQueryParam("offset", strconv.Itoa(filter.Offset))
	}

	resp, err := req.Get("/products")
	if err != nil {
		return models.ProductPage{}, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if err := classifyStatus(resp.StatusCode()); err != nil {
		return models.ProductPage{}, err
	}

	return page, nil
}

// GetProductByID fetches a single product payload verbatim.
func (a *httpCatalogAdapter) GetProductByID(ctx context.Context, productID string) (json.RawMessage, error) {
	token, err := a.bearerToken(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(token).
		Get("/products/" + productID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if err := classifyStatus(resp.StatusCode()); err != nil {
		return nil, err
	}

	return json.RawMessage(resp.Body()), nil
}

// bearerToken returns the cached machine token, fetching a fresh one
// through the client-credentials flow when the cache is empty or about
// to expire.
func (a *httpCatalogAdapter) bearerToken(ctx context.Context) (string, error) {
	a.mu.RLock()
	token, expiry := a.token, a.tokenExpiry
	a.mu.RUnlock()

	if token != "" && time.Now().Before(expiry) {
		return token, nil
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	// another request may have refreshed the token while we waited
	if a.token != "" && time.Now().Before(a.tokenExpiry) {
		return a.token, nil
	}

	var tokenResp struct {
		AccessToken string `json:"access_token"`
		ExpiresIn   int64  `json:"expires_in"`
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetBasicAuth(a.clientID, a.clientSecret).
		SetFormData(map[string]string{"grant_type": "client_credentials"}).
		SetResult(&tokenResp).
		Post(a.authURL)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrCatalogUnavailable, err)
	}
	if resp.StatusCode() == http.StatusUnauthorized || resp.StatusCode() == http.StatusForbidden {
		return "", ErrCatalogUnauthorized
	}
	if resp.StatusCode() != http.StatusOK || tokenResp.AccessToken == "" {
		return "", fmt.Errorf("%w: token endpoint returned %d", ErrCatalogUnavailable, resp.StatusCode())
	}

	a.token = tokenResp.AccessToken
	a.tokenExpiry = time.Now().Add(time.Duration(tokenResp.ExpiresIn)*time.Second - tokenSkew)

	return a.token, nil
}

// classifyStatus maps a catalog response status to a sentinel error.
func classifyStatus(status int) error {
	switch {
	case status == http.StatusOK:
		return nil
	case status == http.StatusNotFound:
		return ErrProductNotFound
	case status == http.StatusUnauthorized || status == http.StatusForbidden:
		return ErrCatalogUnauthorized
	default:
		return fmt.Errorf("%w: unexpected status %d", ErrCatalogUnavailable, status)
	}
}
