package adapter

import "errors"

var (
	// ErrProductNotFound is returned when the catalog has no product for
	// the requested identifier.
	ErrProductNotFound = errors.New("product not found")

	// ErrCatalogUnauthorized is returned when the catalog rejects the
	// gateway's machine credentials.
	ErrCatalogUnauthorized = errors.New("catalog rejected client credentials")

	// ErrCatalogUnavailable is returned for any other failed catalog
	// call (network error or unexpected status).
	ErrCatalogUnavailable = errors.New("catalog request failed")
)
