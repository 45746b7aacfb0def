package adapter

import (
	"context"
	"encoding/json"

	"github.com/akarpenko/fashion-gateway/models"
)

// CatalogAdapter is the outbound contract to the third-party product
// catalog. The gateway never interprets product payloads; it relays them.
type CatalogAdapter interface {
	// GetProducts fetches a page of products honouring the limit/offset
	// paging of the filter.
	GetProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error)

	// GetProductByID fetches a single product. A missing product is
	// reported as [ErrProductNotFound].
	GetProductByID(ctx context.Context, productID string) (json.RawMessage, error)
}
