package service

import (
	"context"
	"encoding/json"

	"github.com/akarpenko/fashion-gateway/internal/adapter"
	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/models"
)

// catalogService is the concrete implementation of CatalogService.
// It is a thin pass-through to the catalog adapter: the gateway owns no
// product data and never reinterprets the catalog's payloads.
type catalogService struct {
	catalog adapter.CatalogAdapter
	logger  *logger.Logger
}

// NewCatalogService constructs a CatalogService over the given adapter.
func NewCatalogService(catalog adapter.CatalogAdapter, logger *logger.Logger) CatalogService {
	return &catalogService{
		catalog: catalog,
		logger:  logger,
	}
}

// GetProducts returns one catalog page for the given paging filter.
func (c *catalogService) GetProducts(ctx context.Context, filter models.ProductFilter) (models.ProductPage, error) {
	log := logger.FromContext(ctx)

	page, err := c.catalog.GetProducts(ctx, filter)
	if err != nil {
		log.Err(err).Int("limit", filter.Limit).Int("offset", filter.Offset).Msg("catalog listing failed")
		return models.ProductPage{}, err
	}

	return page, nil
}

// GetProduct returns the raw catalog payload of a single product.
func (c *catalogService) GetProduct(ctx context.Context, productID string) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	product, err := c.catalog.GetProductByID(ctx, productID)
	if err != nil {
		log.Err(err).Str("product_id", productID).Msg("catalog lookup failed")
		return nil, err
	}

	return product, nil
}
