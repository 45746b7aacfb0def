package models

import "encoding/json"

// ProductFilter carries the query parameters accepted by the product
// listing endpoint. When ProductID is set it takes precedence and the
// paging fields are ignored.
type ProductFilter struct {
	// ProductID selects a single product by its catalog identifier.
	ProductID string `json:"productId,omitempty"`

	// Limit caps the number of products per page. Zero means the
	// catalog's own default.
	Limit int `json:"limit,omitempty"`

	// Offset skips the given number of products. Zero-based.
	Offset int `json:"offset,omitempty"`
}

// ProductPage is the catalog's paged listing response, passed through to
// the caller without reinterpretation. Results stay raw JSON because the
// catalog owns the product schema, not this gateway.
type ProductPage struct {
	Limit   int               `json:"limit"`
	Offset  int               `json:"offset"`
	Count   int               `json:"count"`
	Total   int               `json:"total,omitempty"`
	Results []json.RawMessage `json:"results"`
}
