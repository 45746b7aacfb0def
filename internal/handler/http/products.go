package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/akarpenko/fashion-gateway/internal/adapter"
	"github.com/akarpenko/fashion-gateway/internal/logger"
	"github.com/akarpenko/fashion-gateway/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) getProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// a productId query parameter narrows the listing to a single product
	if productID := r.URL.Query().Get("productId"); productID != "" {
		h.writeProduct(w, r, productID)
		return
	}

	filter := models.ProductFilter{
		Limit:  queryInt(r, "limit"),
		Offset: queryInt(r, "offset"),
	}

	page, err := h.services.CatalogService.GetProducts(ctx, filter)
	if err != nil {
		logger.FromRequest(r).Err(err).Msg("product listing failed")
		writeError(w, r, http.StatusNotFound, msgProductNotFound)
		return
	}

	writeData(w, r, http.StatusOK, page)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	h.writeProduct(w, r, chi.URLParam(r, "productID"))
}

func (h *Handler) writeProduct(w http.ResponseWriter, r *http.Request, productID string) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	product, err := h.services.CatalogService.GetProduct(ctx, productID)
	if err != nil {
		switch {
		case errors.Is(err, adapter.ErrProductNotFound):
			writeErrorWithID(w, r, http.StatusNotFound, msgProductNotFound, productID)
			return
		default:
			log.Err(err).Str("product_id", productID).Msg("catalog call failed")
			writeErrorWithID(w, r, http.StatusNotFound, msgProductNotFound, productID)
			return
		}
	}

	writeData(w, r, http.StatusOK, product)
}

// queryInt parses a non-negative integer query parameter, treating a
// missing or malformed value as unset.
func queryInt(r *http.Request, name string) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0
	}

	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0
	}

	return value
}
