package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// Init builds the router. Auth routes are open; the product routes sit
// behind the bearer middleware.
func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
		r.Post("/api/auth/token", h.refresh)
	})

	// routes behind access-token verification
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/api/products", h.getProducts)
		r.Get("/api/products/{productID}", h.getProduct)
	})

	return router
}
