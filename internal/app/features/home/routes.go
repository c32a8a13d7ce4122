// internal/app/features/home/routes.go
package home

import "github.com/go-chi/chi/v5"

// Routes serves only the landing page; anything else under "/" is left to
// chi's 404.
func Routes(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Get("/", h.ServeRoot)
	return r
}
