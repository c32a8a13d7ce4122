// internal/app/features/airlines/routes.go
package airlines

import (
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the Airline pages (typically at "/Airline" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
	})
	r.Get("/List", h.ServeList)
	r.Get("/Details/{id}", h.ServeDetails)
	r.Get("/Error", h.ServeError)

	// Writes are admin-only.
	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Get("/New", h.ServeNew)
		pr.Post("/Create", h.HandleCreate)
		pr.Get("/Edit/{id}", h.ServeEdit)
		pr.Post("/Update/{id}", h.HandleUpdate)
		pr.Get("/DeleteConfirm/{id}", h.ServeDeleteConfirm)
		pr.Post("/Delete/{id}", h.HandleDelete)
	})

	return r
}
