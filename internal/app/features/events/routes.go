// internal/app/features/events/routes.go
package events

import (
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes mounts the Event pages (at "/Event" from bootstrap).
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, listPath, http.StatusSeeOther)
	})
	r.Get("/List", h.ServeList)
	r.Get("/Details/{id}", h.ServeDetails)
	r.Get("/Error", h.ServeError)

	r.Group(func(pr chi.Router) {
		pr.Use(sm.RequireSignedIn)
		pr.Use(sm.RequireRole("admin"))

		pr.Post("/Associate/{id}", h.HandleAssociate)
		pr.Post("/UnAssociate/{id}", h.HandleUnAssociate)
	})

	return r
}
