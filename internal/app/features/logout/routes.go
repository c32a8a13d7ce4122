// internal/app/features/logout/routes.go
package logout

import (
	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/go-chi/chi/v5"
)

// Routes serves /logout. The header's sign-out form posts; GET is kept for
// plain links.
func Routes(h *Handler, sm *auth.SessionManager) chi.Router {
	r := chi.NewRouter()
	r.Use(sm.RequireSignedIn)
	r.Get("/", h.ServeLogout)
	r.Post("/", h.ServeLogout)
	return r
}
