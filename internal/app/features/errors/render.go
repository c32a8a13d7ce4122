// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

func render(w http.ResponseWriter, r *http.Request, status int, title, msg, backURL, backDefault string) {
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, title, backDefault),
		Status:  status,
		Message: msg,
	}
	if backURL != "" {
		data.BackURL = backURL
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "error_page", data)
}

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	render(w, r, http.StatusUnauthorized, "Sign in required", "Please sign in to continue.", backURL, "/login")
}

// RenderForbidden shows a friendly access error page with a message.
// If backURL is empty, it resolves a safe back URL with a default fallback.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusForbidden, "Access denied", msg, backURL, "/")
}

// RenderNotFound shows a 404 page.
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusNotFound, "Not found", msg, backURL, "/")
}

// RenderBadRequest shows a 400 page.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusBadRequest, "Bad request", msg, backURL, "/")
}

// RenderServerError shows a 500 page. The message is shown to the user, so
// it must not carry internal detail.
func RenderServerError(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	render(w, r, http.StatusInternalServerError, "Something went wrong", msg, backURL, "/")
}
