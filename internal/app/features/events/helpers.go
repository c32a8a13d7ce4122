// internal/app/features/events/helpers.go
package events

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

const (
	listPath  = "/Event/List"
	errorPath = "/Event/Error"
)

func detailsPath(id uint) string {
	return "/Event/Details/" + apiID(id)
}

func apiID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

func parseID(s string) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func eventIDParam(r *http.Request) (uint, bool) {
	return parseID(chi.URLParam(r, "id"))
}

func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := errorData{
		BaseVM:  viewdata.NewBaseVM(r, "Error", listPath),
		Message: msg,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "event_error", data)
}

func redirectError(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, errorPath, http.StatusSeeOther)
}

// GET /Event/Error
func (h *Handler) ServeError(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusOK, "The request could not be completed.")
}
