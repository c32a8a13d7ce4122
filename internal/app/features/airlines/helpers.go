// internal/app/features/airlines/helpers.go
package airlines

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
)

const (
	listPath  = "/Airline/List"
	errorPath = "/Airline/Error"
)

func detailsPath(id uint) string {
	return "/Airline/Details/" + strconv.FormatUint(uint64(id), 10)
}

func airlineIDParam(r *http.Request) (uint, bool) {
	n, err := strconv.ParseUint(strings.TrimSpace(chi.URLParam(r, "id")), 10, 64)
	if err != nil || n == 0 {
		return 0, false
	}
	return uint(n), true
}

func apiID(id uint) string {
	return strconv.FormatUint(uint64(id), 10)
}

// parseYear accepts a blank year (unknown) or a whole number.
func parseYear(s string) (int, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, true
	}
	n, err := strconv.Atoi(s)
	return n, err == nil
}

// renderError shows the airline error view with status.
func renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	data := errorData{
		BaseVM:  viewdata.NewBaseVM(r, "Error", listPath),
		Message: msg,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	templates.Render(w, r, "airline_error", data)
}

func redirectError(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, errorPath, http.StatusSeeOther)
}
