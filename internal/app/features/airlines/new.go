// internal/app/features/airlines/new.go
package airlines

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/formutil"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// GET /Airline/New
func (h *Handler) ServeNew(w http.ResponseWriter, r *http.Request) {
	var data formData
	formutil.SetBase(&data.Base, r, "New Airline", listPath)
	templates.Render(w, r, "airline_new", data)
}

// HandleCreate posts the form to the API. A year that is not a number is
// caught here and the form is shown again; every other rejection comes from
// the API and lands on the error page.
//
// POST /Airline/Create
func (h *Handler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		redirectError(w, r)
		return
	}

	name := r.PostForm.Get("AirlineName")
	yearRaw := r.PostForm.Get("FoundingYear")
	year, ok := parseYear(yearRaw)
	if !ok {
		data := formData{AirlineName: name, FoundingYear: yearRaw}
		formutil.SetBase(&data.Base, r, "New Airline", listPath)
		data.SetError("Founding year must be a whole number.")
		templates.Render(w, r, "airline_new", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	in := models.AirlineDto{AirlineName: name, FoundingYear: year}
	if _, err := h.API.PostJSON(ctx, r, "AirlineData/AddAirline", in, nil); err != nil {
		h.Log.Warn("create airline via api failed", zap.Error(err))
		redirectError(w, r)
		return
	}
	http.Redirect(w, r, listPath, http.StatusSeeOther)
}
