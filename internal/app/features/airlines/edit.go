// internal/app/features/airlines/edit.go
package airlines

import (
	"context"
	"net/http"
	"strconv"

	"github.com/dalemusser/groupflight/internal/app/system/apiclient"
	"github.com/dalemusser/groupflight/internal/app/system/formutil"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// GET /Airline/Edit/{id}
func (h *Handler) ServeEdit(w http.ResponseWriter, r *http.Request) {
	id, ok := airlineIDParam(r)
	if !ok {
		renderError(w, r, http.StatusBadRequest, "Invalid airline id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	var a models.AirlineDto
	if _, err := h.API.GetJSON(ctx, r, "AirlineData/FindAirline/"+apiID(id), &a); err != nil {
		if apiclient.IsNotFound(err) {
			renderError(w, r, http.StatusNotFound, "That airline does not exist.")
			return
		}
		h.Log.Error("load airline for edit failed", zap.Error(err), zap.Uint("airline_id", id))
		renderError(w, r, http.StatusInternalServerError, "Could not load the airline.")
		return
	}

	data := formData{AirlineID: a.AirlineID, AirlineName: a.AirlineName}
	if a.FoundingYear != 0 {
		data.FoundingYear = strconv.Itoa(a.FoundingYear)
	}
	formutil.SetBase(&data.Base, r, "Edit "+a.AirlineName, detailsPath(id))
	templates.Render(w, r, "airline_edit", data)
}

// POST /Airline/Update/{id}
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := airlineIDParam(r)
	if !ok {
		redirectError(w, r)
		return
	}
	if err := r.ParseForm(); err != nil {
		redirectError(w, r)
		return
	}

	name := r.PostForm.Get("AirlineName")
	yearRaw := r.PostForm.Get("FoundingYear")
	year, ok := parseYear(yearRaw)
	if !ok {
		data := formData{AirlineID: id, AirlineName: name, FoundingYear: yearRaw}
		formutil.SetBase(&data.Base, r, "Edit airline", detailsPath(id))
		data.SetError("Founding year must be a whole number.")
		templates.Render(w, r, "airline_edit", data)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	in := models.AirlineDto{AirlineID: id, AirlineName: name, FoundingYear: year}
	if _, err := h.API.PostJSON(ctx, r, "AirlineData/UpdateAirline/"+apiID(id), in, nil); err != nil {
		h.Log.Warn("update airline via api failed", zap.Error(err), zap.Uint("airline_id", id))
		redirectError(w, r)
		return
	}
	http.Redirect(w, r, detailsPath(id), http.StatusSeeOther)
}
