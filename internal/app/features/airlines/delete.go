// internal/app/features/airlines/delete.go
package airlines

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/apiclient"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// ServeDeleteConfirm asks before deleting. An airline that still has
// flights cannot be deleted; the API refuses and the user lands on the
// error page.
//
// GET /Airline/DeleteConfirm/{id}
func (h *Handler) ServeDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	id, ok := airlineIDParam(r)
	if !ok {
		renderError(w, r, http.StatusBadRequest, "Invalid airline id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	var data deleteData
	if _, err := h.API.GetJSON(ctx, r, "AirlineData/FindAirline/"+apiID(id), &data.Airline); err != nil {
		if apiclient.IsNotFound(err) {
			renderError(w, r, http.StatusNotFound, "That airline does not exist.")
			return
		}
		h.Log.Error("load airline for delete failed", zap.Error(err), zap.Uint("airline_id", id))
		renderError(w, r, http.StatusInternalServerError, "Could not load the airline.")
		return
	}
	data.BaseVM = viewdata.NewBaseVM(r, "Delete "+data.Airline.AirlineName, detailsPath(id))
	templates.Render(w, r, "airline_delete", data)
}

// POST /Airline/Delete/{id}
func (h *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := airlineIDParam(r)
	if !ok {
		redirectError(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	if _, err := h.API.PostJSON(ctx, r, "AirlineData/DeleteAirline/"+apiID(id), nil, nil); err != nil {
		h.Log.Warn("delete airline via api failed", zap.Error(err), zap.Uint("airline_id", id))
		redirectError(w, r)
		return
	}
	http.Redirect(w, r, listPath, http.StatusSeeOther)
}

// GET /Airline/Error
func (h *Handler) ServeError(w http.ResponseWriter, r *http.Request) {
	renderError(w, r, http.StatusOK, "The request could not be completed.")
}
