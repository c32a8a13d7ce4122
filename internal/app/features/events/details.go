// internal/app/features/events/details.go
package events

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/apiclient"
	"github.com/dalemusser/groupflight/internal/app/system/navigation"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

func (h *Handler) loadDetails(ctx context.Context, r *http.Request, id uint) (detailsData, error) {
	var data detailsData
	if _, err := h.API.GetJSON(ctx, r, "EventData/FindEvent/"+apiID(id), &data.Event); err != nil {
		return detailsData{}, err
	}
	if _, err := h.API.GetJSON(ctx, r, "GroupData/ListGroupsForEvent/"+apiID(id), &data.Groups); err != nil {
		return detailsData{}, err
	}
	if _, err := h.API.GetJSON(ctx, r, "GroupData/ListGroupsNotInEvent/"+apiID(id), &data.Available); err != nil {
		return detailsData{}, err
	}
	data.BaseVM = viewdata.NewBaseVM(r, data.Event.EventName, listPath)
	data.BackURL = navigation.SafeBackURL(r, navigation.EventsBackURL)
	return data, nil
}

// ServeDetails shows the event with its groups. Admins also get the
// picker for groups not yet attending.
//
// GET /Event/Details/{id}
func (h *Handler) ServeDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := eventIDParam(r)
	if !ok {
		renderError(w, r, http.StatusBadRequest, "Invalid event id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	data, err := h.loadDetails(ctx, r, id)
	switch {
	case apiclient.IsNotFound(err):
		renderError(w, r, http.StatusNotFound, "That event does not exist.")
		return
	case err != nil:
		h.Log.Error("event details via api failed", zap.Error(err), zap.Uint("event_id", id))
		renderError(w, r, http.StatusInternalServerError, "Could not load the event.")
		return
	}
	templates.Render(w, r, "event_details", data)
}
