// internal/app/features/airlines/details.go
package airlines

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

// loadDetails gathers the airline, its flights and the distinct planes it
// flies. Three API calls, made in order.
func (h *Handler) loadDetails(ctx context.Context, r *http.Request, id uint) (detailsData, error) {
	var data detailsData
	if _, err := h.API.GetJSON(ctx, r, "AirlineData/FindAirline/"+apiID(id), &data.Airline); err != nil {
		return detailsData{}, err
	}
	if _, err := h.API.GetJSON(ctx, r, "FlightData/ListFlightsForAirline/"+apiID(id), &data.Flights); err != nil {
		return detailsData{}, err
	}
	if _, err := h.API.GetJSON(ctx, r, "FlightData/ListPlanesForAirline/"+apiID(id), &data.Planes); err != nil {
		return detailsData{}, err
	}
	data.BaseVM = viewdata.NewBaseVM(r, data.Airline.AirlineName, listPath)
	data.BackURL = navigation.SafeBackURL(r, navigation.AirlinesBackURL)
	return data, nil
}

// GET /Airline/Details/{id}
func (h *Handler) ServeDetails(w http.ResponseWriter, r *http.Request) {
	id, ok := airlineIDParam(r)
	if !ok {
		renderError(w, r, http.StatusBadRequest, "Invalid airline id.")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	data, err := h.loadDetails(ctx, r, id)
	switch {
	case apiclient.IsNotFound(err):
		renderError(w, r, http.StatusNotFound, "That airline does not exist.")
		return
	case err != nil:
		h.Log.Error("airline details via api failed", zap.Error(err), zap.Uint("airline_id", id))
		renderError(w, r, http.StatusInternalServerError, "Could not load the airline.")
		return
	}
	templates.Render(w, r, "airline_details", data)
}
