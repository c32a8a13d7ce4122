// internal/app/features/apidata/flights.go
package apidata

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/htmlsanitize"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
)

const flightEntity = "Flight"

func cleanFlight(f *models.Flight) {
	f.FlightNumber = htmlsanitize.PlainText(f.FlightNumber)
	f.AirplaneModel = htmlsanitize.PlainText(f.AirplaneModel)
	f.RegistrationNum = htmlsanitize.PlainText(f.RegistrationNum)
}

// GET /api/FlightData/ListFlights
func (h *Handler) ListFlights(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Flights.List(ctx)
	if err != nil {
		h.writeStoreError(w, r, err, flightEntity, 0)
		return
	}
	writeJSON(w, http.StatusOK, models.FlightDtos(rows))
}

// GET /api/FlightData/ListFlightsForAirline/{id}
func (h *Handler) ListFlightsForAirline(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Flights.ForAirline(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, flightEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, models.FlightDtos(rows))
}

// ListPlanesForAirline returns one flight per distinct airplane the airline
// flies, keeping the earliest flight (by FlightId) for each registration.
//
// GET /api/FlightData/ListPlanesForAirline/{id}
func (h *Handler) ListPlanesForAirline(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Flights.ForAirline(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, flightEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, models.UniquePlanes(models.FlightDtos(rows)))
}

// GET /api/FlightData/ListFlightsForLocation/{id}
func (h *Handler) ListFlightsForLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Flights.ForLocation(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, flightEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, models.FlightDtos(rows))
}

// GET /api/FlightData/FindFlight/{id}
func (h *Handler) FindFlight(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	f, err := h.Flights.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, flightEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, f.ToDto())
}

// POST /api/FlightData/AddFlight
func (h *Handler) AddFlight(w http.ResponseWriter, r *http.Request) {
	var in models.Flight
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanFlight(&in)
	if !validated(w, &in) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	f, err := h.Flights.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, r, err, flightEntity, 0)
		return
	}
	h.Audit.Created(ctx, r, flightEntity, f.FlightID, f.FlightNumber)
	created(w, locationFor("FlightData", "FindFlight", f.FlightID), f.ToDto())
}

// POST /api/FlightData/UpdateFlight/{id}
func (h *Handler) UpdateFlight(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in models.Flight
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanFlight(&in)
	if !validated(w, &in) {
		return
	}
	if in.FlightID != id {
		writeError(w, http.StatusBadRequest, "FlightId in body does not match the URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Flights.Update(ctx, id, in); err != nil {
		h.writeStoreError(w, r, err, flightEntity, id)
		return
	}
	h.Audit.Updated(ctx, r, flightEntity, id, in.FlightNumber)
	w.WriteHeader(http.StatusNoContent)
}

// POST /api/FlightData/DeleteFlight/{id}
func (h *Handler) DeleteFlight(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Flights.Delete(ctx, id); err != nil {
		h.writeStoreError(w, r, err, flightEntity, id)
		return
	}
	h.Audit.Deleted(ctx, r, flightEntity, id)
	w.WriteHeader(http.StatusOK)
}
