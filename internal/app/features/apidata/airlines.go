// internal/app/features/apidata/airlines.go
package apidata

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/htmlsanitize"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/go-chi/chi/v5"
)

const airlineEntity = "Airline"

func cleanAirline(a *models.Airline) {
	a.AirlineName = htmlsanitize.PlainText(a.AirlineName)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/AirlineData/ListAirlines[/{search}]                                 |
*─────────────────────────────────────────────────────────────────────────────*/

// ListAirlines returns every airline, or the ones whose name contains
// {search} (case and accent insensitive).
func (h *Handler) ListAirlines(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	search := strings.TrimSpace(chi.URLParam(r, "search"))
	rows, err := h.Airlines.Search(ctx, search)
	if err != nil {
		h.writeStoreError(w, r, err, airlineEntity, 0)
		return
	}
	writeJSON(w, http.StatusOK, models.AirlineDtos(rows))
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /api/AirlineData/FindAirline/{id}                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) FindAirline(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	a, err := h.Airlines.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, airlineEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, a.ToDto())
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/AirlineData/AddAirline                                             |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) AddAirline(w http.ResponseWriter, r *http.Request) {
	var in models.Airline
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanAirline(&in)
	if !validated(w, &in) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	a, err := h.Airlines.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, r, err, airlineEntity, 0)
		return
	}
	h.Audit.Created(ctx, r, airlineEntity, a.AirlineID, a.AirlineName)
	created(w, locationFor("AirlineData", "FindAirline", a.AirlineID), a.ToDto())
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/AirlineData/UpdateAirline/{id}                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) UpdateAirline(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in models.Airline
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanAirline(&in)
	if !validated(w, &in) {
		return
	}
	if in.AirlineID != id {
		writeError(w, http.StatusBadRequest, "AirlineId in body does not match the URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Airlines.Update(ctx, id, in); err != nil {
		h.writeStoreError(w, r, err, airlineEntity, id)
		return
	}
	h.Audit.Updated(ctx, r, airlineEntity, id, in.AirlineName)
	w.WriteHeader(http.StatusNoContent)
}

/*─────────────────────────────────────────────────────────────────────────────*
| POST /api/AirlineData/DeleteAirline/{id}                                     |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) DeleteAirline(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Airlines.Delete(ctx, id); err != nil {
		h.writeStoreError(w, r, err, airlineEntity, id)
		return
	}
	h.Audit.Deleted(ctx, r, airlineEntity, id)
	w.WriteHeader(http.StatusOK)
}
