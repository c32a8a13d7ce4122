// internal/app/features/apidata/locations.go
package apidata

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/htmlsanitize"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
)

const locationEntity = "Location"

func cleanLocation(l *models.Location) {
	l.LocationName = htmlsanitize.PlainText(l.LocationName)
	l.LocationAddress = htmlsanitize.PlainText(l.LocationAddress)
}

// GET /api/LocationData/ListLocations
func (h *Handler) ListLocations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Locations.List(ctx)
	if err != nil {
		h.writeStoreError(w, r, err, locationEntity, 0)
		return
	}
	writeJSON(w, http.StatusOK, models.LocationDtos(rows))
}

// GET /api/LocationData/FindLocation/{id}
func (h *Handler) FindLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	l, err := h.Locations.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, locationEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, l.ToDto())
}

// POST /api/LocationData/AddLocation
func (h *Handler) AddLocation(w http.ResponseWriter, r *http.Request) {
	var in models.Location
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanLocation(&in)
	if !validated(w, &in) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	l, err := h.Locations.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, r, err, locationEntity, 0)
		return
	}
	h.Audit.Created(ctx, r, locationEntity, l.LocationID, l.LocationName)
	created(w, locationFor("LocationData", "FindLocation", l.LocationID), l.ToDto())
}

// POST /api/LocationData/UpdateLocation/{id}
func (h *Handler) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in models.Location
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanLocation(&in)
	if !validated(w, &in) {
		return
	}
	if in.LocationID != id {
		writeError(w, http.StatusBadRequest, "LocationId in body does not match the URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Locations.Update(ctx, id, in); err != nil {
		h.writeStoreError(w, r, err, locationEntity, id)
		return
	}
	h.Audit.Updated(ctx, r, locationEntity, id, in.LocationName)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteLocation fails with 400 while any event or flight still uses the
// location.
//
// POST /api/LocationData/DeleteLocation/{id}
func (h *Handler) DeleteLocation(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Locations.Delete(ctx, id); err != nil {
		h.writeStoreError(w, r, err, locationEntity, id)
		return
	}
	h.Audit.Deleted(ctx, r, locationEntity, id)
	w.WriteHeader(http.StatusOK)
}
