// internal/app/features/apidata/events.go
package apidata

import (
	"context"
	"net/http"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/htmlsanitize"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
)

const eventEntity = "Event"

func cleanEvent(e *models.Event) {
	e.EventName = htmlsanitize.PlainText(e.EventName)
	e.RegistrationWebsite = strings.TrimSpace(htmlsanitize.PlainText(e.RegistrationWebsite))
}

/*─────────────────────────────────────────────────────────────────────────────*
| Listings                                                                     |
| Filtered listings answer 200 with [] when nothing matches, including when    |
| the group, location or organization itself does not exist.                   |
*─────────────────────────────────────────────────────────────────────────────*/

// GET /api/EventData/ListEvents
func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Events.List(ctx)
	if err != nil {
		h.writeStoreError(w, r, err, eventEntity, 0)
		return
	}
	writeJSON(w, http.StatusOK, models.EventDtos(rows))
}

// eventLister is one of the Events store's filtered listings.
type eventLister func(ctx context.Context, id uint) ([]models.Event, error)

func (h *Handler) listEventsBy(list eventLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := parseID(r, "id")
		if err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
		defer cancel()

		rows, err := list(ctx, id)
		if err != nil {
			h.writeStoreError(w, r, err, eventEntity, id)
			return
		}
		writeJSON(w, http.StatusOK, models.EventDtos(rows))
	}
}

// GET /api/EventData/ListEventsForGroup/{id}
func (h *Handler) ListEventsForGroup(w http.ResponseWriter, r *http.Request) {
	h.listEventsBy(h.Events.ForGroup)(w, r)
}

// GET /api/EventData/ListEventsForLocation/{id}
func (h *Handler) ListEventsForLocation(w http.ResponseWriter, r *http.Request) {
	h.listEventsBy(h.Events.ForLocation)(w, r)
}

// GET /api/EventData/ListEventsForOrganization/{id}
func (h *Handler) ListEventsForOrganization(w http.ResponseWriter, r *http.Request) {
	h.listEventsBy(h.Events.ForOrganization)(w, r)
}

/*─────────────────────────────────────────────────────────────────────────────*
| CRUD                                                                         |
*─────────────────────────────────────────────────────────────────────────────*/

// GET /api/EventData/FindEvent/{id}
func (h *Handler) FindEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	e, err := h.Events.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, eventEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, e.ToDto())
}

// AddEvent creates an event. A LocationId or OrganizationId that does not
// exist is rejected by the database's foreign keys and answered with 400.
//
// POST /api/EventData/AddEvent
func (h *Handler) AddEvent(w http.ResponseWriter, r *http.Request) {
	var in models.Event
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanEvent(&in)
	if !validated(w, &in) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	e, err := h.Events.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, r, err, eventEntity, 0)
		return
	}
	h.Audit.Created(ctx, r, eventEntity, e.EventID, e.EventName)
	created(w, locationFor("EventData", "FindEvent", e.EventID), e.ToDto())
}

// POST /api/EventData/UpdateEvent/{id}
func (h *Handler) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in models.Event
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	cleanEvent(&in)
	if !validated(w, &in) {
		return
	}
	if in.EventID != id {
		writeError(w, http.StatusBadRequest, "EventId in body does not match the URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Events.Update(ctx, id, in); err != nil {
		h.writeStoreError(w, r, err, eventEntity, id)
		return
	}
	h.Audit.Updated(ctx, r, eventEntity, id, in.EventName)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteEvent removes the event together with its group links.
//
// POST /api/EventData/DeleteEvent/{id}
func (h *Handler) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Events.Delete(ctx, id); err != nil {
		h.writeStoreError(w, r, err, eventEntity, id)
		return
	}
	h.Audit.Deleted(ctx, r, eventEntity, id)
	w.WriteHeader(http.StatusOK)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Event <-> Group links                                                        |
*─────────────────────────────────────────────────────────────────────────────*/

func parsePair(r *http.Request) (eventID, groupID uint, err error) {
	if eventID, err = parseID(r, "eventId"); err != nil {
		return 0, 0, err
	}
	if groupID, err = parseID(r, "groupId"); err != nil {
		return 0, 0, err
	}
	return eventID, groupID, nil
}

// AssociateEventWithGroup is idempotent: linking a pair that is already
// linked answers 200 and leaves a single junction row.
//
// POST /api/EventData/AssociateEventWithGroup/{eventId}/{groupId}
func (h *Handler) AssociateEventWithGroup(w http.ResponseWriter, r *http.Request) {
	eventID, groupID, err := parsePair(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Events.Associate(ctx, eventID, groupID); err != nil {
		h.writeStoreError(w, r, err, "Event or group", eventID)
		return
	}
	h.Audit.GroupLinked(ctx, r, eventID, groupID, true)
	w.WriteHeader(http.StatusOK)
}

// POST /api/EventData/UnAssociateEventWithGroup/{eventId}/{groupId}
func (h *Handler) UnAssociateEventWithGroup(w http.ResponseWriter, r *http.Request) {
	eventID, groupID, err := parsePair(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Events.UnAssociate(ctx, eventID, groupID); err != nil {
		h.writeStoreError(w, r, err, "Event or group", eventID)
		return
	}
	h.Audit.GroupLinked(ctx, r, eventID, groupID, false)
	w.WriteHeader(http.StatusOK)
}
