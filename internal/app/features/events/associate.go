// internal/app/features/events/associate.go
package events

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// HandleAssociate adds the posted GroupId to the event.
//
// POST /Event/Associate/{id}
func (h *Handler) HandleAssociate(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, "EventData/AssociateEventWithGroup/", "associate")
}

// HandleUnAssociate removes the posted GroupId from the event. Neither the
// event nor the group is deleted.
//
// POST /Event/UnAssociate/{id}
func (h *Handler) HandleUnAssociate(w http.ResponseWriter, r *http.Request) {
	h.link(w, r, "EventData/UnAssociateEventWithGroup/", "unassociate")
}

func (h *Handler) link(w http.ResponseWriter, r *http.Request, prefix, action string) {
	eventID, ok := eventIDParam(r)
	if !ok {
		redirectError(w, r)
		return
	}
	groupID, ok := parseID(r.FormValue("GroupId"))
	if !ok {
		redirectError(w, r)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Upstream())
	defer cancel()

	if _, err := h.API.PostJSON(ctx, r, prefix+apiID(eventID)+"/"+apiID(groupID), nil, nil); err != nil {
		h.Log.Warn(action+" event via api failed",
			zap.Error(err),
			zap.Uint("event_id", eventID),
			zap.Uint("group_id", groupID))
		redirectError(w, r)
		return
	}
	http.Redirect(w, r, detailsPath(eventID), http.StatusSeeOther)
}
