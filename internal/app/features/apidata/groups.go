// internal/app/features/apidata/groups.go
package apidata

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/htmlsanitize"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
)

const groupEntity = "Group"

// GET /api/GroupData/ListGroups
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Groups.List(ctx)
	if err != nil {
		h.writeStoreError(w, r, err, groupEntity, 0)
		return
	}
	writeJSON(w, http.StatusOK, models.GroupDtos(rows))
}

// GET /api/GroupData/ListGroupsForEvent/{id}
func (h *Handler) ListGroupsForEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Groups.ForEvent(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, groupEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, models.GroupDtos(rows))
}

// ListGroupsNotInEvent feeds the "add group" picker on the event page.
//
// GET /api/GroupData/ListGroupsNotInEvent/{id}
func (h *Handler) ListGroupsNotInEvent(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Groups.NotInEvent(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, groupEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, models.GroupDtos(rows))
}

// GET /api/GroupData/FindGroup/{id}
func (h *Handler) FindGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	g, err := h.Groups.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, groupEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, g.ToDto())
}

// POST /api/GroupData/AddGroup
func (h *Handler) AddGroup(w http.ResponseWriter, r *http.Request) {
	var in models.Group
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	in.GroupName = htmlsanitize.PlainText(in.GroupName)
	if !validated(w, &in) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	g, err := h.Groups.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, r, err, groupEntity, 0)
		return
	}
	h.Audit.Created(ctx, r, groupEntity, g.GroupID, g.GroupName)
	created(w, locationFor("GroupData", "FindGroup", g.GroupID), g.ToDto())
}

// POST /api/GroupData/UpdateGroup/{id}
func (h *Handler) UpdateGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in models.Group
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	in.GroupName = htmlsanitize.PlainText(in.GroupName)
	if !validated(w, &in) {
		return
	}
	if in.GroupID != id {
		writeError(w, http.StatusBadRequest, "GroupId in body does not match the URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Groups.Update(ctx, id, in); err != nil {
		h.writeStoreError(w, r, err, groupEntity, id)
		return
	}
	h.Audit.Updated(ctx, r, groupEntity, id, in.GroupName)
	w.WriteHeader(http.StatusNoContent)
}

// DeleteGroup also drops the group from every event it attends.
//
// POST /api/GroupData/DeleteGroup/{id}
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Long())
	defer cancel()

	if err := h.Groups.Delete(ctx, id); err != nil {
		h.writeStoreError(w, r, err, groupEntity, id)
		return
	}
	h.Audit.Deleted(ctx, r, groupEntity, id)
	w.WriteHeader(http.StatusOK)
}
