// internal/app/features/apidata/organizations.go
package apidata

import (
	"context"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/htmlsanitize"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
)

const organizationEntity = "Organization"

func (h *Handler) ListOrganizations(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	rows, err := h.Organizations.List(ctx)
	if err != nil {
		h.writeStoreError(w, r, err, organizationEntity, 0)
		return
	}
	writeJSON(w, http.StatusOK, models.OrganizationDtos(rows))
}

func (h *Handler) FindOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Short())
	defer cancel()

	o, err := h.Organizations.GetByID(ctx, id)
	if err != nil {
		h.writeStoreError(w, r, err, organizationEntity, id)
		return
	}
	writeJSON(w, http.StatusOK, o.ToDto())
}

func (h *Handler) AddOrganization(w http.ResponseWriter, r *http.Request) {
	var in models.Organization
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	in.OrganizationName = htmlsanitize.PlainText(in.OrganizationName)
	if !validated(w, &in) {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	o, err := h.Organizations.Create(ctx, in)
	if err != nil {
		h.writeStoreError(w, r, err, organizationEntity, 0)
		return
	}
	h.Audit.Created(ctx, r, organizationEntity, o.OrganizationID, o.OrganizationName)
	created(w, locationFor("OrganizationData", "FindOrganization", o.OrganizationID), o.ToDto())
}

func (h *Handler) UpdateOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	var in models.Organization
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, http.StatusBadRequest, "malformed JSON body")
		return
	}
	in.OrganizationName = htmlsanitize.PlainText(in.OrganizationName)
	if !validated(w, &in) {
		return
	}
	if in.OrganizationID != id {
		writeError(w, http.StatusBadRequest, "OrganizationId in body does not match the URL")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Organizations.Update(ctx, id, in); err != nil {
		h.writeStoreError(w, r, err, organizationEntity, id)
		return
	}
	h.Audit.Updated(ctx, r, organizationEntity, id, in.OrganizationName)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) DeleteOrganization(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r, "id")
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Medium())
	defer cancel()

	if err := h.Organizations.Delete(ctx, id); err != nil {
		h.writeStoreError(w, r, err, organizationEntity, id)
		return
	}
	h.Audit.Deleted(ctx, r, organizationEntity, id)
	w.WriteHeader(http.StatusOK)
}
