// internal/app/features/apidata/respond.go
package apidata

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/app/system/inputval"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

var errBadID = errors.New("id must be a positive integer")

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// parseID reads a positive integer URL parameter.
func parseID(r *http.Request, name string) (uint, error) {
	n, err := strconv.ParseUint(strings.TrimSpace(chi.URLParam(r, name)), 10, 64)
	if err != nil || n == 0 {
		return 0, errBadID
	}
	return uint(n), nil
}

// decodeJSON reads a single JSON value into dst. Unknown fields are
// accepted so clients can post back the DTO they received.
func decodeJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if dec.More() {
		return errors.New("body must contain a single JSON value")
	}
	return nil
}

// validated writes a 400 listing every failed rule and returns false when
// v does not pass its struct tags.
func validated(w http.ResponseWriter, v any) bool {
	if res := inputval.Validate(v); res.HasErrors() {
		writeError(w, http.StatusBadRequest, res.All())
		return false
	}
	return true
}

// writeStoreError maps a store error onto the API's status taxonomy.
// Concurrency conflicts and unexpected errors are logged; the caller's
// mistakes are not.
func (h *Handler) writeStoreError(w http.ResponseWriter, r *http.Request, err error, entity string, id uint) {
	switch {
	case dbutil.IsNotFound(err):
		writeError(w, http.StatusNotFound, entity+" not found")
	case dbutil.IsForeignKey(err):
		writeError(w, http.StatusBadRequest, "a referenced record does not exist or "+strings.ToLower(entity)+" is still in use")
	case dbutil.IsDup(err):
		writeError(w, http.StatusBadRequest, entity+" already exists")
	case dbutil.IsConflict(err):
		h.Log.Error("concurrent update conflict",
			zap.String("entity", entity), zap.Uint("id", id), zap.String("path", r.URL.Path))
		writeError(w, http.StatusInternalServerError, "the record was modified concurrently")
	default:
		h.Log.Error("data api store error", zap.Error(err),
			zap.String("entity", entity), zap.Uint("id", id), zap.String("path", r.URL.Path))
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

// created answers 201 with a Location header pointing at the Find endpoint.
func created(w http.ResponseWriter, location string, body any) {
	w.Header().Set("Location", location)
	writeJSON(w, http.StatusCreated, body)
}

func locationFor(controller, action string, id uint) string {
	return "/api/" + controller + "/" + action + "/" + strconv.FormatUint(uint64(id), 10)
}
