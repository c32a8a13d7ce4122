package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	DB  *gorm.DB
	Log *zap.Logger
}

// NewHandler constructs a health Handler with the database and logger.
func NewHandler(db *gorm.DB, logger *zap.Logger) *Handler {
	return &Handler{
		DB:  db,
		Log: logger,
	}
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Driver   string `json:"driver,omitempty"`
	Message  string `json:"message,omitempty"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "database":"connected", "driver":"postgres" }
//
// On DB failure: 503 and
//
//	{ "status":"error", "database":"disconnected", "message":"Database unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{
		Status:   "ok",
		Database: "connected",
		Driver:   h.DB.Dialector.Name(),
	}

	if err := h.ping(ctx); err != nil {
		h.Log.Error("health-check: database ping failed", zap.Error(err))
		w.WriteHeader(http.StatusServiceUnavailable)
		resp.Status = "error"
		resp.Database = "disconnected"
		resp.Message = "Database unavailable"
		resp.Error = err.Error()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	_ = json.NewEncoder(w).Encode(resp)
}

func (h *Handler) ping(ctx context.Context) error {
	sqlDB, err := h.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
