package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/groupflight/internal/app/features/health"
	"github.com/dalemusser/groupflight/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type response struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Driver   string `json:"driver"`
	Message  string `json:"message"`
	Error    string `json:"error"`
}

func TestServe_DatabaseConnected(t *testing.T) {
	db := testutil.SetupTestDB(t)
	handler := health.NewHandler(db, zap.NewNop())

	req := httptest.NewRequest("GET", "/health", nil)
	rec := httptest.NewRecorder()
	handler.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type: got %q, want %q", ct, "application/json")
	}

	var got response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if got.Status != "ok" || got.Database != "connected" {
		t.Errorf("unexpected body: %+v", got)
	}
	if got.Driver != "sqlite" {
		t.Errorf("driver: got %q, want %q", got.Driver, "sqlite")
	}
}

func TestServe_DatabaseDown(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	_ = sqlDB.Close()

	core, logs := observer.New(zap.ErrorLevel)
	handler := health.NewHandler(db, zap.New(core))

	rec := httptest.NewRecorder()
	handler.Serve(rec, httptest.NewRequest("GET", "/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("expected status %d, got %d", http.StatusServiceUnavailable, rec.Code)
	}
	var got response
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if got.Status != "error" || got.Database != "disconnected" || got.Error == "" {
		t.Errorf("unexpected body: %+v", got)
	}
	if logs.Len() != 1 {
		t.Errorf("expected one error log, got %d", logs.Len())
	}
}

func TestRoutes_MountedHealth(t *testing.T) {
	db := testutil.SetupTestDB(t)
	r := health.Routes(health.NewHandler(db, zap.NewNop()))

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest("HEAD", "/", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("HEAD: expected status %d, got %d", http.StatusOK, rec.Code)
	}
}
