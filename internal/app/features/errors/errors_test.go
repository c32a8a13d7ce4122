package errors_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/groupflight/internal/app/features/errors"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func serve(fn func(w http.ResponseWriter, r *http.Request), r *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	fn(rec, r)
	return rec
}

func TestRenderHelpers_Status(t *testing.T) {
	tests := []struct {
		name string
		fn   func(w http.ResponseWriter, r *http.Request)
		want int
	}{
		{"not found", func(w http.ResponseWriter, r *http.Request) { uierrors.RenderNotFound(w, r, "gone", "/") }, http.StatusNotFound},
		{"bad request", func(w http.ResponseWriter, r *http.Request) { uierrors.RenderBadRequest(w, r, "bad", "") }, http.StatusBadRequest},
		{"server error", func(w http.ResponseWriter, r *http.Request) { uierrors.RenderServerError(w, r, "oops", "") }, http.StatusInternalServerError},
		{"forbidden", func(w http.ResponseWriter, r *http.Request) { uierrors.RenderForbidden(w, r, "no", "") }, http.StatusForbidden},
		{"unauthorized", func(w http.ResponseWriter, r *http.Request) { uierrors.RenderUnauthorized(w, r, "") }, http.StatusUnauthorized},
		{"forbidden page", uierrors.NewHandler().Forbidden, http.StatusForbidden},
		{"unauthorized page", uierrors.NewHandler().Unauthorized, http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(tt.fn, httptest.NewRequest("GET", "/x", nil))
			if rec.Code != tt.want {
				t.Errorf("status = %d, want %d", rec.Code, tt.want)
			}
		})
	}
}

func TestRenderNotFound_Body(t *testing.T) {
	rec := serve(func(w http.ResponseWriter, r *http.Request) {
		uierrors.RenderNotFound(w, r, "That airline no longer exists.", "/Airline/List")
	}, httptest.NewRequest("GET", "/Airline/Details/9", nil))

	body := rec.Body.String()
	if !strings.Contains(body, "That airline no longer exists.") {
		t.Error("expected the message on the page")
	}
	if !strings.Contains(body, `href="/Airline/List"`) {
		t.Error("expected a back link to the list")
	}
}

func TestErrorLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	el := uierrors.NewErrorLogger(zap.New(core))
	cause := errors.New("connection reset")

	rec := serve(func(w http.ResponseWriter, r *http.Request) {
		el.LogServerError(w, r, "list airlines failed", cause, "Could not load airlines.", "/")
	}, httptest.NewRequest("GET", "/Airline/List", nil))
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d", rec.Code)
	}

	rec = serve(func(w http.ResponseWriter, r *http.Request) {
		el.LogBadRequest(w, r, "bad id", nil, "Invalid airline id.", "/Airline/List")
	}, httptest.NewRequest("GET", "/Airline/Details/x", nil))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d", rec.Code)
	}

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("expected 2 log entries, got %d", len(entries))
	}
	if entries[0].Level != zapcore.ErrorLevel || entries[0].Message != "list airlines failed" {
		t.Errorf("unexpected first entry: %v %q", entries[0].Level, entries[0].Message)
	}
	if got := entries[0].ContextMap()["path"]; got != "/Airline/List" {
		t.Errorf("path field = %v", got)
	}
	if entries[1].Level != zapcore.InfoLevel {
		t.Errorf("bad request should log at info, got %v", entries[1].Level)
	}
}

func TestNewErrorLogger_NilLogger(t *testing.T) {
	el := uierrors.NewErrorLogger(nil)
	rec := serve(func(w http.ResponseWriter, r *http.Request) {
		el.LogNotFound(w, r, "missing", nil, "Not here.", "/")
	}, httptest.NewRequest("GET", "/", nil))
	if rec.Code != http.StatusNotFound {
		t.Errorf("status = %d", rec.Code)
	}
}
