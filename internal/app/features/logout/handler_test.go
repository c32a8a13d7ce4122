package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/groupflight/internal/app/features/logout"
	"github.com/dalemusser/groupflight/internal/app/store/audit"
	"github.com/dalemusser/groupflight/internal/app/system/auditlog"
	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/dalemusser/groupflight/internal/testutil"
	"go.uber.org/zap"
)

func newSessionManager(t *testing.T) *auth.SessionManager {
	t.Helper()
	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("NewSessionManager failed: %v", err)
	}
	return sm
}

func deletedCookie(t *testing.T, rec *httptest.ResponseRecorder) {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "test-session" {
			if c.MaxAge != -1 {
				t.Errorf("cookie MaxAge: got %d, want -1 (delete)", c.MaxAge)
			}
			return
		}
	}
	t.Error("expected session cookie to be set for deletion")
}

func TestServeLogout_RedirectsHomeAndClearsCookie(t *testing.T) {
	handler := logout.NewHandler(newSessionManager(t), nil, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeLogout(rec, httptest.NewRequest("GET", "/logout", nil))

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location: got %q, want %q", loc, "/")
	}
	deletedCookie(t, rec)
}

func TestServeLogout_HTMX_ReturnsHXRedirect(t *testing.T) {
	handler := logout.NewHandler(newSessionManager(t), nil, zap.NewNop())

	req := httptest.NewRequest("GET", "/logout", nil)
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	handler.ServeLogout(rec, req)

	if hx := rec.Header().Get("HX-Redirect"); hx != "/" {
		t.Errorf("HX-Redirect: got %q, want %q", hx, "/")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d for HTMX, got %d", http.StatusOK, rec.Code)
	}
}

func TestServeLogout_SignedInSession(t *testing.T) {
	db := testutil.SetupTestDB(t)
	sm := newSessionManager(t)
	audits := audit.New(db)
	handler := logout.NewHandler(sm, auditlog.New(audits, zap.NewNop(), auditlog.Config{Auth: "db"}), zap.NewNop())

	signIn := httptest.NewRecorder()
	if err := sm.SignIn(signIn, httptest.NewRequest("POST", "/login", nil), auth.SessionUser{ID: 7, Role: "user"}); err != nil {
		t.Fatalf("SignIn failed: %v", err)
	}

	// Through the middleware, as mounted in bootstrap.
	req := httptest.NewRequest("POST", "/", nil)
	for _, c := range signIn.Result().Cookies() {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	sm.LoadSessionUser(logout.Routes(handler, sm)).ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
	deletedCookie(t, rec)

	ctx, cancel := testutil.TestContext()
	defer cancel()
	rows, err := audits.Query(ctx, audit.QueryFilter{EventType: audit.EventLogout})
	if err != nil {
		t.Fatalf("query audit: %v", err)
	}
	if len(rows) != 1 || rows[0].ActorID == nil || *rows[0].ActorID != 7 {
		t.Errorf("unexpected logout audit rows: %+v", rows)
	}
}

func TestRoutes_AnonymousRedirectsToLogin(t *testing.T) {
	sm := newSessionManager(t)
	r := logout.Routes(logout.NewHandler(sm, nil, zap.NewNop()), sm)

	req := httptest.NewRequest("GET", "/", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	if rec.Code != http.StatusSeeOther {
		t.Errorf("expected status %d, got %d", http.StatusSeeOther, rec.Code)
	}
}
