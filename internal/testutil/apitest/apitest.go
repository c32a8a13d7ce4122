// Package apitest serves the data API over a real HTTP server for handler
// tests of the pages that call it.
package apitest

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dalemusser/groupflight/internal/app/features/apidata"
	"github.com/dalemusser/groupflight/internal/app/system/apiclient"
	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/dalemusser/groupflight/internal/testutil"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Harness serves the data API over a real HTTP server, mounted the way
// bootstrap mounts it, so MVC handler tests exercise the full
// page -> client -> API -> store path.
type Harness struct {
	Server   *httptest.Server
	Sessions *auth.SessionManager
	Client   *apiclient.Client
}

// New starts the API over db. The server is closed when the test
// finishes.
func New(t *testing.T, db *gorm.DB) *Harness {
	t.Helper()

	sm, err := auth.NewSessionManager("test-session-key-must-be-32-chars-long", "test-session", "", 24*time.Hour, false, zap.NewNop())
	if err != nil {
		t.Fatalf("session manager: %v", err)
	}

	r := chi.NewRouter()
	r.Use(sm.LoadSessionUser)
	r.Mount("/api", apidata.Routes(apidata.NewHandler(db, nil, zap.NewNop()), sm))
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	client, err := apiclient.New(srv.URL+"/api/", sm.Name(), nil, zap.NewNop())
	if err != nil {
		t.Fatalf("api client: %v", err)
	}
	return &Harness{Server: srv, Sessions: sm, Client: client}
}

// SignedInRequest builds a browser request for user: the user is in the
// request context (as LoadSessionUser would leave it) and the request
// carries a real session cookie the API will accept.
func (a *Harness) SignedInRequest(t *testing.T, method, target string, body io.Reader, user testutil.TestUser) *http.Request {
	t.Helper()

	signIn := httptest.NewRecorder()
	err := a.Sessions.SignIn(signIn, httptest.NewRequest("POST", "/login", nil), auth.SessionUser{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	})
	if err != nil {
		t.Fatalf("sign in: %v", err)
	}

	req := httptest.NewRequest(method, target, body)
	req.Header.Set("Accept", "text/html")
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	for _, c := range signIn.Result().Cookies() {
		req.AddCookie(c)
	}
	return testutil.WithUser(req, user)
}
