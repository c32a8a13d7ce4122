package events

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"

	uierrors "github.com/dalemusser/groupflight/internal/app/features/errors"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/groupflight/internal/testutil"
	"github.com/dalemusser/groupflight/internal/testutil/apitest"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type testEnv struct {
	h        *Handler
	router   chi.Router
	api      *apitest.Harness
	fixtures *testutil.Fixtures

	event models.Event
	alpha models.Group
	beta  models.Group
}

// newTestEnv seeds one event and two groups, neither attending.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.SetupTestDB(t)
	api := apitest.New(t, db)
	logger := zap.NewNop()
	h := NewHandler(api.Client, uierrors.NewErrorLogger(logger), logger)

	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	loc := fx.CreateLocation(ctx, "Vancouver")
	org := fx.CreateOrganization(ctx, "Robotics League")
	return &testEnv{
		h:        h,
		router:   Routes(h, api.Sessions),
		api:      api,
		fixtures: fx,
		event:    fx.CreateEvent(ctx, "Regionals", loc, org),
		alpha:    fx.CreateGroup(ctx, "Alpha"),
		beta:     fx.CreateGroup(ctx, "Beta"),
	}
}

func (e *testEnv) serve(req *http.Request) *testutil.ResponseRecorder {
	rec := testutil.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) post(t *testing.T, target string, groupID string, user testutil.TestUser) *testutil.ResponseRecorder {
	t.Helper()
	form := url.Values{"GroupId": {groupID}}
	return e.serve(e.api.SignedInRequest(t, "POST", target, strings.NewReader(form.Encode()), user))
}

func (e *testEnv) linked(t *testing.T, g models.Group) int64 {
	t.Helper()
	ctx, cancel := testutil.TestContext()
	defer cancel()
	return e.fixtures.JunctionCount(ctx, e.event.EventID, g.GroupID)
}

func TestHandleAssociate(t *testing.T) {
	env := newTestEnv(t)
	target := "/Associate/" + apiID(env.event.EventID)
	want := "/Event/Details/" + apiID(env.event.EventID)

	env.post(t, target, apiID(env.alpha.GroupID), testutil.AdminUser()).AssertRedirect(t, want)
	// Associating again is not an error and does not duplicate the row.
	env.post(t, target, apiID(env.alpha.GroupID), testutil.AdminUser()).AssertRedirect(t, want)

	if n := env.linked(t, env.alpha); n != 1 {
		t.Errorf("junction rows = %d, want 1", n)
	}
	if n := env.linked(t, env.beta); n != 0 {
		t.Errorf("beta should not be linked, got %d rows", n)
	}
}

func TestHandleAssociate_Failures(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name    string
		target  string
		groupID string
	}{
		{"missing group", "/Associate/" + apiID(env.event.EventID), "999"},
		{"missing event", "/Associate/999", apiID(env.alpha.GroupID)},
		{"bad group id", "/Associate/" + apiID(env.event.EventID), "abc"},
		{"no group id", "/Associate/" + apiID(env.event.EventID), ""},
		{"bad event id", "/Associate/zero", apiID(env.alpha.GroupID)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env.post(t, tt.target, tt.groupID, testutil.AdminUser()).AssertRedirect(t, "/Event/Error")
		})
	}
}

func TestHandleUnAssociate(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	env.fixtures.Associate(ctx, env.event, env.alpha)

	target := "/UnAssociate/" + apiID(env.event.EventID)
	want := "/Event/Details/" + apiID(env.event.EventID)

	env.post(t, target, apiID(env.alpha.GroupID), testutil.AdminUser()).AssertRedirect(t, want)
	if n := env.linked(t, env.alpha); n != 0 {
		t.Errorf("junction rows = %d, want 0", n)
	}

	// Removing a group that is not attending is a no-op.
	env.post(t, target, apiID(env.beta.GroupID), testutil.AdminUser()).AssertRedirect(t, want)

	var groups int64
	env.fixtures.DB().Model(&models.Group{}).Count(&groups)
	if groups != 2 {
		t.Errorf("groups must survive unassociate, have %d", groups)
	}
}

func TestAssociate_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)
	target := "/Associate/" + apiID(env.event.EventID)

	env.post(t, target, apiID(env.alpha.GroupID), testutil.PlainUser()).AssertRedirect(t, "/forbidden")

	anon := httptest.NewRequest("POST", target, strings.NewReader("GroupId="+apiID(env.alpha.GroupID)))
	anon.Header.Set("Accept", "text/html")
	anon.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := env.serve(anon)
	if rec.Code != http.StatusSeeOther || !strings.HasPrefix(rec.Header().Get("Location"), "/login") {
		t.Errorf("anonymous: %d %q", rec.Code, rec.Header().Get("Location"))
	}

	if n := env.linked(t, env.alpha); n != 0 {
		t.Errorf("expected no association, got %d rows", n)
	}
}

func TestLoadDetails_SplitsGroups(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	env.fixtures.Associate(ctx, env.event, env.beta)

	req := testutil.NewAuthenticatedRequest("GET", "/Event/Details/1", testutil.AdminUser())
	data, err := env.h.loadDetails(ctx, req, env.event.EventID)
	if err != nil {
		t.Fatalf("loadDetails: %v", err)
	}
	if data.Event.LocationName != "Vancouver" || data.Event.OrganizationName != "Robotics League" {
		t.Errorf("names not flattened: %+v", data.Event)
	}
	if len(data.Groups) != 1 || data.Groups[0].GroupName != "Beta" {
		t.Errorf("Groups = %+v", data.Groups)
	}
	if len(data.Available) != 1 || data.Available[0].GroupName != "Alpha" {
		t.Errorf("Available = %+v", data.Available)
	}
	if !data.IsAdmin || data.BackURL != "/Event/List" {
		t.Errorf("IsAdmin=%v BackURL=%q", data.IsAdmin, data.BackURL)
	}
}

func TestLoadList(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	data, err := env.h.loadList(ctx, testutil.NewRequest("GET", "/Event/List"))
	if err != nil {
		t.Fatalf("loadList: %v", err)
	}
	if len(data.Events) != 1 || data.Events[0].EventName != "Regionals" {
		t.Errorf("Events = %+v", data.Events)
	}
}

func TestServeDetails_Renders(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()
	env.fixtures.Associate(ctx, env.event, env.beta)
	target := "/Details/" + strconv.FormatUint(uint64(env.event.EventID), 10)

	rec := env.serve(env.api.SignedInRequest(t, "GET", target, nil, testutil.AdminUser()))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "<h1>Regionals</h1>")
	rec.AssertContains(t, "Vancouver &middot; Robotics League")
	rec.AssertContains(t, `<option value="`+strconv.FormatUint(uint64(env.alpha.GroupID), 10)+`">Alpha</option>`)
	rec.AssertContains(t, `name="GroupId" value="`+strconv.FormatUint(uint64(env.beta.GroupID), 10)+`"`)

	rec = env.serve(testutil.NewRequest("GET", target))
	rec.AssertStatus(t, http.StatusOK)
	rec.AssertContains(t, "Beta")
	if strings.Contains(rec.Body.String(), "/Event/Associate/") {
		t.Error("anonymous page should not offer the group picker")
	}
}

func TestServeDetails_Errors(t *testing.T) {
	env := newTestEnv(t)

	env.serve(testutil.NewRequest("GET", "/Details/999")).AssertStatus(t, http.StatusNotFound)
	env.serve(testutil.NewRequest("GET", "/Details/x")).AssertStatus(t, http.StatusBadRequest)
}

func TestRoot_RedirectsToList(t *testing.T) {
	env := newTestEnv(t)
	env.serve(testutil.NewRequest("GET", "/")).AssertRedirect(t, "/Event/List")
}
