package auditlog_test

import (
	"net/http/httptest"
	"testing"

	"github.com/dalemusser/groupflight/internal/app/store/audit"
	"github.com/dalemusser/groupflight/internal/app/system/auditlog"
	"github.com/dalemusser/groupflight/internal/testutil"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_NilLogger(t *testing.T) {
	var logger *auditlog.Logger
	ctx, cancel := testutil.TestContext()
	defer cancel()
	req := httptest.NewRequest("POST", "/", nil)

	// These should all be no-ops, not panic
	logger.Log(ctx, audit.Event{EventType: "test"})
	logger.LoginSuccess(ctx, req, 1, "a@b.c")
	logger.Created(ctx, req, "airline", 1, "Porter")
	logger.Logout(ctx, req, 1)
}

func TestLogger_ConfigOff(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	core, logs := observer.New(zap.InfoLevel)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.New(core), auditlog.Config{Auth: "off", Admin: "off"})
	req := httptest.NewRequest("POST", "/login", nil)
	logger.LoginSuccess(ctx, req, 1, "a@b.c")
	logger.Created(ctx, req, "airline", 5, "Porter")

	events, err := store.Query(ctx, audit.QueryFilter{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 0 || logs.Len() != 0 {
		t.Errorf("expected nothing logged, got %d rows and %d log entries", len(events), logs.Len())
	}
}

func TestLogger_ConfigDBAndLog(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	core, logs := observer.New(zap.InfoLevel)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.New(core), auditlog.Config{Auth: "db", Admin: "log"})

	req := testutil.NewAuthenticatedRequest("POST", "/api/AirlineData/AddAirline", testutil.AdminUser())
	logger.Created(ctx, req, "airline", 5, "Porter")

	login := httptest.NewRequest("POST", "/login", nil)
	logger.LoginFailed(ctx, login, audit.EventLoginFailedWrongPassword, "a@b.c", "wrong password")

	// Admin went to zap only.
	if logs.Len() != 1 {
		t.Fatalf("expected 1 zap entry, got %d", logs.Len())
	}
	entry := logs.All()[0]
	fields := entry.ContextMap()
	if fields["entity"] != "airline" || fields["event_type"] != audit.EventEntityCreated {
		t.Errorf("unexpected zap fields: %v", fields)
	}
	if fields["actor_id"] != uint64(testutil.AdminUser().ID) {
		t.Errorf("actor_id = %v, want %d", fields["actor_id"], testutil.AdminUser().ID)
	}

	// Auth went to the database only.
	events, err := store.Query(ctx, audit.QueryFilter{})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 1 {
		t.Fatalf("expected 1 stored event, got %d", len(events))
	}
	if events[0].EventType != audit.EventLoginFailedWrongPassword || events[0].Success {
		t.Errorf("unexpected stored event: %+v", events[0])
	}
	if events[0].ActorID != nil {
		t.Errorf("anonymous attempt should have no actor, got %v", *events[0].ActorID)
	}
}

func TestLogger_GroupLinked(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	logger := auditlog.New(store, zap.NewNop(), auditlog.Config{Admin: "all"})
	req := testutil.NewAuthenticatedRequest("POST", "/", testutil.AdminUser())

	logger.GroupLinked(ctx, req, 3, 4, true)
	logger.GroupLinked(ctx, req, 3, 4, false)

	events, err := store.Query(ctx, audit.QueryFilter{Entity: "event"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0].EventType != audit.EventGroupRemovedFromEvent || events[1].EventType != audit.EventGroupAddedToEvent {
		t.Errorf("unexpected order/types: %q, %q", events[0].EventType, events[1].EventType)
	}
	if events[1].Details["group_id"] != "4" {
		t.Errorf("group_id detail = %q", events[1].Details["group_id"])
	}
}
