package audit_test

import (
	"testing"
	"time"

	"github.com/dalemusser/groupflight/internal/app/store/audit"
	"github.com/dalemusser/groupflight/internal/testutil"
)

func TestStore_LogAndQuery(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	actor := uint(1)
	entityID := uint(9)
	base := time.Now().UTC().Add(-time.Minute)

	events := []audit.Event{
		{Timestamp: base, Category: audit.CategoryAuth, EventType: audit.EventLoginSuccess, ActorID: &actor, Success: true},
		{Timestamp: base.Add(time.Second), Category: audit.CategoryAdmin, EventType: audit.EventEntityCreated, ActorID: &actor, Entity: "airline", EntityID: &entityID, Success: true, Details: map[string]string{"name": "Porter"}},
		{Timestamp: base.Add(2 * time.Second), Category: audit.CategoryAdmin, EventType: audit.EventEntityDeleted, ActorID: &actor, Entity: "event", Success: true},
	}
	for _, e := range events {
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	admin, err := store.Query(ctx, audit.QueryFilter{Category: audit.CategoryAdmin})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(admin) != 2 {
		t.Fatalf("expected 2 admin events, got %d", len(admin))
	}
	if admin[0].EventType != audit.EventEntityDeleted {
		t.Errorf("expected newest first, got %q", admin[0].EventType)
	}

	airline, err := store.Query(ctx, audit.QueryFilter{Entity: "airline"})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(airline) != 1 || airline[0].Details["name"] != "Porter" {
		t.Errorf("expected airline event with details, got %+v", airline)
	}
	if airline[0].EntityID == nil || *airline[0].EntityID != 9 {
		t.Errorf("EntityID not stored: %+v", airline[0].EntityID)
	}
}

func TestStore_Log_StampsTime(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if err := store.Log(ctx, audit.Event{Category: audit.CategoryAuth, EventType: audit.EventLogout}); err != nil {
		t.Fatalf("Log failed: %v", err)
	}
	got, err := store.Query(ctx, audit.QueryFilter{Limit: 1})
	if err != nil || len(got) != 1 {
		t.Fatalf("Query: %v (%d rows)", err, len(got))
	}
	if got[0].Timestamp.IsZero() {
		t.Error("expected timestamp to be set")
	}
}

func TestStore_CountAndWindow(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := audit.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	day := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		e := audit.Event{
			Timestamp: day.Add(time.Duration(i) * 12 * time.Hour),
			Category:  audit.CategoryAuth,
			EventType: audit.EventLoginSuccess,
			Success:   true,
		}
		if err := store.Log(ctx, e); err != nil {
			t.Fatalf("Log failed: %v", err)
		}
	}

	total, err := store.Count(ctx, audit.QueryFilter{Limit: 1, Offset: 3})
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if total != 5 {
		t.Errorf("expected Count to ignore paging and return 5, got %d", total)
	}

	since := day.Add(24 * time.Hour)
	until := day.Add(48 * time.Hour)
	window := audit.QueryFilter{Since: &since, Until: &until}
	n, err := store.Count(ctx, window)
	if err != nil {
		t.Fatalf("Count failed: %v", err)
	}
	if n != 2 {
		t.Errorf("expected 2 events in [day+1, day+2), got %d", n)
	}

	page, err := store.Query(ctx, audit.QueryFilter{Limit: 2, Offset: 2})
	if err != nil {
		t.Fatalf("Query failed: %v", err)
	}
	if len(page) != 2 || !page[0].Timestamp.Equal(day.Add(24*time.Hour)) {
		t.Errorf("unexpected second page: %+v", page)
	}
}
