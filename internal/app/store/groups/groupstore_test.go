package groupstore_test

import (
	"testing"

	groupstore "github.com/dalemusser/groupflight/internal/app/store/groups"
	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/groupflight/internal/testutil"
)

func TestStore_CRUD(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Group{GroupName: "Team 1"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.GroupID == 0 {
		t.Fatal("expected id to be assigned")
	}

	if err := store.Update(ctx, created.GroupID, models.Group{GroupName: "Team One"}); err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	got, err := store.GetByID(ctx, created.GroupID)
	if err != nil || got.GroupName != "Team One" {
		t.Errorf("GetByID = %+v, %v", got, err)
	}

	if err := store.Delete(ctx, created.GroupID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := store.GetByID(ctx, created.GroupID); !dbutil.IsNotFound(err) {
		t.Errorf("expected not found after delete, got %v", err)
	}
	if err := store.Delete(ctx, created.GroupID); !dbutil.IsNotFound(err) {
		t.Errorf("second delete: expected not found, got %v", err)
	}
}

func TestStore_ForEventAndNotInEvent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	loc := fixtures.CreateLocation(ctx, "Hall")
	org := fixtures.CreateOrganization(ctx, "Org")
	ev := fixtures.CreateEvent(ctx, "Finals", loc, org)
	other := fixtures.CreateEvent(ctx, "Other", loc, org)
	g1 := fixtures.CreateGroup(ctx, "G1")
	g2 := fixtures.CreateGroup(ctx, "G2")
	g3 := fixtures.CreateGroup(ctx, "G3")
	fixtures.Associate(ctx, ev, g1)
	fixtures.Associate(ctx, ev, g3)
	fixtures.Associate(ctx, other, g2)

	in, err := store.ForEvent(ctx, ev.EventID)
	if err != nil {
		t.Fatalf("ForEvent failed: %v", err)
	}
	if len(in) != 2 || in[0].GroupID != g1.GroupID || in[1].GroupID != g3.GroupID {
		t.Errorf("ForEvent = %+v", in)
	}

	out, err := store.NotInEvent(ctx, ev.EventID)
	if err != nil {
		t.Fatalf("NotInEvent failed: %v", err)
	}
	if len(out) != 1 || out[0].GroupID != g2.GroupID {
		t.Errorf("NotInEvent = %+v", out)
	}
}

func TestStore_DeleteClearsJunction(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	loc := fixtures.CreateLocation(ctx, "Hall")
	org := fixtures.CreateOrganization(ctx, "Org")
	ev := fixtures.CreateEvent(ctx, "Finals", loc, org)
	g := fixtures.CreateGroup(ctx, "G1")
	fixtures.Associate(ctx, ev, g)

	if err := store.Delete(ctx, g.GroupID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n := fixtures.JunctionCount(ctx, ev.EventID, g.GroupID); n != 0 {
		t.Errorf("expected junction cleared, got %d", n)
	}
}
