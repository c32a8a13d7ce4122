package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/app/system/schema"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SetupTestDB opens a private in-memory SQLite database with foreign keys
// enforced and the full schema migrated. The database is closed when the
// test finishes.
//
// The pool is pinned to one connection: every new connection to ":memory:"
// would otherwise see its own empty database.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := dbutil.Open(dbutil.DriverSQLite, dbutil.SQLiteDSN(":memory:"), dbutil.PoolConfig{
		MaxOpenConns: 1,
		MaxIdleConns: 1,
	}, zap.NewNop())
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	t.Cleanup(func() { _ = dbutil.Close(db) })

	ctx, cancel := TestContext()
	defer cancel()
	if err := schema.EnsureAll(ctx, db); err != nil {
		t.Fatalf("migrate test db: %v", err)
	}
	return db
}

// TestContext returns a context with a timeout suitable for tests.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 10*time.Second)
}
