// Package dbutil opens the relational database through GORM and classifies
// the errors stores hand back to handlers.
//
// Two drivers are supported:
//   - "postgres": gorm.io/driver/postgres (pgx under the hood), for production
//   - "sqlite":   github.com/glebarez/sqlite (pure Go), for local dev and tests
//
// Both are opened with TranslateError so foreign-key and unique violations
// arrive as gorm.ErrForeignKeyViolated and gorm.ErrDuplicatedKey regardless
// of driver.
package dbutil

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Supported driver names.
const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// ErrConcurrencyConflict reports that an UPDATE matched no rows even though
// the row still exists. It is not retried.
var ErrConcurrencyConflict = errors.New("concurrent update conflict")

// PoolConfig bounds the *sql.DB pool behind GORM. Zero values keep the
// database/sql defaults.
type PoolConfig struct {
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// Open connects to the database named by driver/dsn and applies pool limits.
func Open(driver, dsn string, pool PoolConfig, logger *zap.Logger) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch strings.ToLower(driver) {
	case DriverPostgres:
		dialector = postgres.Open(dsn)
	case DriverSQLite:
		dialector = sqlite.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported db driver %q", driver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		TranslateError: true,
		Logger:         NewGormLogger(logger),
	})
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if pool.MaxOpenConns > 0 {
		sqlDB.SetMaxOpenConns(pool.MaxOpenConns)
	}
	if pool.MaxIdleConns > 0 {
		sqlDB.SetMaxIdleConns(pool.MaxIdleConns)
	}
	if pool.ConnMaxLifetime > 0 {
		sqlDB.SetConnMaxLifetime(pool.ConnMaxLifetime)
	}
	return db, nil
}

// SQLiteDSN returns a DSN for path with foreign keys enforced. SQLite leaves
// them off per connection unless asked.
func SQLiteDSN(path string) string {
	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_pragma=foreign_keys(1)"
}

// Close releases the pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// IsNotFound reports whether err means the row does not exist.
func IsNotFound(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound)
}

// IsForeignKey reports whether err is a foreign-key violation.
func IsForeignKey(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

// IsDup reports whether err is a unique or primary-key violation.
func IsDup(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// IsConflict reports whether err is an optimistic concurrency failure.
func IsConflict(err error) bool {
	return errors.Is(err, ErrConcurrencyConflict)
}

// NewGormLogger routes GORM's own logging into zap. Slow queries and errors
// surface at warn; record-not-found is expected and stays quiet.
func NewGormLogger(logger *zap.Logger) gormlogger.Interface {
	if logger == nil {
		logger = zap.NewNop()
	}
	return gormlogger.New(zapWriter{s: logger.Named("gorm").Sugar()}, gormlogger.Config{
		SlowThreshold:             500 * time.Millisecond,
		LogLevel:                  gormlogger.Warn,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

type zapWriter struct {
	s *zap.SugaredLogger
}

func (w zapWriter) Printf(format string, args ...any) {
	w.s.Warnf(format, args...)
}
