// internal/app/store/audit/store.go
package audit

import (
	"context"
	"time"

	"github.com/dalemusser/groupflight/internal/domain/models"
	"gorm.io/gorm"
)

// Event categories
const (
	CategoryAuth  = "auth"
	CategoryAdmin = "admin"
)

// Auth event types
const (
	EventLoginSuccess             = "login_success"
	EventLoginFailedUserNotFound  = "login_failed_user_not_found"
	EventLoginFailedWrongPassword = "login_failed_wrong_password"
	EventLoginFailedRateLimit     = "login_failed_rate_limit"
	EventLogout                   = "logout"
)

// Admin event types
const (
	EventEntityCreated         = "entity_created"
	EventEntityUpdated         = "entity_updated"
	EventEntityDeleted         = "entity_deleted"
	EventGroupAddedToEvent     = "group_added_to_event"
	EventGroupRemovedFromEvent = "group_removed_from_event"
	EventAdminBootstrapped     = "admin_bootstrapped"
)

// Event is the persisted audit row.
type Event = models.AuditEvent

// QueryFilter narrows Query. Zero fields are ignored.
type QueryFilter struct {
	ActorID   *uint
	Category  string
	EventType string
	Entity    string
	Since     *time.Time
	Until     *time.Time
	Limit     int
	Offset    int
}

// Store manages audit event records.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Log records an audit event, stamping the time when unset.
func (s *Store) Log(ctx context.Context, e Event) error {
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Create(&e).Error
}

func (s *Store) filtered(ctx context.Context, f QueryFilter) *gorm.DB {
	q := s.db.WithContext(ctx).Model(&Event{})
	if f.ActorID != nil {
		q = q.Where("actor_id = ?", *f.ActorID)
	}
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.EventType != "" {
		q = q.Where("event_type = ?", f.EventType)
	}
	if f.Entity != "" {
		q = q.Where("entity = ?", f.Entity)
	}
	if f.Since != nil {
		q = q.Where("timestamp >= ?", *f.Since)
	}
	if f.Until != nil {
		q = q.Where("timestamp < ?", *f.Until)
	}
	return q
}

// Query returns matching events, newest first. Limit defaults to 100.
func (s *Store) Query(ctx context.Context, f QueryFilter) ([]Event, error) {
	limit := f.Limit
	if limit <= 0 {
		limit = 100
	}

	var out []Event
	err := s.filtered(ctx, f).
		Order("timestamp DESC").Order("id DESC").
		Limit(limit).Offset(f.Offset).
		Find(&out).Error
	return out, err
}

// Count returns how many events match f. Limit and Offset are ignored.
func (s *Store) Count(ctx context.Context, f QueryFilter) (int64, error) {
	var n int64
	err := s.filtered(ctx, f).Count(&n).Error
	return n, err
}
