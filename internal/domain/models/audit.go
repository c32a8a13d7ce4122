// internal/domain/models/audit.go
package models

import "time"

// AuditEvent records a sign-in or an administrative write.
type AuditEvent struct {
	ID        uint      `gorm:"primaryKey"`
	Timestamp time.Time `gorm:"not null;index"`

	Category  string `gorm:"size:20;not null;index:idx_audit_kind"`
	EventType string `gorm:"size:60;not null;index:idx_audit_kind"`

	// ActorID is the signed-in user who acted; nil for anonymous attempts.
	ActorID  *uint  `gorm:"index"`
	Entity   string `gorm:"size:40"`
	EntityID *uint

	IP            string `gorm:"size:64"`
	UserAgent     string `gorm:"size:300"`
	Success       bool
	FailureReason string `gorm:"size:300"`

	Details map[string]string `gorm:"serializer:json"`
}
