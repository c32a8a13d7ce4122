// internal/domain/models/user.go
package models

import "time"

// Roles.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is a local account that can sign in. Email is stored folded
// (lowercase) so lookups are case-insensitive.
type User struct {
	UserID       uint   `gorm:"primaryKey"`
	Email        string `gorm:"size:320;uniqueIndex;not null"`
	FullName     string `gorm:"size:200"`
	PasswordHash string `gorm:"size:100;not null"`
	Role         string `gorm:"size:20;not null;default:user"`

	CreatedAt time.Time
	UpdatedAt time.Time
}

// All lists every persisted model in migration order (parents before
// children).
func All() []any {
	return []any{
		&User{},
		&Location{},
		&Organization{},
		&Airline{},
		&Group{},
		&Flight{},
		&Event{},
		&AuditEvent{},
	}
}
