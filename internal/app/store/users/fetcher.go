package userstore

import (
	"context"

	"github.com/dalemusser/groupflight/internal/app/system/auth"
	"github.com/dalemusser/groupflight/internal/app/system/timeouts"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"gorm.io/gorm"
)

// Fetcher implements auth.UserFetcher to load fresh user data on each request,
// so a demotion or deletion takes effect without waiting for the cookie to
// expire.
type Fetcher struct {
	db *gorm.DB
}

// NewFetcher creates a UserFetcher that queries the given database.
func NewFetcher(db *gorm.DB) *Fetcher {
	return &Fetcher{db: db}
}

// FetchUser returns ok=false if the user is gone or the lookup fails.
func (f *Fetcher) FetchUser(ctx context.Context, id uint) (*auth.SessionUser, bool) {
	ctx, cancel := context.WithTimeout(ctx, timeouts.Short())
	defer cancel()

	var u models.User
	err := f.db.WithContext(ctx).
		Select("user_id", "email", "full_name", "role").
		First(&u, "user_id = ?", id).Error
	if err != nil {
		return nil, false
	}
	return &auth.SessionUser{
		ID:    u.UserID,
		Name:  u.FullName,
		Email: u.Email,
		Role:  u.Role,
	}, true
}
