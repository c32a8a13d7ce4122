// internal/app/store/users/userstore.go
package userstore

import (
	"context"
	"errors"

	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"gorm.io/gorm"
)

// ErrDuplicateEmail is returned when another account already uses the email.
var ErrDuplicateEmail = errors.New("a user with this email already exists")

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetByID loads a user by primary key.
func (s *Store) GetByID(ctx context.Context, id uint) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "user_id = ?", id).Error
	return u, err
}

// NamesByID maps each found user ID to its full name. Unknown IDs are
// simply absent from the result.
func (s *Store) NamesByID(ctx context.Context, ids []uint) (map[uint]string, error) {
	out := make(map[uint]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	var rows []models.User
	if err := s.db.WithContext(ctx).Select("user_id", "full_name").Where("user_id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, u := range rows {
		out[u.UserID] = u.FullName
	}
	return out, nil
}

// GetByEmail looks up a user by case-insensitive email. Returns
// gorm.ErrRecordNotFound if not found.
func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	err := s.db.WithContext(ctx).First(&u, "email = ?", text.Fold(email)).Error
	return u, err
}

// Create inserts u with its email folded.
func (s *Store) Create(ctx context.Context, u models.User) (models.User, error) {
	u.UserID = 0
	u.Email = text.Fold(u.Email)
	if u.Role == "" {
		u.Role = models.RoleUser
	}
	if err := s.db.WithContext(ctx).Create(&u).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return models.User{}, ErrDuplicateEmail
		}
		return models.User{}, err
	}
	return u, nil
}

// EnsureAdmin makes sure an admin account exists for email. A missing account
// is created with passwordHash; an existing one is promoted to admin and its
// password is left alone. created reports which happened.
func (s *Store) EnsureAdmin(ctx context.Context, email, fullName, passwordHash string) (u models.User, created bool, err error) {
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		folded := text.Fold(email)
		findErr := tx.First(&u, "email = ?", folded).Error
		switch {
		case errors.Is(findErr, gorm.ErrRecordNotFound):
			u = models.User{Email: folded, FullName: fullName, PasswordHash: passwordHash, Role: models.RoleAdmin}
			created = true
			return tx.Create(&u).Error
		case findErr != nil:
			return findErr
		case u.Role == models.RoleAdmin:
			return nil
		default:
			u.Role = models.RoleAdmin
			return tx.Model(&u).Update("role", models.RoleAdmin).Error
		}
	})
	return u, created, err
}

// SetPassword replaces the stored bcrypt hash.
func (s *Store) SetPassword(ctx context.Context, id uint, passwordHash string) error {
	res := s.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", id).Update("password_hash", passwordHash)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
