// internal/app/store/airlines/airlinestore.go
package airlinestore

import (
	"context"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// Create inserts a and returns it with its new id.
func (s *Store) Create(ctx context.Context, a models.Airline) (models.Airline, error) {
	a.AirlineID = 0
	a.AirlineNameCI = text.Fold(a.AirlineName)
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&a).Error; err != nil {
		return models.Airline{}, err
	}
	return a, nil
}

// GetByID returns gorm.ErrRecordNotFound when id does not exist.
func (s *Store) GetByID(ctx context.Context, id uint) (models.Airline, error) {
	var a models.Airline
	err := s.db.WithContext(ctx).First(&a, "airline_id = ?", id).Error
	return a, err
}

// List returns every airline in id order.
func (s *Store) List(ctx context.Context) ([]models.Airline, error) {
	var out []models.Airline
	err := s.db.WithContext(ctx).Order("airline_id").Find(&out).Error
	return out, err
}

// Search matches q against the folded airline name anywhere in the string.
// An empty q lists everything.
func (s *Store) Search(ctx context.Context, q string) ([]models.Airline, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return s.List(ctx)
	}
	var out []models.Airline
	err := s.db.WithContext(ctx).
		Where(`airline_name_ci LIKE ? ESCAPE '\'`, "%"+escapeLike(text.Fold(q))+"%").
		Order("airline_name_ci").Order("airline_id").
		Find(&out).Error
	return out, err
}

// Update overwrites the editable columns of airline id.
func (s *Store) Update(ctx context.Context, id uint, a models.Airline) error {
	return dbutil.UpdateByPK(ctx, s.db, &models.Airline{}, "airline_id", id, map[string]any{
		"airline_name":    a.AirlineName,
		"airline_name_ci": text.Fold(a.AirlineName),
		"founding_year":   a.FoundingYear,
	})
}

// Delete removes airline id. Airlines that still have flights fail with
// gorm.ErrForeignKeyViolated.
func (s *Store) Delete(ctx context.Context, id uint) error {
	return dbutil.DeleteByPK(ctx, s.db, &models.Airline{}, "airline_id", id)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
