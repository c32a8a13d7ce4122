// internal/app/store/locations/locationstore.go
package locationstore

import (
	"context"

	"github.com/dalemusser/groupflight/internal/app/system/dbutil"
	"github.com/dalemusser/groupflight/internal/domain/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

func (s *Store) Create(ctx context.Context, l models.Location) (models.Location, error) {
	l.LocationID = 0
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&l).Error; err != nil {
		return models.Location{}, err
	}
	return l, nil
}

func (s *Store) GetByID(ctx context.Context, id uint) (models.Location, error) {
	var l models.Location
	err := s.db.WithContext(ctx).First(&l, "location_id = ?", id).Error
	return l, err
}

func (s *Store) List(ctx context.Context) ([]models.Location, error) {
	var out []models.Location
	err := s.db.WithContext(ctx).Order("location_id").Find(&out).Error
	return out, err
}

func (s *Store) Update(ctx context.Context, id uint, l models.Location) error {
	return dbutil.UpdateByPK(ctx, s.db, &models.Location{}, "location_id", id, map[string]any{
		"location_name":    l.LocationName,
		"location_address": l.LocationAddress,
	})
}

// Delete fails with gorm.ErrForeignKeyViolated while events or flights
// still point at the location.
func (s *Store) Delete(ctx context.Context, id uint) error {
	return dbutil.DeleteByPK(ctx, s.db, &models.Location{}, "location_id", id)
}
