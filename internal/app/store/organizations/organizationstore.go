// internal/app/store/organizations/organizationstore.go
package organizationstore

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

func (s *Store) Create(ctx context.Context, o models.Organization) (models.Organization, error) {
	o.OrganizationID = 0
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&o).Error; err != nil {
		return models.Organization{}, err
	}
	return o, nil
}

func (s *Store) GetByID(ctx context.Context, id uint) (models.Organization, error) {
	var o models.Organization
	err := s.db.WithContext(ctx).First(&o, "organization_id = ?", id).Error
	return o, err
}

func (s *Store) List(ctx context.Context) ([]models.Organization, error) {
	var out []models.Organization
	err := s.db.WithContext(ctx).Order("organization_id").Find(&out).Error
	return out, err
}

func (s *Store) Update(ctx context.Context, id uint, o models.Organization) error {
	return dbutil.UpdateByPK(ctx, s.db, &models.Organization{}, "organization_id", id, map[string]any{
		"organization_name": o.OrganizationName,
	})
}

// Delete fails with gorm.ErrForeignKeyViolated while events still belong to
// the organization.
func (s *Store) Delete(ctx context.Context, id uint) error {
	return dbutil.DeleteByPK(ctx, s.db, &models.Organization{}, "organization_id", id)
}
