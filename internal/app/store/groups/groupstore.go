// internal/app/store/groups/groupstore.go
package groupstore

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

func (s *Store) Create(ctx context.Context, g models.Group) (models.Group, error) {
	g.GroupID = 0
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&g).Error; err != nil {
		return models.Group{}, err
	}
	return g, nil
}

func (s *Store) GetByID(ctx context.Context, id uint) (models.Group, error) {
	var g models.Group
	err := s.db.WithContext(ctx).First(&g, "group_id = ?", id).Error
	return g, err
}

func (s *Store) List(ctx context.Context) ([]models.Group, error) {
	var out []models.Group
	err := s.db.WithContext(ctx).Order("group_id").Find(&out).Error
	return out, err
}

// ForEvent lists the groups attending eventID, in group id order.
func (s *Store) ForEvent(ctx context.Context, eventID uint) ([]models.Group, error) {
	var out []models.Group
	err := s.db.WithContext(ctx).
		Joins(`JOIN event_groups ON event_groups.group_id = "groups".group_id`).
		Where("event_groups.event_id = ?", eventID).
		Order(`"groups".group_id`).
		Find(&out).Error
	return out, err
}

// NotInEvent lists the groups that could still be added to eventID.
func (s *Store) NotInEvent(ctx context.Context, eventID uint) ([]models.Group, error) {
	var out []models.Group
	sub := s.db.Table("event_groups").Select("group_id").Where("event_id = ?", eventID)
	err := s.db.WithContext(ctx).
		Where("group_id NOT IN (?)", sub).
		Order("group_id").
		Find(&out).Error
	return out, err
}

func (s *Store) Update(ctx context.Context, id uint, g models.Group) error {
	return dbutil.UpdateByPK(ctx, s.db, &models.Group{}, "group_id", id, map[string]any{
		"group_name": g.GroupName,
	})
}

// Delete removes the group and its event links in one transaction.
func (s *Store) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM event_groups WHERE group_id = ?", id).Error; err != nil {
			return err
		}
		return dbutil.DeleteByPK(ctx, tx, &models.Group{}, "group_id", id)
	})
}
