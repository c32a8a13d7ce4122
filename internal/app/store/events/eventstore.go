// internal/app/store/events/eventstore.go
package eventstore

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

// withNames preloads the navigation properties the DTO flattens.
func (s *Store) withNames(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).Preload("Location").Preload("Organization")
}

// Create inserts e. The Location and Organization must exist
// (gorm.ErrForeignKeyViolated otherwise). The returned event has both
// names loaded.
func (s *Store) Create(ctx context.Context, e models.Event) (models.Event, error) {
	e.EventID = 0
	e.Location, e.Organization, e.Groups = nil, nil, nil
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&e).Error; err != nil {
		return models.Event{}, err
	}
	return s.GetByID(ctx, e.EventID)
}

// GetByID returns the event with Location and Organization preloaded.
func (s *Store) GetByID(ctx context.Context, id uint) (models.Event, error) {
	var e models.Event
	err := s.withNames(ctx).First(&e, "event_id = ?", id).Error
	return e, err
}

func (s *Store) List(ctx context.Context) ([]models.Event, error) {
	var out []models.Event
	err := s.withNames(ctx).Order("event_id").Find(&out).Error
	return out, err
}

// ForGroup lists the events groupID attends.
func (s *Store) ForGroup(ctx context.Context, groupID uint) ([]models.Event, error) {
	var out []models.Event
	err := s.withNames(ctx).
		Joins("JOIN event_groups ON event_groups.event_id = events.event_id").
		Where("event_groups.group_id = ?", groupID).
		Order("events.event_id").
		Find(&out).Error
	return out, err
}

func (s *Store) ForLocation(ctx context.Context, locationID uint) ([]models.Event, error) {
	var out []models.Event
	err := s.withNames(ctx).Where("location_id = ?", locationID).Order("event_id").Find(&out).Error
	return out, err
}

func (s *Store) ForOrganization(ctx context.Context, orgID uint) ([]models.Event, error) {
	var out []models.Event
	err := s.withNames(ctx).Where("organization_id = ?", orgID).Order("event_id").Find(&out).Error
	return out, err
}

// Update overwrites the scalar columns and foreign keys of event id.
func (s *Store) Update(ctx context.Context, id uint, e models.Event) error {
	return dbutil.UpdateByPK(ctx, s.db, &models.Event{}, "event_id", id, map[string]any{
		"event_name":           e.EventName,
		"registration_website": e.RegistrationWebsite,
		"location_id":          e.LocationID,
		"organization_id":      e.OrganizationID,
	})
}

// Delete removes the event and its group links in one transaction.
func (s *Store) Delete(ctx context.Context, id uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Exec("DELETE FROM event_groups WHERE event_id = ?", id).Error; err != nil {
			return err
		}
		return dbutil.DeleteByPK(ctx, tx, &models.Event{}, "event_id", id)
	})
}

// loadPair fetches both ends of a link, reporting gorm.ErrRecordNotFound if
// either is missing.
func loadPair(tx *gorm.DB, eventID, groupID uint) (models.Event, models.Group, error) {
	var e models.Event
	if err := tx.First(&e, "event_id = ?", eventID).Error; err != nil {
		return models.Event{}, models.Group{}, err
	}
	var g models.Group
	if err := tx.First(&g, "group_id = ?", groupID).Error; err != nil {
		return models.Event{}, models.Group{}, err
	}
	return e, g, nil
}

// Associate links eventID and groupID. Linking an existing pair again is a
// no-op, so the junction never holds duplicates.
func (s *Store) Associate(ctx context.Context, eventID, groupID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, _, err := loadPair(tx, eventID, groupID); err != nil {
			return err
		}
		return tx.Table("event_groups").
			Clauses(clause.OnConflict{DoNothing: true}).
			Create(map[string]any{"event_id": eventID, "group_id": groupID}).Error
	})
}

// UnAssociate removes the link. Neither the event nor the group is deleted,
// and removing a link that does not exist succeeds.
func (s *Store) UnAssociate(ctx context.Context, eventID, groupID uint) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		e, g, err := loadPair(tx, eventID, groupID)
		if err != nil {
			return err
		}
		return tx.Model(&e).Association("Groups").Delete(&g)
	})
}
