// internal/app/store/flights/flightstore.go
package flightstore

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

func (s *Store) withNames(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Preload("Airline").
		Preload("DepartureLocation").
		Preload("ArrivalLocation")
}

// Create inserts f. The airline and both locations must exist.
func (s *Store) Create(ctx context.Context, f models.Flight) (models.Flight, error) {
	f.FlightID = 0
	f.Airline, f.DepartureLocation, f.ArrivalLocation = nil, nil, nil
	if err := s.db.WithContext(ctx).Omit(clause.Associations).Create(&f).Error; err != nil {
		return models.Flight{}, err
	}
	return s.GetByID(ctx, f.FlightID)
}

func (s *Store) GetByID(ctx context.Context, id uint) (models.Flight, error) {
	var f models.Flight
	err := s.withNames(ctx).First(&f, "flight_id = ?", id).Error
	return f, err
}

func (s *Store) List(ctx context.Context) ([]models.Flight, error) {
	var out []models.Flight
	err := s.withNames(ctx).Order("flight_id").Find(&out).Error
	return out, err
}

// ForAirline lists airlineID's flights in flight id order.
func (s *Store) ForAirline(ctx context.Context, airlineID uint) ([]models.Flight, error) {
	var out []models.Flight
	err := s.withNames(ctx).Where("airline_id = ?", airlineID).Order("flight_id").Find(&out).Error
	return out, err
}

// ForLocation lists flights that depart from or arrive at locationID.
func (s *Store) ForLocation(ctx context.Context, locationID uint) ([]models.Flight, error) {
	var out []models.Flight
	err := s.withNames(ctx).
		Where("departure_location_id = ? OR arrival_location_id = ?", locationID, locationID).
		Order("flight_id").
		Find(&out).Error
	return out, err
}

func (s *Store) Update(ctx context.Context, id uint, f models.Flight) error {
	return dbutil.UpdateByPK(ctx, s.db, &models.Flight{}, "flight_id", id, map[string]any{
		"flight_number":         f.FlightNumber,
		"departure_time":        f.DepartureTime,
		"arrival_time":          f.ArrivalTime,
		"airplane_model":        f.AirplaneModel,
		"registration_num":      f.RegistrationNum,
		"airline_id":            f.AirlineID,
		"departure_location_id": f.DepartureLocationID,
		"arrival_location_id":   f.ArrivalLocationID,
	})
}

func (s *Store) Delete(ctx context.Context, id uint) error {
	return dbutil.DeleteByPK(ctx, s.db, &models.Flight{}, "flight_id", id)
}
