// internal/domain/models/flight.go
package models

import "time"

// Flight is one scheduled leg flown by an airline with a specific airplane.
// The airplane is identified by RegistrationNum; the same airplane shows up
// on many flights.
type Flight struct {
	FlightID        uint      `gorm:"primaryKey" json:"FlightId"`
	FlightNumber    string    `gorm:"size:20;not null" json:"FlightNumber" validate:"required,max=20" label:"Flight number"`
	DepartureTime   time.Time `json:"DepartureTime" validate:"required" label:"Departure time"`
	ArrivalTime     time.Time `json:"ArrivalTime" validate:"required,gtfield=DepartureTime" label:"Arrival time"`
	AirplaneModel   string    `gorm:"size:100" json:"AirplaneModel" validate:"max=100" label:"Airplane model"`
	RegistrationNum string    `gorm:"size:20;index" json:"RegistrationNum" validate:"required,max=20,regnum" label:"Registration number"`

	AirlineID           uint `gorm:"not null;index" json:"AirlineId" validate:"required" label:"Airline"`
	DepartureLocationID uint `gorm:"not null;index" json:"DepartureLocationId" validate:"required" label:"Departure location"`
	ArrivalLocationID   uint `gorm:"not null;index" json:"ArrivalLocationId" validate:"required,nefield=DepartureLocationID" label:"Arrival location"`

	// Belongs-to; the foreign keys live on flights.
	Airline           *Airline  `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	DepartureLocation *Location `gorm:"foreignKey:DepartureLocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	ArrivalLocation   *Location `gorm:"foreignKey:ArrivalLocationID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
}

// FlightDto flattens the airline and route names.
type FlightDto struct {
	FlightID              uint      `json:"FlightId"`
	FlightNumber          string    `json:"FlightNumber"`
	DepartureTime         time.Time `json:"DepartureTime"`
	ArrivalTime           time.Time `json:"ArrivalTime"`
	AirplaneModel         string    `json:"AirplaneModel"`
	RegistrationNum       string    `json:"RegistrationNum"`
	AirlineID             uint      `json:"AirlineId"`
	AirlineName           string    `json:"AirlineName"`
	DepartureLocationID   uint      `json:"DepartureLocationId"`
	DepartureLocationName string    `json:"DepartureLocationName"`
	ArrivalLocationID     uint      `json:"ArrivalLocationId"`
	ArrivalLocationName   string    `json:"ArrivalLocationName"`
}

func (f Flight) ToDto() FlightDto {
	dto := FlightDto{
		FlightID:            f.FlightID,
		FlightNumber:        f.FlightNumber,
		DepartureTime:       f.DepartureTime,
		ArrivalTime:         f.ArrivalTime,
		AirplaneModel:       f.AirplaneModel,
		RegistrationNum:     f.RegistrationNum,
		AirlineID:           f.AirlineID,
		DepartureLocationID: f.DepartureLocationID,
		ArrivalLocationID:   f.ArrivalLocationID,
	}
	if f.Airline != nil {
		dto.AirlineName = f.Airline.AirlineName
	}
	if f.DepartureLocation != nil {
		dto.DepartureLocationName = f.DepartureLocation.LocationName
	}
	if f.ArrivalLocation != nil {
		dto.ArrivalLocationName = f.ArrivalLocation.LocationName
	}
	return dto
}

func FlightDtos(flights []Flight) []FlightDto {
	out := make([]FlightDto, 0, len(flights))
	for _, f := range flights {
		out = append(out, f.ToDto())
	}
	return out
}

// UniquePlanes keeps the first flight seen for each RegistrationNum,
// preserving input order.
func UniquePlanes(flights []FlightDto) []FlightDto {
	seen := make(map[string]struct{}, len(flights))
	out := make([]FlightDto, 0, len(flights))
	for _, f := range flights {
		if _, dup := seen[f.RegistrationNum]; dup {
			continue
		}
		seen[f.RegistrationNum] = struct{}{}
		out = append(out, f)
	}
	return out
}
