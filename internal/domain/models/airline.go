// internal/domain/models/airline.go
package models

// Airline is a carrier that operates flights.
//
// AirlineNameCI is the folded (lowercase, diacritics-stripped) name used by
// ListAirlines/{search}; it never leaves the server.
type Airline struct {
	AirlineID     uint   `gorm:"primaryKey" json:"AirlineId"`
	AirlineName   string `gorm:"size:200;not null" json:"AirlineName" validate:"required,max=200" label:"Airline name"`
	AirlineNameCI string `gorm:"size:200;index" json:"-"`
	FoundingYear  int    `json:"FoundingYear" validate:"omitempty,min=1900,max=2100" label:"Founding year"`
}

// AirlineDto is the API shape of an Airline.
type AirlineDto struct {
	AirlineID    uint   `json:"AirlineId"`
	AirlineName  string `json:"AirlineName"`
	FoundingYear int    `json:"FoundingYear"`
}

// ToDto projects the airline onto its API shape.
func (a Airline) ToDto() AirlineDto {
	return AirlineDto{
		AirlineID:    a.AirlineID,
		AirlineName:  a.AirlineName,
		FoundingYear: a.FoundingYear,
	}
}

func AirlineDtos(rows []Airline) []AirlineDto {
	out := make([]AirlineDto, 0, len(rows))
	for _, a := range rows {
		out = append(out, a.ToDto())
	}
	return out
}
