// internal/domain/models/location.go
package models

// Location is a venue or airport that events and flights point at.
type Location struct {
	LocationID      uint   `gorm:"primaryKey" json:"LocationId"`
	LocationName    string `gorm:"size:200;not null" json:"LocationName" validate:"required,max=200" label:"Location name"`
	LocationAddress string `gorm:"size:500" json:"LocationAddress" validate:"max=500" label:"Location address"`
}

type LocationDto struct {
	LocationID      uint   `json:"LocationId"`
	LocationName    string `json:"LocationName"`
	LocationAddress string `json:"LocationAddress"`
}

func (l Location) ToDto() LocationDto {
	return LocationDto{
		LocationID:      l.LocationID,
		LocationName:    l.LocationName,
		LocationAddress: l.LocationAddress,
	}
}

func LocationDtos(rows []Location) []LocationDto {
	out := make([]LocationDto, 0, len(rows))
	for _, l := range rows {
		out = append(out, l.ToDto())
	}
	return out
}
