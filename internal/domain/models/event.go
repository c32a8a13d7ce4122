// internal/domain/models/event.go
package models

// Event is something groups fly to. It belongs to one Location and one
// Organization (both enforced by foreign keys) and has many Groups through
// the event_groups junction table.
//
// Location and Organization are belongs-to by naming convention
// (LocationID, OrganizationID), which puts the foreign keys on events.
// They are loaded with Preload and never written through; stores Omit
// associations on create/update.
type Event struct {
	EventID             uint   `gorm:"primaryKey" json:"EventId"`
	EventName           string `gorm:"size:200;not null" json:"EventName" validate:"required,max=200" label:"Event name"`
	RegistrationWebsite string `gorm:"size:500" json:"registrationWebsite" validate:"omitempty,httpurl,max=500" label:"Registration website"`

	LocationID     uint `gorm:"not null;index" json:"LocationId" validate:"required" label:"Location"`
	OrganizationID uint `gorm:"not null;index" json:"OrganizationId" validate:"required" label:"Organization"`

	Location     *Location     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Organization *Organization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"-"`
	Groups       []Group       `gorm:"many2many:event_groups;joinForeignKey:EventID;joinReferences:GroupID" json:"-"`
}

// EventDto flattens the event's Location and Organization names.
type EventDto struct {
	EventID             uint   `json:"EventId"`
	EventName           string `json:"EventName"`
	RegistrationWebsite string `json:"registrationWebsite"`
	LocationID          uint   `json:"LocationId"`
	LocationName        string `json:"LocationName"`
	OrganizationID      uint   `json:"OrganizationId"`
	OrganizationName    string `json:"OrganizationName"`
}

// ToDto projects the event. Names stay empty when the navigation
// properties were not preloaded.
func (e Event) ToDto() EventDto {
	dto := EventDto{
		EventID:             e.EventID,
		EventName:           e.EventName,
		RegistrationWebsite: e.RegistrationWebsite,
		LocationID:          e.LocationID,
		OrganizationID:      e.OrganizationID,
	}
	if e.Location != nil {
		dto.LocationName = e.Location.LocationName
	}
	if e.Organization != nil {
		dto.OrganizationName = e.Organization.OrganizationName
	}
	return dto
}

// EventDtos projects a slice. It always returns a non-nil slice so an empty
// listing encodes as [] rather than null.
func EventDtos(events []Event) []EventDto {
	out := make([]EventDto, 0, len(events))
	for _, e := range events {
		out = append(out, e.ToDto())
	}
	return out
}
