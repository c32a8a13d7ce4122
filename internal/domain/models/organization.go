// internal/domain/models/organization.go
package models

// Organization hosts events.
type Organization struct {
	OrganizationID   uint   `gorm:"primaryKey" json:"OrganizationId"`
	OrganizationName string `gorm:"size:200;not null" json:"OrganizationName" validate:"required,max=200" label:"Organization name"`
}

type OrganizationDto struct {
	OrganizationID   uint   `json:"OrganizationId"`
	OrganizationName string `json:"OrganizationName"`
}

func (o Organization) ToDto() OrganizationDto {
	return OrganizationDto{
		OrganizationID:   o.OrganizationID,
		OrganizationName: o.OrganizationName,
	}
}

func OrganizationDtos(rows []Organization) []OrganizationDto {
	out := make([]OrganizationDto, 0, len(rows))
	for _, o := range rows {
		out = append(out, o.ToDto())
	}
	return out
}
