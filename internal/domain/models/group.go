// internal/domain/models/group.go
package models

// Group is a travelling party. Groups attend events through the
// event_groups junction table (see Event.Groups).
type Group struct {
	GroupID   uint   `gorm:"primaryKey" json:"GroupId"`
	GroupName string `gorm:"size:200;not null" json:"GroupName" validate:"required,max=200" label:"Group name"`
}

type GroupDto struct {
	GroupID   uint   `json:"GroupId"`
	GroupName string `json:"GroupName"`
}

func (g Group) ToDto() GroupDto {
	return GroupDto{GroupID: g.GroupID, GroupName: g.GroupName}
}

func GroupDtos(rows []Group) []GroupDto {
	out := make([]GroupDto, 0, len(rows))
	for _, g := range rows {
		out = append(out, g.ToDto())
	}
	return out
}
