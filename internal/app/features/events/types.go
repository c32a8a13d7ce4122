// internal/app/features/events/types.go
package events

import (
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/groupflight/internal/domain/models"
)

type listData struct {
	viewdata.BaseVM
	Events []models.EventDto
}

// detailsData carries the event, the groups attending it and, for the
// picker, the groups that are not.
type detailsData struct {
	viewdata.BaseVM
	Event     models.EventDto
	Groups    []models.GroupDto
	Available []models.GroupDto
}

type errorData struct {
	viewdata.BaseVM
	Message string
}
