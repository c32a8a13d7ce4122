// internal/app/features/airlines/types.go
package airlines

import (
	"github.com/dalemusser/groupflight/internal/app/system/formutil"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
	"github.com/dalemusser/groupflight/internal/domain/models"
)

type listData struct {
	viewdata.BaseVM
	Search   string
	Airlines []models.AirlineDto
}

type detailsData struct {
	viewdata.BaseVM
	Airline models.AirlineDto
	Flights []models.FlightDto
	Planes  []models.FlightDto
}

// formData backs both the New and Edit forms. FoundingYear stays a string
// so a bad value can be echoed back.
type formData struct {
	formutil.Base
	AirlineID    uint
	AirlineName  string
	FoundingYear string
}

type deleteData struct {
	viewdata.BaseVM
	Airline models.AirlineDto
}

type errorData struct {
	viewdata.BaseVM
	Message string
}
