// internal/app/features/apidata/handler.go
package apidata

import (
	airlinestore "github.com/dalemusser/groupflight/internal/app/store/airlines"
	eventstore "github.com/dalemusser/groupflight/internal/app/store/events"
	flightstore "github.com/dalemusser/groupflight/internal/app/store/flights"
	groupstore "github.com/dalemusser/groupflight/internal/app/store/groups"
	locationstore "github.com/dalemusser/groupflight/internal/app/store/locations"
	organizationstore "github.com/dalemusser/groupflight/internal/app/store/organizations"
	"github.com/dalemusser/groupflight/internal/app/system/auditlog"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler serves the JSON data API under /api. Handlers are stateless; all
// state lives in the database behind the stores.
type Handler struct {
	Airlines      *airlinestore.Store
	Flights       *flightstore.Store
	Events        *eventstore.Store
	Groups        *groupstore.Store
	Locations     *locationstore.Store
	Organizations *organizationstore.Store

	Audit *auditlog.Logger
	Log   *zap.Logger
}

// NewHandler builds the API handler and its stores over db. audit may be nil.
func NewHandler(db *gorm.DB, audit *auditlog.Logger, logger *zap.Logger) *Handler {
	return &Handler{
		Airlines:      airlinestore.New(db),
		Flights:       flightstore.New(db),
		Events:        eventstore.New(db),
		Groups:        groupstore.New(db),
		Locations:     locationstore.New(db),
		Organizations: organizationstore.New(db),
		Audit:         audit,
		Log:           logger,
	}
}
