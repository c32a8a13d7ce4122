// internal/app/features/auditlog/types.go
package auditlog

import (
	"time"

	"github.com/dalemusser/groupflight/internal/app/store/audit"
	"github.com/dalemusser/groupflight/internal/app/system/paging"
	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
)

// listItem is one audit row for display.
type listItem struct {
	ID        uint
	Timestamp time.Time
	Category  string
	EventType string
	ActorName string // resolved from ActorID
	Entity    string
	EntityID  string
	IP        string
	Success   bool
	Reason    string
	Details   map[string]string
}

type listData struct {
	viewdata.BaseVM

	Items []listItem

	// Filters
	Category  string
	EventType string
	StartDate string
	EndDate   string

	Categories []categoryOption
	EventTypes []string

	Pager   paging.Pager
	PrevURL string
	NextURL string
}

type categoryOption struct {
	Value string
	Label string
}

func allCategories() []categoryOption {
	return []categoryOption{
		{Value: audit.CategoryAuth, Label: "Authentication"},
		{Value: audit.CategoryAdmin, Label: "Administration"},
	}
}

// eventTypesForCategory returns the event types recorded under category,
// or every type when category is empty.
func eventTypesForCategory(category string) []string {
	authEvents := []string{
		audit.EventLoginSuccess,
		audit.EventLoginFailedUserNotFound,
		audit.EventLoginFailedWrongPassword,
		audit.EventLoginFailedRateLimit,
		audit.EventLogout,
	}
	adminEvents := []string{
		audit.EventEntityCreated,
		audit.EventEntityUpdated,
		audit.EventEntityDeleted,
		audit.EventGroupAddedToEvent,
		audit.EventGroupRemovedFromEvent,
		audit.EventAdminBootstrapped,
	}

	switch category {
	case audit.CategoryAuth:
		return authEvents
	case audit.CategoryAdmin:
		return adminEvents
	case "":
		return append(append([]string{}, authEvents...), adminEvents...)
	default:
		return nil
	}
}
