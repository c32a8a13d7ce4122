// internal/app/system/viewdata/viewdata.go
package viewdata

import (
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/authz"
	"github.com/dalemusser/waffle/pantry/httpnav"
)

// SiteName is shown in the header and page titles.
const SiteName = "Group Flight Planner"

// BaseVM contains common fields for all view models.
// Embed this struct in your feature-specific view models.
//
//	type airlineListData struct {
//	    viewdata.BaseVM
//	    Airlines []models.AirlineDto
//	}
type BaseVM struct {
	SiteName string

	// User context (from auth middleware)
	IsLoggedIn bool
	IsAdmin    bool
	Role       string
	UserName   string

	// Page context
	Title       string
	BackURL     string
	CurrentPath string
}

// NewBaseVM creates a fully populated BaseVM for a page.
func NewBaseVM(r *http.Request, title, backDefault string) BaseVM {
	role, name, _, signedIn := authz.UserCtx(r)
	return BaseVM{
		SiteName:    SiteName,
		IsLoggedIn:  signedIn,
		IsAdmin:     authz.IsAdmin(r),
		Role:        role,
		UserName:    name,
		Title:       title,
		BackURL:     httpnav.ResolveBackURL(r, backDefault),
		CurrentPath: httpnav.CurrentPath(r),
	}
}
