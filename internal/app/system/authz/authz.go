// internal/app/system/authz/authz.go
package authz

import (
	"net/http"
	"strings"

	"github.com/dalemusser/groupflight/internal/app/system/auth"
)

// UserCtx returns the user's role (lowercased), name, id, and a found flag.
// With no user in context it returns "visitor", "", 0, false, so callers can
// trust that ok=true means an authenticated user with a real id.
func UserCtx(r *http.Request) (role string, name string, userID uint, ok bool) {
	user, ok := auth.CurrentUser(r)
	if !ok || user.ID == 0 {
		return "visitor", "", 0, false
	}
	return strings.ToLower(user.Role), user.Name, user.ID, true
}

// IsAdmin reports whether the current request's user is an admin.
func IsAdmin(r *http.Request) bool {
	role, _, _, ok := UserCtx(r)
	return ok && role == "admin"
}

// HasAnyRole reports whether the current request's user has any of the given roles.
// Returns false if no user is present (i.e., not signed in).
func HasAnyRole(r *http.Request, roles ...string) bool {
	role, _, _, ok := UserCtx(r)
	if !ok {
		return false
	}
	for _, want := range roles {
		if role == strings.ToLower(strings.TrimSpace(want)) {
			return true
		}
	}
	return false
}
