// Package navigation provides helpers for safe URL navigation and redirects.
package navigation

import (
	"net/http"
	"strings"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
)

// BackURLOptions configures SafeBackURL.
type BackURLOptions struct {
	// AllowedPrefix is the required URL prefix (e.g. "/Airline").
	// If empty, any safe URL is allowed.
	AllowedPrefix string

	// ExcludedSubpaths reject return URLs that point back at action pages.
	ExcludedSubpaths []string

	// Fallback is used when no valid return URL is present.
	Fallback string
}

// SafeBackURL reads "return" from the query string or form, rejects open
// redirects, and falls back when the URL is outside AllowedPrefix or names
// an excluded subpath.
func SafeBackURL(r *http.Request, opts BackURLOptions) string {
	ret := urlutil.SafeReturn(query.Get(r, "return"), "", "")
	if ret == "" {
		ret = urlutil.SafeReturn(strings.TrimSpace(r.FormValue("return")), "", "")
	}
	if ret != "" && allowed(ret, opts) {
		return ret
	}
	return opts.Fallback
}

func allowed(u string, opts BackURLOptions) bool {
	if opts.AllowedPrefix != "" && !strings.HasPrefix(u, opts.AllowedPrefix) {
		return false
	}
	for _, ex := range opts.ExcludedSubpaths {
		if strings.Contains(u, ex) {
			return false
		}
	}
	return true
}

var (
	// AirlinesBackURL is used by the airline pages.
	AirlinesBackURL = BackURLOptions{
		AllowedPrefix:    "/Airline",
		ExcludedSubpaths: []string{"/Edit", "/Delete", "/New", "/Create", "/Update"},
		Fallback:         "/Airline/List",
	}

	// EventsBackURL is used by the event pages.
	EventsBackURL = BackURLOptions{
		AllowedPrefix:    "/Event",
		ExcludedSubpaths: []string{"/Associate", "/UnAssociate"},
		Fallback:         "/Event/List",
	}
)
