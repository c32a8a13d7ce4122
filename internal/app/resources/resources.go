// internal/app/resources/resources.go
package resources

import (
	"embed"
	"sync"

	"github.com/dalemusser/waffle/pantry/templates"
)

// FS holds the layout partials every page includes: "header", "footer"
// and "form_error".
//
//go:embed templates/*.gohtml
var FS embed.FS

var registerOnce sync.Once

// LoadSharedTemplates registers the layout set. Safe to call more than once.
func LoadSharedTemplates() {
	registerOnce.Do(func() {
		templates.Register(templates.Set{
			Name:     "layout",
			FS:       FS,
			Patterns: []string{"templates/*.gohtml"},
		})
	})
}
