package testutil

import (
	"github.com/dalemusser/groupflight/internal/app/resources"
	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

// BootTemplates registers the layout partials and boots the template engine
// over every set registered so far, the way BuildHandler does at startup.
// Feature sets register in init, so calling this from TestMain picks up the
// package under test and everything it imports.
func BootTemplates() error {
	resources.LoadSharedTemplates()
	eng := templates.New(false)
	if err := eng.Boot(zap.NewNop()); err != nil {
		return err
	}
	templates.UseEngine(eng, zap.NewNop())
	return nil
}
