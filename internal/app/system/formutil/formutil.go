// Package formutil provides helpers for form re-rendering with validation errors.
//
// When a submission fails validation the form is rendered again with the
// user's values echoed back and an error message. Embed Base in the form's
// data struct:
//
//	type airlineFormData struct {
//		formutil.Base
//		AirlineName  string
//		FoundingYear string
//	}
//
//	data := airlineFormData{AirlineName: name}
//	formutil.SetBase(&data.Base, r, "New Airline", "/Airline/List")
//	data.SetError("Airline name is required.")
//	templates.Render(w, r, "airline_new", data)
package formutil

import (
	"html/template"
	"net/http"

	"github.com/dalemusser/groupflight/internal/app/system/viewdata"
)

// Base contains common fields for form pages.
type Base struct {
	viewdata.BaseVM
	Error template.HTML
}

// SetBase populates the embedded BaseVM from the request.
func SetBase(b *Base, r *http.Request, title, backDefault string) {
	b.BaseVM = viewdata.NewBaseVM(r, title, backDefault)
}

// SetError sets an already-escaped error message.
func (b *Base) SetError(msg string) {
	b.Error = template.HTML(template.HTMLEscapeString(msg))
}
