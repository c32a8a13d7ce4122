// Package inputval validates request input with struct tags.
//
// Rules come from go-playground/validator (`validate` tag); messages use the
// `label` tag so users see "Airline name is required." instead of a Go
// field name:
//
//	type createAirlineInput struct {
//		Name string `validate:"required,max=200" label:"Airline name"`
//	}
//
//	if res := inputval.Validate(in); res.HasErrors() {
//		renderWithError(res.First())
//	}
package inputval

import (
	"errors"
	"fmt"
	"net/url"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// FieldError is a single user-facing validation failure.
type FieldError struct {
	Field   string
	Message string
}

// Result collects validation failures in field order.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any rule failed.
func (r *Result) HasErrors() bool {
	return len(r.Errors) > 0
}

// First returns the first message, or "" when valid.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All joins every message with "; ".
func (r *Result) All() string {
	msgs := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		msgs = append(msgs, e.Message)
	}
	return strings.Join(msgs, "; ")
}

var (
	once     sync.Once
	validate *validator.Validate
)

var registrationRe = regexp.MustCompile(`^[A-Z0-9]{1,3}-?[A-Z0-9]{1,6}$`)

func engine() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			if l := f.Tag.Get("label"); l != "" {
				return l
			}
			return f.Name
		})
		_ = v.RegisterValidation("httpurl", func(fl validator.FieldLevel) bool {
			return IsValidHTTPURL(fl.Field().String())
		})
		_ = v.RegisterValidation("regnum", func(fl validator.FieldLevel) bool {
			return IsValidRegistration(fl.Field().String())
		})
		validate = v
	})
	return validate
}

// Validate checks v (a struct or pointer to struct) against its tags.
func Validate(v any) Result {
	err := engine().Struct(v)
	if err == nil {
		return Result{}
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return Result{Errors: []FieldError{{Message: "Invalid input."}}}
	}

	res := Result{Errors: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.StructField(),
			Message: message(v, fe),
		})
	}
	return res
}

func message(v any, fe validator.FieldError) string {
	label := fe.Field()
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s.", label, fe.Param())
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters.", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s.", label, fe.Param())
	case "email":
		return "A valid email address is required."
	case "url", "httpurl":
		return label + " must be a valid http or https URL."
	case "regnum":
		return label + " must look like C-FABC or N12345."
	case "gtfield":
		return fmt.Sprintf("%s must be after %s.", label, labelOf(v, fe.Param()))
	case "nefield":
		return fmt.Sprintf("%s must differ from %s.", label, labelOf(v, fe.Param()))
	default:
		return label + " is invalid."
	}
}

// labelOf resolves the label of a sibling field named in a cross-field rule.
func labelOf(v any, field string) string {
	t := reflect.TypeOf(v)
	for t != nil && t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		return field
	}
	if f, ok := t.FieldByName(field); ok {
		if l := f.Tag.Get("label"); l != "" {
			return l
		}
	}
	return field
}

// IsValidHTTPURL reports whether s (trimmed) is an absolute http or https URL.
func IsValidHTTPURL(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsValidRegistration reports whether s looks like an aircraft
// registration mark (country prefix, optional dash, suffix).
func IsValidRegistration(s string) bool {
	return registrationRe.MatchString(strings.ToUpper(strings.TrimSpace(s)))
}
