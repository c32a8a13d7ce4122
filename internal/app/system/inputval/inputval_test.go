package inputval

import (
	"testing"
	"time"
)

func TestIsValidHTTPURL(t *testing.T) {
	tests := []struct {
		url  string
		want bool
	}{
		// Valid URLs
		{"http://example.com", true},
		{"https://example.com/path?query=1", true},
		{"http://localhost:8080", true},

		// Valid with whitespace (trimmed)
		{"  https://example.com  ", true},

		// Invalid URLs
		{"", false},
		{"   ", false},
		{"ftp://example.com", false},
		{"mailto:user@example.com", false},
		{"example.com", false},
		{"//example.com", false},
		{"not a url", false},
	}

	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			if got := IsValidHTTPURL(tt.url); got != tt.want {
				t.Errorf("IsValidHTTPURL(%q) = %v, want %v", tt.url, got, tt.want)
			}
		})
	}
}

func TestIsValidRegistration(t *testing.T) {
	tests := []struct {
		reg  string
		want bool
	}{
		{"C-FABC", true},
		{"N12345", true},
		{"g-euoe", true},
		{"D-AIMA", true},
		{"", false},
		{"C--FABC", false},
		{"TOO-LONGSUFFIX", false},
		{"C FABC", false},
	}

	for _, tt := range tests {
		t.Run(tt.reg, func(t *testing.T) {
			if got := IsValidRegistration(tt.reg); got != tt.want {
				t.Errorf("IsValidRegistration(%q) = %v, want %v", tt.reg, got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	type TestInput struct {
		Name  string `validate:"required,max=10" label:"Full name"`
		Email string `validate:"required,email" label:"Email address"`
	}

	tests := []struct {
		name       string
		input      TestInput
		wantErrors bool
		wantFirst  string
	}{
		{
			name:  "valid input",
			input: TestInput{Name: "John", Email: "john@example.com"},
		},
		{
			name:       "missing name",
			input:      TestInput{Name: "", Email: "john@example.com"},
			wantErrors: true,
			wantFirst:  "Full name is required.",
		},
		{
			name:       "name too long",
			input:      TestInput{Name: "VeryLongNameThatExceedsLimit", Email: "john@example.com"},
			wantErrors: true,
			wantFirst:  "Full name must be at most 10 characters.",
		},
		{
			name:       "invalid email",
			input:      TestInput{Name: "John", Email: "not-an-email"},
			wantErrors: true,
			wantFirst:  "A valid email address is required.",
		},
		{
			name:       "missing both",
			input:      TestInput{},
			wantErrors: true,
			wantFirst:  "Full name is required.", // First error
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Validate(tt.input)

			if result.HasErrors() != tt.wantErrors {
				t.Errorf("Validate() HasErrors = %v, want %v", result.HasErrors(), tt.wantErrors)
			}
			if tt.wantErrors && result.First() != tt.wantFirst {
				t.Errorf("Validate() First() = %q, want %q", result.First(), tt.wantFirst)
			}
		})
	}
}

func TestValidate_CrossFieldLabels(t *testing.T) {
	type leg struct {
		Depart time.Time `validate:"required" label:"Departure time"`
		Arrive time.Time `validate:"required,gtfield=Depart" label:"Arrival time"`
		From   uint      `validate:"required" label:"Departure location"`
		To     uint      `validate:"required,nefield=From" label:"Arrival location"`
	}

	now := time.Now()
	res := Validate(leg{Depart: now, Arrive: now.Add(-time.Hour), From: 1, To: 1})
	if !res.HasErrors() {
		t.Fatal("expected errors")
	}

	want := "Arrival time must be after Departure time.; Arrival location must differ from Departure location."
	if res.All() != want {
		t.Errorf("All() = %q, want %q", res.All(), want)
	}
}

func TestValidate_CustomRules(t *testing.T) {
	type URLInput struct {
		URL string `validate:"omitempty,httpurl" label:"Registration website"`
	}

	if res := Validate(URLInput{URL: "https://example.com"}); res.HasErrors() {
		t.Errorf("valid URL has errors: %v", res.Errors)
	}
	if res := Validate(URLInput{}); res.HasErrors() {
		t.Errorf("empty optional URL has errors: %v", res.Errors)
	}
	res := Validate(URLInput{URL: "not-a-url"})
	if res.First() != "Registration website must be a valid http or https URL." {
		t.Errorf("First() = %q", res.First())
	}
}

func TestResult_All(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		r := &Result{}
		if r.All() != "" {
			t.Errorf("All() = %q, want empty", r.All())
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		r := &Result{Errors: []FieldError{{Message: "Error 1"}, {Message: "Error 2"}}}
		if want := "Error 1; Error 2"; r.All() != want {
			t.Errorf("All() = %q, want %q", r.All(), want)
		}
	})
}
