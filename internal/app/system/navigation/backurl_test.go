package navigation

import (
	"net/http/httptest"
	"testing"
)

func TestSafeBackURL(t *testing.T) {
	tests := []struct {
		name   string
		target string
		opts   BackURLOptions
		want   string
	}{
		{"no return uses fallback", "/Airline/Details/1", AirlinesBackURL, "/Airline/List"},
		{"valid return kept", "/Airline/New?return=/Airline/List%3Fq%3Dair", AirlinesBackURL, "/Airline/List?q=air"},
		{"external rejected", "/Airline/New?return=https://evil.example", AirlinesBackURL, "/Airline/List"},
		{"protocol-relative rejected", "/Airline/New?return=//evil.example", AirlinesBackURL, "/Airline/List"},
		{"wrong prefix rejected", "/Airline/New?return=/Event/List", AirlinesBackURL, "/Airline/List"},
		{"action page rejected", "/Airline/New?return=/Airline/Edit/3", AirlinesBackURL, "/Airline/List"},
		{"events preset", "/Event/Details/2?return=/Event/List", EventsBackURL, "/Event/List"},
		{"no prefix allows any local", "/x?return=/Event/Details/2", BackURLOptions{Fallback: "/"}, "/Event/Details/2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", tt.target, nil)
			if got := SafeBackURL(r, tt.opts); got != tt.want {
				t.Errorf("SafeBackURL() = %q, want %q", got, tt.want)
			}
		})
	}
}
