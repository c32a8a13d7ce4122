package resources

import (
	"io/fs"
	"strings"
	"testing"
)

func TestFS_DefinesLayoutPartials(t *testing.T) {
	b, err := fs.ReadFile(FS, "templates/layout.gohtml")
	if err != nil {
		t.Fatalf("layout.gohtml not embedded: %v", err)
	}
	src := string(b)
	for _, name := range []string{"header", "footer", "form_error"} {
		if !strings.Contains(src, `{{define "`+name+`"}}`) {
			t.Errorf("layout is missing %q", name)
		}
	}
	if !strings.Contains(src, `action="/logout"`) {
		t.Error("header should sign out with a POST form")
	}
}

func TestLoadSharedTemplates_Idempotent(t *testing.T) {
	LoadSharedTemplates()
	LoadSharedTemplates()
}
