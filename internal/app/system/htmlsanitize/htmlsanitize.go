// Package htmlsanitize cleans user-supplied text before it is stored.
//
// Names, addresses and similar fields are plain text: PlainText strips every
// tag. Sanitize keeps a small set of formatting tags for free-form notes.
package htmlsanitize

import (
	"html/template"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var (
	strict = bluemonday.StrictPolicy()
	ugc    = bluemonday.UGCPolicy()
)

// PlainText removes all markup and trims surrounding whitespace.
// Entities produced by the policy are unescaped so "A & B" stays "A & B".
func PlainText(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	return strings.TrimSpace(unescape(strict.Sanitize(s)))
}

// Sanitize keeps safe formatting and drops scripts, handlers and unsafe URLs.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return ugc.Sanitize(s)
}

// SanitizeToHTML is Sanitize for direct use in templates.
func SanitizeToHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}

// IsPlainText reports whether s looks like it contains no tags.
func IsPlainText(s string) bool {
	return !(strings.Contains(s, "<") && strings.Contains(s, ">"))
}

var entities = strings.NewReplacer(
	"&amp;", "&",
	"&lt;", "<",
	"&gt;", ">",
	"&#34;", `"`,
	"&#39;", "'",
	"&quot;", `"`,
)

func unescape(s string) string {
	return entities.Replace(s)
}
