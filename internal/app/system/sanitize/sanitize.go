// Package sanitize strips markup from free-text fields before they are
// persisted. The dashboard renders chat messages, notes and brand kit
// entries as text, so anything that looks like HTML in those fields is
// noise at best and an injection attempt at worst.
package sanitize

import (
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from s and trims surrounding whitespace.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Slice sanitizes every element of ss in place and returns it.
func Slice(ss []string) []string {
	for i, s := range ss {
		ss[i] = Text(s)
	}
	return ss
}
