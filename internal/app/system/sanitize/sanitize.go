// internal/app/system/sanitize/sanitize.go

// Package sanitize strips markup from user-supplied text before it is
// stored. Gift titles, links, and display names all come straight from the
// client and end up rendered in other members' browsers.
package sanitize

import (
	"net/url"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

var strict = bluemonday.StrictPolicy()

// Text removes all HTML from a free-form string, leaving plain text.
func Text(s string) string {
	return strings.TrimSpace(strict.Sanitize(s))
}

// Link validates a user-supplied URL. It returns the cleaned URL, or an
// empty string when the value is not an absolute http(s) URL.
func Link(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	u, err := url.Parse(s)
	if err != nil {
		return ""
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ""
	}
	if u.Host == "" {
		return ""
	}
	return u.String()
}
