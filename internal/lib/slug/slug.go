// Package slug derives URL slugs for articles.
package slug

import (
	"regexp"
	"strings"
)

var (
	disallowed = regexp.MustCompile(`[^\p{L}\p{N}_\s-]`)
	separators = regexp.MustCompile(`[\s-]+`)
)

// Make lowercases and trims s, drops everything except letters, digits,
// underscores, whitespace and hyphens, and collapses runs of whitespace and
// hyphens into a single hyphen.
func Make(s string) string {
	s = strings.TrimSpace(strings.ToLower(s))
	s = disallowed.ReplaceAllString(s, "")
	return separators.ReplaceAllString(s, "-")
}

// WithID appends the first 8 characters of id to the slug of title so that
// articles with equal titles still get distinct slugs.
func WithID(title, id string) string {
	suffix := id
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	return Make(title) + "-" + suffix
}
