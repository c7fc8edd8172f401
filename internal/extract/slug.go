// Package extract implements the heuristic extraction pipeline that turns
// loosely structured Wikipedia article HTML into typed coaching
// relationship records. Every extractor here is best-effort: the source
// material is prose, so the regex and substring rules carry known false
// positives and negatives by nature.
package extract

import (
	"regexp"
	"strings"
)

var (
	parentheticalRe = regexp.MustCompile(`\s*\(.*?\)\s*`)
	nonSlugRe       = regexp.MustCompile(`[^a-z0-9\s-]`)
	whitespaceRe    = regexp.MustCompile(`\s+`)
)

// Slug converts a coach's display name to a stable URL-friendly
// identifier. Parenthetical qualifiers are removed, the remainder is
// lowercased, characters outside [a-z0-9 -] are dropped, and whitespace
// runs collapse to a single hyphen. Slug is idempotent; degenerate input
// can produce an empty string.
func Slug(name string) string {
	s := strings.TrimSpace(name)
	s = parentheticalRe.ReplaceAllString(s, "")
	s = strings.ToLower(s)
	s = nonSlugRe.ReplaceAllString(s, "")
	s = whitespaceRe.ReplaceAllString(s, "-")
	return s
}
