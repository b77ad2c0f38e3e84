package blogservice

import (
	"regexp"
	"strings"
)

var (
	nonASCIIRX     = regexp.MustCompile(`[^\x00-\x7F]`)
	whitespaceRX   = regexp.MustCompile(`\s+`)
	nonSlugCharsRX = regexp.MustCompile(`[^a-z0-9\-]`)
	SlugRX         = regexp.MustCompile(`^[a-z0-9\-]+$`)
)

// Slugify derives a URL-safe slug from a title: lowercase, trim, drop non-ASCII,
// whitespace runs become a single hyphen, anything else outside [a-z0-9-] is removed.
//
//	Slugify("Hello World!") == "hello-world"
func Slugify(title string) string {
	s := strings.TrimSpace(strings.ToLower(title))
	s = nonASCIIRX.ReplaceAllString(s, "")
	s = whitespaceRX.ReplaceAllString(s, "-")
	return nonSlugCharsRX.ReplaceAllString(s, "")
}

// normalizeSlug prepares an explicitly supplied slug for validation and storage.
func normalizeSlug(slug string) string {
	return strings.ToLower(strings.TrimSpace(slug))
}
