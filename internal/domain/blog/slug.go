package blog

import (
	"regexp"
	"strings"
)

var (
	nonSlug    = regexp.MustCompile(`[^a-z0-9\s-]+`)
	whitespace = regexp.MustCompile(`\s+`)
	multiDash  = regexp.MustCompile(`-+`)
)

// Slugify generates a URL-safe slug from an article title.
// Example: "Menuju Fajar, 2024!" -> "menuju-fajar-2024"
//
// A title with no alphanumeric characters yields ""; callers rely on the
// slug uniqueness constraint to reject that, not on this function.
func Slugify(title string) string {
	s := strings.ToLower(title)
	s = nonSlug.ReplaceAllString(s, "")
	s = whitespace.ReplaceAllString(s, "-")
	s = multiDash.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
