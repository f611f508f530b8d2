package schema

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	slugDisallowed = regexp.MustCompile(`[^a-z0-9_\s-]`)
	slugSeparators = regexp.MustCompile(`[\s_]+`)
	slugDashes     = regexp.MustCompile(`-{2,}`)
)

// Slugify derives a URL-safe slug from a title. The result contains only
// lowercase ASCII letters, digits and single hyphens, and may be empty.
func Slugify(title string) string {
	s := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, strings.ToLower(title))
	s = strings.TrimSpace(s)
	s = slugDisallowed.ReplaceAllString(s, "")
	s = slugSeparators.ReplaceAllString(s, "-")
	s = slugDashes.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
