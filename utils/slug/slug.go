package slug

import (
	"regexp"
	"strings"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// Make derives a URL-safe slug from a title: lowercased, with runs of
// non-alphanumeric characters collapsed to single hyphens. The same title
// always yields the same slug.
func Make(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = nonAlphanumeric.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}
