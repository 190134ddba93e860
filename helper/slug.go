package helper

import (
	"regexp"
	"strings"
)

var (
	slugStripRegex    = regexp.MustCompile(`[^a-z0-9\s_-]+`)
	slugCollapseRegex = regexp.MustCompile(`[\s_-]+`)
)

// Slugify derives a URL-safe identifier from free text: lowercase, strip
// everything outside [a-z0-9 _-], collapse runs of whitespace, underscore
// and hyphen into a single hyphen, trim leading/trailing hyphens.
// Slugifying an already slugified string returns it unchanged.
func Slugify(text string) string {
	slug := strings.ToLower(strings.TrimSpace(text))
	slug = slugStripRegex.ReplaceAllString(slug, "")
	slug = slugCollapseRegex.ReplaceAllString(slug, "-")
	return strings.Trim(slug, "-")
}
