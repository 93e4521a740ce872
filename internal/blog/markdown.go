package blog

import (
	"regexp"
	"strings"
)

// LooksLikeHTML checks whether a post body appears to be an HTML document
// rather than markdown. CMS exports occasionally ship rendered HTML; those
// files are rejected at load time.
func LooksLikeHTML(content string) bool {
	lower := strings.ToLower(strings.TrimSpace(content))
	return strings.HasPrefix(lower, "<!doctype") ||
		strings.HasPrefix(lower, "<html") ||
		strings.HasPrefix(lower, "<head") ||
		strings.HasPrefix(lower, "<body")
}

var (
	headingPattern = regexp.MustCompile(`(?m)^#{1,6}\s+\S`)
	listPattern    = regexp.MustCompile(`(?m)^[\-\*]\s+\S`)
	linkPattern    = regexp.MustCompile(`\[.+?\]\(.+?\)`)
)

// HasMarkdownPatterns checks for common markdown syntax in a post body.
func HasMarkdownPatterns(content string) bool {
	return headingPattern.MatchString(content) ||
		listPattern.MatchString(content) ||
		linkPattern.MatchString(content)
}

// ExtractHeading returns the first H1 heading of a markdown body, used as
// a title fallback when the front matter omits one.
func ExtractHeading(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimPrefix(line, "# ")
		}
	}
	return ""
}
