package sanitizer

import "regexp"

// Pre-compiled regular expressions for performance
var (
	dotRegex        = regexp.MustCompile(`\.+`)
	whitespaceRegex = regexp.MustCompile(`\s+`)
	htmlTagRegex    = regexp.MustCompile(`</?([a-zA-Z][a-zA-Z0-9-]*)\b[^>]*>`)
	allowedTagRegex = regexp.MustCompile(`<\s*([a-zA-Z][a-zA-Z0-9-]*)\s*/?>`)
	scriptRegex     = regexp.MustCompile(`(?is)<script\b[^>]*>.*?</script\s*>`)
)
