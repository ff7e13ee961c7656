package sanitizer

import (
	"html"
	"strings"
)

// EscapeHTML escapes HTML special characters to prevent XSS attacks.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}

// StripScriptTags removes all <script> elements and their content.
func StripScriptTags(s string) string {
	return scriptRegex.ReplaceAllString(s, "")
}

// StripTags removes HTML tags except those named in allowed. Allowed tags
// may be written as "<br><p>" or as bare names.
func StripTags(s string, allowed ...string) string {
	keep := make(map[string]struct{})
	for _, a := range allowed {
		matches := allowedTagRegex.FindAllStringSubmatch(a, -1)
		if len(matches) == 0 {
			for _, name := range strings.FieldsFunc(a, func(r rune) bool { return r == ',' || r == ' ' }) {
				keep[strings.ToLower(name)] = struct{}{}
			}
			continue
		}
		for _, m := range matches {
			keep[strings.ToLower(m[1])] = struct{}{}
		}
	}

	return htmlTagRegex.ReplaceAllStringFunc(s, func(tag string) string {
		m := htmlTagRegex.FindStringSubmatch(tag)
		if _, ok := keep[strings.ToLower(m[1])]; ok {
			return tag
		}
		return ""
	})
}
