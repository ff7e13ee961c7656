package validator

import (
	"unicode"
	"unicode/utf8"

	"github.com/dmitrymomot/formkit/internal/convert"
	"github.com/dmitrymomot/formkit/internal/pattern"
	"github.com/dmitrymomot/formkit/pkg/form"
)

// String passes for strings whose rune length lies within the optional
// inclusive "min" and "max" bounds.
func String(value any, params form.Params, _ form.Values) bool {
	s, ok := value.(string)
	if !ok {
		return false
	}
	n := utf8.RuneCountInString(s)
	if min, ok := params.Int("min"); ok && n < min {
		return false
	}
	if max, ok := params.Int("max"); ok && n > max {
		return false
	}
	return true
}

// Regex passes when value matches "pattern". Without a pattern it passes;
// a pattern that does not compile fails.
func Regex(value any, params form.Params, _ form.Values) bool {
	p := params.String("pattern", "")
	if p == "" {
		return true
	}
	s, ok := convert.String(value)
	if !ok {
		return false
	}
	re, err := pattern.Compile(p)
	if err != nil {
		return false
	}
	return re.MatchString(s)
}

// Alpha passes for non-empty strings made of letters only.
func Alpha(value any, _ form.Params, _ form.Values) bool {
	return onlyRunes(value, unicode.IsLetter)
}

// Alphanumeric passes for non-empty strings made of letters and digits only.
func Alphanumeric(value any, _ form.Params, _ form.Values) bool {
	return onlyRunes(value, func(r rune) bool {
		return unicode.IsLetter(r) || unicode.IsDigit(r)
	})
}

func onlyRunes(value any, allowed func(rune) bool) bool {
	s, ok := value.(string)
	if !ok || s == "" {
		return false
	}
	for _, r := range s {
		if !allowed(r) {
			return false
		}
	}
	return true
}
