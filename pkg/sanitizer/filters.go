package sanitizer

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/formkit/internal/convert"
	"github.com/dmitrymomot/formkit/internal/pattern"
	"github.com/dmitrymomot/formkit/pkg/form"
)

// Filters returns the named filter set for form.WithFilterSet.
//
//	trim        charlist, left, right (default: whitespace, both ends)
//	escape      HTML-escape
//	capitalize  lowercase, then uppercase the first letter (lang)
//	lowercase   (lang)
//	uppercase   (lang)
//	normalize   Unicode NFC
//	replace     pattern ("/regex/flags" or literal), to
//	stripTags   allowableTags
//	stripJs     remove <script> elements
//	squish      collapse whitespace
//	digits      keep digits only
//	email       normalize an e-mail address
//	slug        NFC, then kebab-case
//	snake       NFC, then snake_case
//	truncate    max runes
//	int, float, bool  coerce parsable input
//	default     value used when the input is empty
func Filters() form.Registry[form.FilterFunc] {
	return form.Registry[form.FilterFunc]{
		"trim":       TrimFilter,
		"escape":     stringFilter(EscapeHTML),
		"capitalize": langFilter(CapitalizeLang),
		"lowercase":  langFilter(LowerLang),
		"uppercase":  langFilter(UpperLang),
		"normalize":  stringFilter(NormalizeUnicode),
		"replace":    ReplaceFilter,
		"stripTags":  StripTagsFilter,
		"stripJs":    stringFilter(StripScriptTags),
		"squish":     stringFilter(NormalizeWhitespace),
		"digits":     stringFilter(KeepDigits),
		"email":      stringFilter(NormalizeEmail),
		"slug":       stringFilter(NormalizeUnicode, ToKebabCase),
		"snake":      stringFilter(NormalizeUnicode, ToSnakeCase),
		"truncate":   TruncateFilter,
		"int":        IntFilter,
		"float":      FloatFilter,
		"bool":       BoolFilter,
		"default":    DefaultFilter,
	}
}

// stringFilter adapts a chain of string helpers. Non-string values pass
// through.
func stringFilter(chain ...func(string) string) form.FilterFunc {
	fn := Compose(chain...)
	return func(value any, _ form.Params, _ form.Values) any {
		s, ok := value.(string)
		if !ok {
			return value
		}
		return fn(s)
	}
}

func langFilter(fn func(string, language.Tag) string) form.FilterFunc {
	return func(value any, params form.Params, _ form.Values) any {
		s, ok := value.(string)
		if !ok {
			return value
		}
		tag := language.Und
		if lang := params.String("lang", ""); lang != "" {
			if t, err := language.Parse(lang); err == nil {
				tag = t
			}
		}
		return fn(s, tag)
	}
}

// TrimFilter trims whitespace, or the characters of "charlist", from the
// ends enabled by "left" and "right".
func TrimFilter(value any, params form.Params, _ form.Values) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	left := params.Bool("left", true)
	right := params.Bool("right", true)
	if cutset := params.String("charlist", ""); cutset != "" {
		return TrimChars(s, cutset, left, right)
	}
	switch {
	case left && right:
		return Trim(s)
	case left:
		return strings.TrimLeftFunc(s, isSpace)
	case right:
		return strings.TrimRightFunc(s, isSpace)
	default:
		return s
	}
}

func isSpace(r rune) bool {
	return strings.ContainsRune(" \t\n\r\v\f\x00", r)
}

// ReplaceFilter replaces "pattern" with "to". A delimited pattern
// ("/b.d/i") is a regular expression, anything else is literal text.
// A pattern that fails to compile is treated as literal text.
func ReplaceFilter(value any, params form.Params, _ form.Values) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	p := params.String("pattern", "")
	if p == "" {
		return s
	}
	to := params.String("to", "")
	if pattern.IsDelimited(p) {
		if re, err := pattern.Compile(p); err == nil {
			return re.ReplaceAllString(s, to)
		}
	}
	return strings.ReplaceAll(s, p, to)
}

// StripTagsFilter removes HTML tags except "allowableTags".
func StripTagsFilter(value any, params form.Params, _ form.Values) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	if allowed := params.String("allowableTags", ""); allowed != "" {
		return StripTags(s, allowed)
	}
	if list := params.Strings("allowableTags"); len(list) > 0 {
		return StripTags(s, list...)
	}
	return StripTags(s)
}

// TruncateFilter keeps at most "max" runes.
func TruncateFilter(value any, params form.Params, _ form.Values) any {
	s, ok := value.(string)
	if !ok {
		return value
	}
	maxLen, ok := params.Int("max")
	if !ok {
		return s
	}
	return MaxLength(s, maxLen)
}

// IntFilter converts integer input to int64.
func IntFilter(value any, _ form.Params, _ form.Values) any {
	if i, ok := convert.Int(value); ok {
		return i
	}
	return value
}

// FloatFilter converts numeric input to float64.
func FloatFilter(value any, _ form.Params, _ form.Values) any {
	if f, ok := convert.Float(value); ok {
		return f
	}
	return value
}

// BoolFilter converts boolean-like input ("on", "yes", "1", ...) to bool.
// An HTML checkbox that was not ticked is absent, so an empty string is false.
func BoolFilter(value any, _ form.Params, _ form.Values) any {
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return false
	}
	if b, ok := convert.Bool(value); ok {
		return b
	}
	return value
}

// DefaultFilter returns the "value" parameter when the input is empty.
func DefaultFilter(value any, params form.Params, _ form.Values) any {
	if !form.IsEmpty(value) {
		return value
	}
	if def, ok := params.Get("value"); ok {
		return def
	}
	return value
}

