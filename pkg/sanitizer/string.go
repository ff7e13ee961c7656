package sanitizer

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// Trim removes leading and trailing whitespace from a string.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// TrimChars removes the characters in cutset from the requested ends of s.
func TrimChars(s, cutset string, left, right bool) string {
	switch {
	case left && right:
		return strings.Trim(s, cutset)
	case left:
		return strings.TrimLeft(s, cutset)
	case right:
		return strings.TrimRight(s, cutset)
	default:
		return s
	}
}

// ToLower converts a string to lowercase.
func ToLower(s string) string {
	return LowerLang(s, language.Und)
}

// ToUpper converts a string to uppercase.
func ToUpper(s string) string {
	return UpperLang(s, language.Und)
}

// LowerLang lowercases s with language-specific rules, e.g. Turkish dotted I.
func LowerLang(s string, tag language.Tag) string {
	return cases.Lower(tag).String(s)
}

// UpperLang uppercases s with language-specific rules.
func UpperLang(s string, tag language.Tag) string {
	return cases.Upper(tag).String(s)
}

// Capitalize lowercases s and uppercases its first letter.
func Capitalize(s string) string {
	return CapitalizeLang(s, language.Und)
}

// CapitalizeLang is Capitalize with language-specific rules.
func CapitalizeLang(s string, tag language.Tag) string {
	lower := LowerLang(s, tag)
	r, size := utf8.DecodeRuneInString(lower)
	if r == utf8.RuneError {
		return lower
	}
	return UpperLang(string(r), tag) + lower[size:]
}

// NormalizeUnicode converts s to Unicode normalization form C so visually
// identical input compares equal.
func NormalizeUnicode(s string) string {
	return norm.NFC.String(s)
}

// ToKebabCase converts a string to kebab-case by replacing non-alphanumeric
// characters with hyphens and normalizing multiple hyphens.
func ToKebabCase(s string) string {
	return joinWords(s, '-')
}

// ToSnakeCase converts a string to snake_case.
func ToSnakeCase(s string) string {
	return joinWords(s, '_')
}

func joinWords(s string, sep rune) string {
	s = ToLower(strings.TrimSpace(s))

	var b strings.Builder
	prevSep := false
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			prevSep = false
			continue
		}
		if !prevSep {
			b.WriteRune(sep)
			prevSep = true
		}
	}

	return strings.Trim(b.String(), string(sep))
}

// MaxLength truncates a string to at most maxLen runes.
func MaxLength(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	return string([]rune(s)[:maxLen])
}

// NormalizeWhitespace collapses runs of whitespace into single spaces and trims.
func NormalizeWhitespace(s string) string {
	return strings.TrimSpace(whitespaceRegex.ReplaceAllString(s, " "))
}

// KeepDigits keeps only numeric digits.
func KeepDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsDigit(r) {
			return r
		}
		return -1
	}, s)
}

// NormalizeEmail lowercases and trims an address and consolidates
// consecutive dots in the local part. Input without exactly one "@" is only
// trimmed and lowercased.
func NormalizeEmail(email string) string {
	email = strings.ToLower(strings.TrimSpace(email))

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}
