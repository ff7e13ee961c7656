// Package sanitizer provides string cleaning helpers and the named filter
// set used by forms.
//
// The plain helpers (Trim, ToKebabCase, StripTags, NormalizeEmail, ...) are
// small, stateless functions that can be freely combined with Apply and
// Compose:
//
//	clean := sanitizer.Compose(
//	    sanitizer.Trim,
//	    sanitizer.NormalizeWhitespace,
//	    sanitizer.ToLower,
//	)
//	safe := clean("  Mixed CASE   Input\n") // "mixed case input"
//
// Filters exposes the same functionality by action name for form filter
// declarations:
//
//	f := form.New(
//	    form.WithFilters(
//	        form.NewFilter("*", "trim", nil),
//	        form.NewFilter([]string{"first_name", "last_name"}, "capitalize", nil),
//	        form.NewFilter("email", "replace", form.Params{"pattern": "email.com", "to": "gmail.com"}),
//	        form.NewFilter("content", "stripTags", form.Params{"allowableTags": "<p><br>"}),
//	    ),
//	    form.WithFilterSet(sanitizer.Filters()),
//	)
//
// # Error handling
//
// None of the helpers returns an error. String filters leave non-string
// values untouched and coercion filters leave unparsable input as is.
//
// Case conversion is Unicode-aware and uses golang.org/x/text/cases; an
// optional "lang" parameter selects language-specific rules.
package sanitizer
