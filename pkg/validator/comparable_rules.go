package validator

import (
	"slices"

	"github.com/dmitrymomot/formkit/internal/convert"
	"github.com/dmitrymomot/formkit/pkg/form"
)

// Required passes for anything but nil and the empty string.
func Required(value any, _ form.Params, _ form.Values) bool {
	if value == nil {
		return false
	}
	s, ok := value.(string)
	return !ok || s != ""
}

// Equals compares value with the "value" parameter; with "not" set the
// comparison is negated. Numbers compare by value.
// Without a "value" parameter the value is compared with itself.
func Equals(value any, params form.Params, _ form.Values) bool {
	expected := value
	if v, ok := params.Get("value"); ok {
		expected = v
	}
	return convert.Equal(value, expected) != params.Bool("not", false)
}

// Compare compares value with another field of the form named by "field";
// with "not" set the comparison is negated. Without a "field" parameter
// it passes.
func Compare(value any, params form.Params, values form.Values) bool {
	field := params.String("field", "")
	if field == "" || values == nil {
		return true
	}
	return convert.Equal(value, values.Value(field)) != params.Bool("not", false)
}

// In passes when value is one of "values"; with "not" set it passes when
// value is none of them.
func In(value any, params form.Params, _ form.Values) bool {
	s, ok := convert.String(value)
	if !ok {
		return false
	}
	return slices.Contains(params.Strings("values"), s) != params.Bool("not", false)
}
