package form

import "github.com/dmitrymomot/formkit/internal/convert"

// Params carries the parameters of a single declaration.
type Params map[string]any

// Has reports whether key is set.
func (p Params) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// Get returns the raw parameter value.
func (p Params) Get(key string) (any, bool) {
	v, ok := p[key]
	return v, ok
}

// String returns the parameter as a string or def when missing or not a scalar.
func (p Params) String(key, def string) string {
	if s, ok := convert.String(p[key]); ok {
		return s
	}
	return def
}

// Bool returns the parameter as a bool or def when missing or unparsable.
func (p Params) Bool(key string, def bool) bool {
	if b, ok := convert.Bool(p[key]); ok {
		return b
	}
	return def
}

// Float returns the parameter as a float64. The second result is false when
// the parameter is missing or not numeric.
func (p Params) Float(key string) (float64, bool) {
	return convert.Float(p[key])
}

// Int returns the parameter as an int. The second result is false when the
// parameter is missing or not an integer.
func (p Params) Int(key string) (int, bool) {
	i, ok := convert.Int(p[key])
	return int(i), ok
}

// Strings returns a list parameter. A comma-separated string is split.
func (p Params) Strings(key string) []string {
	l, _ := convert.Strings(p[key])
	return l
}
