package validator

import (
	"github.com/dmitrymomot/formkit/internal/convert"
	"github.com/dmitrymomot/formkit/pkg/form"
)

// Number passes for numeric values and numeric strings within the optional
// inclusive "min" and "max" bounds.
func Number(value any, params form.Params, _ form.Values) bool {
	n, ok := convert.Float(value)
	if !ok {
		return false
	}
	return inRange(n, params)
}

// Integer is Number restricted to integral values.
func Integer(value any, params form.Params, _ form.Values) bool {
	i, ok := convert.Int(value)
	if !ok {
		return false
	}
	return inRange(float64(i), params)
}

func inRange(n float64, params form.Params) bool {
	if min, ok := params.Float("min"); ok && n < min {
		return false
	}
	if max, ok := params.Float("max"); ok && n > max {
		return false
	}
	return true
}
