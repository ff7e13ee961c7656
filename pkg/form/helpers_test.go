package form_test

import (
	"github.com/dmitrymomot/formkit/internal/convert"
	"github.com/dmitrymomot/formkit/pkg/form"
)

// increase adds the "amount" parameter to numeric values.
func increase(value any, params form.Params, _ form.Values) any {
	n, ok := convert.Float(value)
	if !ok {
		return value
	}
	amount, _ := params.Float("amount")
	return n + amount
}

func minLength(value any, params form.Params, _ form.Values) bool {
	s, _ := value.(string)
	n, _ := params.Int("minLength")
	return len(s) >= n
}

// accountForm is a reusable form type that carries its own actions.
type accountForm struct {
	rules   []form.Rule
	filters []form.Filter
}

func (a accountForm) Rules() []form.Rule     { return a.rules }
func (a accountForm) Filters() []form.Filter { return a.filters }

func (a accountForm) LookupFilter(name string) (form.FilterFunc, bool) {
	if name != "decrease" {
		return nil, false
	}
	return func(value any, params form.Params, _ form.Values) any {
		n, _ := convert.Float(value)
		amount, _ := params.Float("amount")
		return n - amount
	}, true
}

// validatingForm resolves validators and filters from the definition itself.
type validatingForm struct {
	accountForm
}

func (validatingForm) LookupValidator(name string) (form.ValidatorFunc, bool) {
	if name != "validateString" {
		return nil, false
	}
	return minLength, true
}
