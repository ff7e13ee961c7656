package form

import "fmt"

// Reserved literals.
const (
	// Required is the rule action checked in the dedicated required pass.
	Required = "required"
	// Wildcard targets every field known to the rule or filter declarations.
	Wildcard = "*"
)

// Rule binds one or more fields to a validator.
//
// The validator is Validate when set, otherwise the function registered
// under Action. A rule with neither only marks its fields as safe.
type Rule struct {
	Fields   []string
	Action   string
	Validate ValidatorFunc
	Params   Params
	Message  string
}

// Filter binds one or more fields to a value transformation.
//
// The transformation is Apply when set, otherwise the function registered
// under Action. A filter with neither only marks its fields as safe.
type Filter struct {
	Fields []string
	Action string
	Apply  FilterFunc
	Params Params
}

func (r Rule) targets() []string   { return r.Fields }
func (f Filter) targets() []string { return f.Fields }

// NewRule builds a Rule from the tuple shape [fields, action, params, message].
//
// fields is a string or a []string. action is nil, an action name, a
// ValidatorFunc or a func with the same signature.
// It panics on any other type: declarations are fixed at startup and a wrong
// type is a programming error.
func NewRule(fields any, action any, params Params, message string) Rule {
	r := Rule{Fields: toFields(fields), Params: params, Message: message}
	switch a := action.(type) {
	case nil:
	case string:
		r.Action = a
	case ValidatorFunc:
		r.Validate = a
	case func(any, Params, Values) bool:
		r.Validate = a
	default:
		panic(fmt.Sprintf("form: unsupported rule action type %T", action))
	}
	return r
}

// NewFilter builds a Filter from the tuple shape [fields, action, params].
//
// fields is a string or a []string. action is nil, an action name, a
// FilterFunc or a func with the same signature.
func NewFilter(fields any, action any, params Params) Filter {
	f := Filter{Fields: toFields(fields), Params: params}
	switch a := action.(type) {
	case nil:
	case string:
		f.Action = a
	case FilterFunc:
		f.Apply = a
	case func(any, Params, Values) any:
		f.Apply = a
	default:
		panic(fmt.Sprintf("form: unsupported filter action type %T", action))
	}
	return f
}

// Safe declares fields that are accepted by SetData without any rule.
func Safe(fields ...string) Rule {
	return Rule{Fields: fields}
}

func toFields(fields any) []string {
	switch f := fields.(type) {
	case string:
		return []string{f}
	case []string:
		return f
	case []any:
		out := make([]string, 0, len(f))
		for _, v := range f {
			s, ok := v.(string)
			if !ok {
				panic(fmt.Sprintf("form: field name must be a string, got %T", v))
			}
			out = append(out, s)
		}
		return out
	default:
		panic(fmt.Sprintf("form: unsupported fields type %T", fields))
	}
}
