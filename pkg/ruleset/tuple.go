package ruleset

import (
	"fmt"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// parseRule converts a [fields, action?, params?, message?] tuple.
func parseRule(tuple []any) (form.Rule, error) {
	if len(tuple) == 0 || len(tuple) > 4 {
		return form.Rule{}, fmt.Errorf("%w: rule needs 1 to 4 elements, got %d", ErrInvalidTuple, len(tuple))
	}
	fields, action, params, err := parseHead(tuple)
	if err != nil {
		return form.Rule{}, err
	}
	r := form.Rule{Fields: fields, Action: action, Params: params}
	if len(tuple) == 4 && tuple[3] != nil {
		msg, ok := tuple[3].(string)
		if !ok {
			return form.Rule{}, fmt.Errorf("%w: message must be a string, got %T", ErrInvalidTuple, tuple[3])
		}
		r.Message = msg
	}
	return r, nil
}

// parseFilter converts a [fields, action?, params?] tuple.
func parseFilter(tuple []any) (form.Filter, error) {
	if len(tuple) == 0 || len(tuple) > 3 {
		return form.Filter{}, fmt.Errorf("%w: filter needs 1 to 3 elements, got %d", ErrInvalidTuple, len(tuple))
	}
	fields, action, params, err := parseHead(tuple)
	if err != nil {
		return form.Filter{}, err
	}
	return form.Filter{Fields: fields, Action: action, Params: params}, nil
}

func parseHead(tuple []any) (fields []string, action string, params form.Params, err error) {
	if fields, err = parseFields(tuple[0]); err != nil {
		return nil, "", nil, err
	}
	if len(tuple) > 1 && tuple[1] != nil {
		var ok bool
		if action, ok = tuple[1].(string); !ok {
			return nil, "", nil, fmt.Errorf("%w: action must be a string, got %T", ErrInvalidTuple, tuple[1])
		}
	}
	if len(tuple) > 2 && tuple[2] != nil {
		if params, err = parseParams(tuple[2]); err != nil {
			return nil, "", nil, err
		}
	}
	return fields, action, params, nil
}

func parseFields(v any) ([]string, error) {
	switch f := v.(type) {
	case string:
		if f == "" {
			return nil, fmt.Errorf("%w: empty field name", ErrInvalidTuple)
		}
		return []string{f}, nil
	case []any:
		if len(f) == 0 {
			return nil, fmt.Errorf("%w: empty field list", ErrInvalidTuple)
		}
		out := make([]string, 0, len(f))
		for _, item := range f {
			s, ok := item.(string)
			if !ok || s == "" {
				return nil, fmt.Errorf("%w: field name must be a non-empty string, got %v", ErrInvalidTuple, item)
			}
			out = append(out, s)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("%w: fields must be a string or a list, got %T", ErrInvalidTuple, v)
	}
}

func parseParams(v any) (form.Params, error) {
	switch p := v.(type) {
	case map[string]any:
		return form.Params(p), nil
	case map[any]any:
		out := make(form.Params, len(p))
		for k, val := range p {
			key, ok := k.(string)
			if !ok {
				return nil, fmt.Errorf("%w: parameter names must be strings, got %T", ErrInvalidTuple, k)
			}
			out[key] = val
		}
		return out, nil
	case []any:
		// an empty list stands for "no parameters" in hand-written files
		if len(p) == 0 {
			return nil, nil
		}
	}
	return nil, fmt.Errorf("%w: params must be a mapping, got %T", ErrInvalidTuple, v)
}
