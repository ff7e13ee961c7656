package fieldpath

import "strings"

// Separator splits path segments.
const Separator = "."

// promotedKey holds a scalar that was replaced by a container during Set.
const promotedKey = "0"

// Get returns the value stored at path. The second result is false when the
// path does not resolve, which is distinct from a stored nil.
func Get(record map[string]any, path string) (any, bool) {
	if record == nil {
		return nil, false
	}
	if v, ok := record[path]; ok {
		return v, true
	}

	idx := strings.LastIndex(path, Separator)
	if idx < 0 {
		return nil, false
	}

	parent, ok := Get(record, path[:idx])
	if !ok {
		return nil, false
	}
	m, ok := asMap(parent)
	if !ok {
		return nil, false
	}
	v, ok := m[path[idx+1:]]
	return v, ok
}

// Set writes value at path and returns the root record, allocating it when
// record is nil. An empty path replaces the whole record with value when
// value is a record, or with an empty record otherwise.
func Set(record map[string]any, path string, value any) map[string]any {
	if path == "" {
		if m, ok := asMap(value); ok {
			return m
		}
		return map[string]any{}
	}
	if record == nil {
		record = make(map[string]any)
	}

	segments := strings.Split(path, Separator)
	current := record
	for _, key := range segments[:len(segments)-1] {
		next := current[key]
		m, isMap := asMap(next)
		switch {
		case isMap && m != nil:
		case isMap || next == nil:
			m = make(map[string]any)
		default:
			m = map[string]any{promotedKey: next}
		}
		current[key] = m
		current = m
	}
	current[segments[len(segments)-1]] = value

	return record
}

func asMap(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	return m, ok
}

// Clone returns a deep copy of nested records and slices in v. Other values
// are returned as is.
func Clone(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, val := range t {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(t))
		for i, val := range t {
			out[i] = Clone(val)
		}
		return out
	default:
		return v
	}
}
