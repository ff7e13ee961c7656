// Package fieldpath reads and writes values in nested string-keyed records
// using dotted paths such as "user.address.city".
//
// A record is a plain map[string]any whose values are either scalars or
// further map[string]any levels. Lookups are total: a path that cannot be
// resolved is reported as absent, never as an error.
//
//	rec := map[string]any{}
//	rec = fieldpath.Set(rec, "user.name", "Ann")
//	v, ok := fieldpath.Get(rec, "user.name") // "Ann", true
//
// A key that itself contains dots is found before the path is split, so
// flat form submissions ("user.name" as a single key) and nested JSON
// documents resolve the same way.
//
// # Promotion
//
// When Set has to descend through a level that holds a scalar, the scalar is
// moved into a new container under the key "0" and the walk continues:
//
//	rec := map[string]any{"a": "x"}
//	rec = fieldpath.Set(rec, "a.b", "y")
//	// rec == {"a": {"0": "x", "b": "y"}}
package fieldpath
