package form

// declaration is implemented by Rule and Filter.
type declaration interface {
	Rule | Filter
	targets() []string
}

// Index is the per-field execution plan derived from a declaration list.
// Fields keep the order in which they were first declared and each field's
// entries keep declaration order.
type Index[D declaration] struct {
	fields  []string
	entries map[string][]D
}

// Normalize expands decls into an Index. Multi-field declarations are
// appended to every field they name. Identical input yields identical output.
func Normalize[D declaration](decls []D) *Index[D] {
	ix := &Index[D]{entries: make(map[string][]D)}
	for _, d := range decls {
		for _, field := range d.targets() {
			ix.add(field, d)
		}
	}
	return ix
}

func (ix *Index[D]) add(field string, entries ...D) {
	if _, ok := ix.entries[field]; !ok {
		ix.fields = append(ix.fields, field)
		ix.entries[field] = nil
	}
	ix.entries[field] = append(ix.entries[field], entries...)
}

// Fields returns the indexed field names in declaration order.
func (ix *Index[D]) Fields() []string {
	out := make([]string, len(ix.fields))
	copy(out, ix.fields)
	return out
}

// Entries returns the declarations of field in execution order.
func (ix *Index[D]) Entries(field string) []D {
	return ix.entries[field]
}

// Has reports whether field is a key of the index.
func (ix *Index[D]) Has(field string) bool {
	_, ok := ix.entries[field]
	return ok
}

// Len returns the number of indexed fields.
func (ix *Index[D]) Len() int {
	return len(ix.fields)
}

// MergeWildcard appends the wildcard entries to every field in known, after
// the field's own entries, and drops the wildcard key. Fields of known that
// are not indexed yet are added. Without a wildcard key only the missing
// known fields are added.
func (ix *Index[D]) MergeWildcard(known []string) {
	wildcard := ix.entries[Wildcard]
	if ix.Has(Wildcard) {
		delete(ix.entries, Wildcard)
		fields := ix.fields[:0:0]
		for _, f := range ix.fields {
			if f != Wildcard {
				fields = append(fields, f)
			}
		}
		ix.fields = fields
	}

	for _, field := range known {
		if field == Wildcard {
			continue
		}
		ix.add(field, wildcard...)
	}
}

// knownFields is the union of the concrete fields of both indexes: rule
// fields first, then filter-only fields.
func knownFields(rules *Index[Rule], filters *Index[Filter]) []string {
	seen := make(map[string]struct{}, rules.Len()+filters.Len())
	known := make([]string, 0, rules.Len()+filters.Len())
	for _, fields := range [][]string{rules.fields, filters.fields} {
		for _, f := range fields {
			if f == Wildcard {
				continue
			}
			if _, ok := seen[f]; ok {
				continue
			}
			seen[f] = struct{}{}
			known = append(known, f)
		}
	}
	return known
}
