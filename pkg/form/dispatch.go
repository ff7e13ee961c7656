package form

// Values gives validators and filters read access to the other fields of
// the record being processed.
type Values interface {
	// Value returns the value at a dotted path, or nil when absent.
	Value(field string) any
}

// ValidatorFunc reports whether value satisfies the rule.
type ValidatorFunc func(value any, params Params, form Values) bool

// FilterFunc returns the transformed value.
type FilterFunc func(value any, params Params, form Values) any

// Lookup finds a function by action name.
type Lookup[F any] interface {
	Lookup(name string) (F, bool)
}

// ValidatorSet is a named collection of validators.
type ValidatorSet = Lookup[ValidatorFunc]

// FilterSet is a named collection of filters.
type FilterSet = Lookup[FilterFunc]

// Registry maps action names to functions. It is the usual way to build a
// ValidatorSet or a FilterSet.
type Registry[F any] map[string]F

// Lookup implements Lookup.
func (r Registry[F]) Lookup(name string) (F, bool) {
	fn, ok := r[name]
	return fn, ok
}

// Names returns the registered action names in no particular order.
func (r Registry[F]) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}

// Merge returns a new registry holding r's functions overridden by those of
// the others, in order.
func (r Registry[F]) Merge(others ...Registry[F]) Registry[F] {
	out := make(Registry[F], len(r))
	for name, fn := range r {
		out[name] = fn
	}
	for _, o := range others {
		for name, fn := range o {
			out[name] = fn
		}
	}
	return out
}

// lookupFunc adapts a provider method to Lookup.
type lookupFunc[F any] func(name string) (F, bool)

func (fn lookupFunc[F]) Lookup(name string) (F, bool) { return fn(name) }

// resolve returns the first function registered under name across scopes.
// Nil scopes are skipped.
func resolve[F any](kind, field, name string, scopes ...Lookup[F]) (F, error) {
	for _, scope := range scopes {
		if scope == nil {
			continue
		}
		if fn, ok := scope.Lookup(name); ok {
			return fn, nil
		}
	}
	var zero F
	return zero, &UnresolvedActionError{Kind: kind, Field: field, Action: name}
}

// resolveValidator returns the validator of r. The second result is false
// when r has no action.
func (f *Form) resolveValidator(field string, r Rule) (ValidatorFunc, bool, error) {
	if r.Validate != nil {
		return r.Validate, true, nil
	}
	if r.Action == "" {
		return nil, false, nil
	}
	var definition ValidatorSet
	if p, ok := f.definition.(ValidatorProvider); ok {
		definition = lookupFunc[ValidatorFunc](p.LookupValidator)
	}
	fn, err := resolve[ValidatorFunc](KindValidator, field, r.Action, f.selfValidators, definition, f.validators)
	if err != nil {
		return nil, false, err
	}
	if fn == nil {
		return nil, false, nil
	}
	return fn, true, nil
}

// resolveFilter returns the filter of flt. The second result is false when
// flt has no action.
func (f *Form) resolveFilter(field string, flt Filter) (FilterFunc, bool, error) {
	if flt.Apply != nil {
		return flt.Apply, true, nil
	}
	if flt.Action == "" {
		return nil, false, nil
	}
	var definition FilterSet
	if p, ok := f.definition.(FilterProvider); ok {
		definition = lookupFunc[FilterFunc](p.LookupFilter)
	}
	fn, err := resolve[FilterFunc](KindFilter, field, flt.Action, f.selfFilters, definition, f.filterSet)
	if err != nil {
		return nil, false, err
	}
	if fn == nil {
		return nil, false, nil
	}
	return fn, true, nil
}
