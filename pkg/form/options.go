package form

import "log/slog"

// DefaultError is recorded for failing rules declared without a message.
const DefaultError = "error"

// Definition declares the rules and filters of a reusable form type.
//
// When a Definition also implements ValidatorProvider or FilterProvider, or
// both, its functions are looked up before the injected collaborators, the
// same as functions registered with WithValidator and WithFilter.
type Definition interface {
	Rules() []Rule
	Filters() []Filter
}

// ValidatorProvider is implemented by definitions that carry their own
// validators.
type ValidatorProvider interface {
	LookupValidator(name string) (ValidatorFunc, bool)
}

// FilterProvider is implemented by definitions that carry their own filters.
type FilterProvider interface {
	LookupFilter(name string) (FilterFunc, bool)
}

// Option configures a Form.
type Option func(*Form)

// WithDefinition uses def's declarations ahead of those added with
// WithRules and WithFilters.
func WithDefinition(def Definition) Option {
	return func(f *Form) { f.definition = def }
}

// WithRules appends rule declarations.
func WithRules(rules ...Rule) Option {
	return func(f *Form) { f.rules = append(f.rules, rules...) }
}

// WithFilters appends filter declarations.
func WithFilters(filters ...Filter) Option {
	return func(f *Form) { f.filters = append(f.filters, filters...) }
}

// WithValidators sets the collaborator consulted for validator names not
// registered on the form itself.
func WithValidators(set ValidatorSet) Option {
	return func(f *Form) { f.validators = set }
}

// WithFilterSet sets the collaborator consulted for filter names not
// registered on the form itself.
func WithFilterSet(set FilterSet) Option {
	return func(f *Form) { f.filterSet = set }
}

// WithValidator registers a validator on the form. It takes precedence over
// the collaborator set.
// Panics on an empty name or a nil function.
func WithValidator(name string, fn ValidatorFunc) Option {
	if name == "" || fn == nil {
		panic("form: WithValidator requires a name and a function")
	}
	return func(f *Form) {
		if f.selfValidators == nil {
			f.selfValidators = make(Registry[ValidatorFunc])
		}
		f.selfValidators[name] = fn
	}
}

// WithFilter registers a filter on the form. It takes precedence over the
// collaborator set.
// Panics on an empty name or a nil function.
func WithFilter(name string, fn FilterFunc) Option {
	if name == "" || fn == nil {
		panic("form: WithFilter requires a name and a function")
	}
	return func(f *Form) {
		if f.selfFilters == nil {
			f.selfFilters = make(Registry[FilterFunc])
		}
		f.selfFilters[name] = fn
	}
}

// WithDefaultError sets the message recorded for failing rules without one.
// Empty messages are ignored.
func WithDefaultError(message string) Option {
	return func(f *Form) {
		if message != "" {
			f.defaultError = message
		}
	}
}

// WithLogger supplies a logger for debug diagnostics. If nil, logs are discarded.
func WithLogger(l *slog.Logger) Option {
	return func(f *Form) { f.logger = l }
}
