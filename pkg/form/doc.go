// Package form filters and validates loosely typed records, such as HTML
// form submissions or decoded JSON bodies, against declarative per-field
// rule lists.
//
// A Form holds two ordered lists of declarations: filters that transform
// incoming values and rules that validate the filtered result. Each
// declaration targets one or more fields (or the wildcard "*"), names an
// action, and carries parameters and, for rules, an error message.
//
//	f := form.New(
//	    form.WithRules(
//	        form.NewRule([]string{"name", "email"}, form.Required, nil, "Field is required"),
//	        form.NewRule("email", "email", nil, "Incorrect email"),
//	        form.NewRule("age", "number", form.Params{"min": 18}, "Too young"),
//	    ),
//	    form.WithFilters(
//	        form.NewFilter("*", "trim", nil),
//	        form.NewFilter("email", "lowercase", nil),
//	    ),
//	    form.WithValidators(validator.Validators()),
//	    form.WithFilterSet(sanitizer.Filters()),
//	)
//
//	if err := f.SetData(input); err != nil {
//	    // misconfigured declarations, not bad input
//	}
//	ok, err := f.Validate()
//	if !ok {
//	    msgs := f.FirstErrors() // field -> first message
//	}
//
// # Pipeline
//
// SetData keeps only fields named by a rule or a filter, runs each field's
// filters in declaration order (field-specific filters first, then wildcard
// filters) and stores the result, replacing any previous data. Validate works
// on the stored data only. It first checks every field carrying the reserved
// "required" rule, then runs the remaining rules of each present, non-empty
// field. Empty values fail only "required".
//
// # Action lookup
//
// An action resolves, in order, to the function attached to the declaration
// itself, to a function registered on the form (WithValidator, WithFilter or a
// Definition that implements ValidatorProvider/FilterProvider), or to the injected
// collaborator set. An action that resolves nowhere aborts the call with an
// *UnresolvedActionError; it is never recorded as a field error.
//
// # Concurrency
//
// A Form is not safe for concurrent use. Registries are read-only after
// construction and can be shared between forms.
package form
