// Package validator provides the named validator set used by forms.
//
// Every validator has the form.ValidatorFunc signature and accepts loosely
// typed record values: strings from HTML forms, float64 or json.Number from
// JSON bodies, and native Go scalars set programmatically.
//
//	f := form.New(
//	    form.WithRules(
//	        form.NewRule("email", "email", nil, "Incorrect email"),
//	        form.NewRule("age", "number", form.Params{"min": 18, "max": 120}, "Invalid age"),
//	        form.NewRule("password_repeat", "compare", form.Params{"field": "password"}, "Passwords differ"),
//	    ),
//	    form.WithValidators(validator.Validators()),
//	)
//
// # Architecture
//
// Each source file groups a family of validators (string_rules.go,
// numeric_rules.go, format_rules.go, comparable_rules.go). Validators returns
// a fresh registry on every call, so callers may extend or override entries
// without affecting other forms:
//
//	set := validator.Validators().Merge(form.Registry[form.ValidatorFunc]{
//	    "slug": mySlugValidator,
//	})
//
// The package holds no mutable state apart from a process-wide cache of
// compiled patterns and is safe for concurrent use.
//
// Empty values never reach these validators through a form: the engine only
// checks "required" for them. When called directly, format validators reject
// empty input.
package validator
