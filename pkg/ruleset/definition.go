package ruleset

import (
	"slices"

	"github.com/dmitrymomot/formkit/pkg/form"
)

// Definition is a named form loaded from a declaration file. It implements
// form.Definition and is immutable once loaded.
type Definition struct {
	name         string
	source       string
	defaultError string
	rules        []form.Rule
	filters      []form.Filter
}

// NewDefinition builds a Definition in code.
func NewDefinition(name string, rules []form.Rule, filters []form.Filter) *Definition {
	return &Definition{name: name, rules: rules, filters: filters}
}

// Name returns the form name.
func (d *Definition) Name() string { return d.name }

// Source returns the file the definition was loaded from, if any.
func (d *Definition) Source() string { return d.source }

// DefaultError returns the form-level message for rules without one, or "".
func (d *Definition) DefaultError() string { return d.defaultError }

// Rules returns a copy of the rule declarations.
func (d *Definition) Rules() []form.Rule { return slices.Clone(d.rules) }

// Filters returns a copy of the filter declarations.
func (d *Definition) Filters() []form.Filter { return slices.Clone(d.filters) }

// Options returns the form options this definition implies.
func (d *Definition) Options() []form.Option {
	opts := []form.Option{form.WithDefinition(d)}
	if d.defaultError != "" {
		opts = append(opts, form.WithDefaultError(d.defaultError))
	}
	return opts
}

var _ form.Definition = (*Definition)(nil)
