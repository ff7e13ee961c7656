package form

import (
	"context"
	"log/slog"
	"strings"

	"github.com/dmitrymomot/formkit/pkg/fieldpath"
	"github.com/dmitrymomot/formkit/pkg/logger"
)

// Form filters and validates one record against its declarations.
type Form struct {
	definition Definition
	rules      []Rule
	filters    []Filter

	selfValidators Registry[ValidatorFunc]
	selfFilters    Registry[FilterFunc]
	validators     ValidatorSet
	filterSet      FilterSet

	defaultError string
	logger       *slog.Logger

	data   map[string]any
	errors *Errors
}

// New returns a Form with no data.
func New(opts ...Option) *Form {
	f := &Form{
		defaultError: DefaultError,
		data:         make(map[string]any),
		errors:       NewErrors(),
	}
	for _, opt := range opts {
		opt(f)
	}
	if f.logger == nil {
		f.logger = logger.Discard()
	}
	return f
}

// Rules returns the definition rules followed by the rules added with WithRules.
func (f *Form) Rules() []Rule {
	var rules []Rule
	if f.definition != nil {
		rules = append(rules, f.definition.Rules()...)
	}
	return append(rules, f.rules...)
}

// Filters returns the definition filters followed by the filters added with
// WithFilters.
func (f *Form) Filters() []Filter {
	var filters []Filter
	if f.definition != nil {
		filters = append(filters, f.definition.Filters()...)
	}
	return append(filters, f.filters...)
}

// Fields returns every concrete field named by a rule or a filter: rule
// fields first, then filter-only fields.
func (f *Form) Fields() []string {
	_, _, known := f.plan()
	return known
}

// plan normalizes the declarations and merges wildcard filters into every
// known field. Rules are returned without wildcard merging.
func (f *Form) plan() (*Index[Rule], *Index[Filter], []string) {
	rules := Normalize(f.Rules())
	filters := Normalize(f.Filters())
	known := knownFields(rules, filters)
	filters.MergeWildcard(known)
	return rules, filters, known
}

// SetData filters raw and stores the result, replacing the current data.
//
// Only fields named by a rule or a filter are kept; a field may be a dotted
// path into raw. The stored data is left untouched when a filter action
// cannot be resolved.
func (f *Form) SetData(raw map[string]any) error {
	_, filters, known := f.plan()
	view := recordValues(raw)

	data := make(map[string]any, len(known))
	for _, field := range known {
		value, ok := fieldpath.Get(raw, field)
		if !ok {
			continue
		}
		filtered, err := f.applyFilters(field, fieldpath.Clone(value), filters.Entries(field), view)
		if err != nil {
			f.logger.Debug("form: set data aborted", logger.Field(field), logger.Error(err))
			return err
		}
		data = fieldpath.Set(data, field, filtered)
	}

	if f.logger.Enabled(context.Background(), slog.LevelDebug) {
		if dropped := droppedKeys(raw, known); len(dropped) > 0 {
			f.logger.Debug("form: dropped unknown fields", logger.Fields(dropped))
		}
	}

	f.data = data
	return nil
}

func (f *Form) applyFilters(field string, value any, filters []Filter, view Values) (any, error) {
	for _, flt := range filters {
		fn, ok, err := f.resolveFilter(field, flt)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}
		value = fn(value, flt.Params, view)
	}
	return value, nil
}

// Data returns a copy of the stored record.
func (f *Form) Data() map[string]any {
	return fieldpath.Clone(f.data).(map[string]any)
}

// Value returns the stored value at a dotted path, or nil when absent.
func (f *Form) Value(field string) any {
	v, _ := fieldpath.Get(f.data, field)
	return v
}

// Lookup returns the stored value at a dotted path and whether it is present.
func (f *Form) Lookup(field string) (any, bool) {
	return fieldpath.Get(f.data, field)
}

// SetValue runs field's filters on value and stores the result. A field
// that no declaration names is stored as nil.
func (f *Form) SetValue(field string, value any) error {
	_, filters, known := f.plan()
	if !contains(known, field) {
		f.data = fieldpath.Set(f.data, field, nil)
		return nil
	}

	filtered, err := f.applyFilters(field, value, filters.Entries(field), f)
	if err != nil {
		return err
	}
	f.data = fieldpath.Set(f.data, field, filtered)
	return nil
}

// SetRawValue stores value at field without filtering.
func (f *Form) SetRawValue(field string, value any) {
	f.data = fieldpath.Set(f.data, field, value)
}

// Validate checks the stored data and replaces the recorded messages with
// those of the failing rules. It reports whether the data is valid. A
// non-nil error means an action could not be resolved; it is never caused
// by invalid data, and the previously recorded messages are kept.
func (f *Form) Validate() (bool, error) {
	rules, filters := Normalize(f.Rules()), Normalize(f.Filters())
	rules.MergeWildcard(knownFields(rules, filters))

	errs := NewErrors()

	for _, field := range rules.Fields() {
		for _, r := range rules.Entries(field) {
			if r.Action != Required || r.Validate != nil {
				continue
			}
			if v, _ := fieldpath.Get(f.data, field); IsEmpty(v) {
				errs.Add(field, f.message(r))
			}
		}
	}

	for _, field := range rules.Fields() {
		value, ok := fieldpath.Get(f.data, field)
		if !ok || IsEmpty(value) {
			continue
		}
		for _, r := range rules.Entries(field) {
			if r.Action == Required && r.Validate == nil {
				continue
			}
			fn, ok, err := f.resolveValidator(field, r)
			if err != nil {
				f.logger.Debug("form: validation aborted", logger.Field(field), logger.Error(err))
				return false, err
			}
			if !ok {
				continue
			}
			if !fn(value, r.Params, f) {
				errs.Add(field, f.message(r))
			}
		}
	}

	f.errors = errs
	return !errs.HasAny(), nil
}

func (f *Form) message(r Rule) string {
	if r.Message != "" {
		return r.Message
	}
	return f.defaultError
}

// AddError records message for field.
func (f *Form) AddError(field, message string) {
	f.errors.Add(field, message)
}

// ResetErrors removes every recorded message.
func (f *Form) ResetErrors() {
	f.errors.Reset()
}

// ResetFieldErrors removes the messages of field.
func (f *Form) ResetFieldErrors(field string) {
	f.errors.ResetField(field)
}

// HasErrors reports whether any field has a message.
func (f *Form) HasErrors() bool {
	return f.errors.HasAny()
}

// HasFieldErrors reports whether field has a message.
func (f *Form) HasFieldErrors(field string) bool {
	return f.errors.Has(field)
}

// Errors returns every field's messages.
func (f *Form) Errors() map[string][]string {
	return f.errors.All()
}

// FieldErrors returns the messages of field.
func (f *Form) FieldErrors(field string) []string {
	return f.errors.Get(field)
}

// FirstErrors returns the first message of every field that has one.
func (f *Form) FirstErrors() map[string]string {
	return f.errors.FirstErrors()
}

// FirstError returns the first message of field.
func (f *Form) FirstError(field string) (string, bool) {
	return f.errors.First(field)
}

// ErrorFields returns the fields with messages in first-error order.
func (f *Form) ErrorFields() []string {
	return f.errors.Fields()
}

// Err returns the recorded messages as a ValidationError, or nil.
func (f *Form) Err() error {
	return f.errors.Err()
}

// recordValues exposes a raw record to filters during SetData.
type recordValues map[string]any

func (r recordValues) Value(field string) any {
	v, _ := fieldpath.Get(r, field)
	return v
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// droppedKeys lists the top-level keys of raw that no known field reaches.
func droppedKeys(raw map[string]any, known []string) []string {
	var dropped []string
	for key := range raw {
		kept := false
		for _, field := range known {
			if field == key || strings.HasPrefix(field, key+fieldpath.Separator) || strings.HasPrefix(key, field+fieldpath.Separator) {
				kept = true
				break
			}
		}
		if !kept {
			dropped = append(dropped, key)
		}
	}
	return dropped
}
