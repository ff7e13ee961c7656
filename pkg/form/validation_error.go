package form

import (
	"errors"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// ValidationError carries field validation messages up the call stack.
// It's based on url.Values to leverage built-in string slice handling.
type ValidationError url.Values

// NewValidationError creates an empty validation error.
func NewValidationError() ValidationError {
	return make(ValidationError)
}

// Error summarizes the first message of every field, fields sorted by name.
func (e ValidationError) Error() string {
	if len(e) == 0 {
		return "validation failed"
	}

	fields := make([]string, 0, len(e))
	for field := range e {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, field := range fields {
		if messages := e[field]; len(messages) > 0 {
			parts = append(parts, fmt.Sprintf("%s: %s", field, messages[0]))
		}
	}

	return fmt.Sprintf("validation failed: %s", strings.Join(parts, ", "))
}

// Is makes errors.Is(err, ErrValidationFailed) match.
func (e ValidationError) Is(target error) bool {
	return target == ErrValidationFailed
}

// Add adds a message for a field.
func (e ValidationError) Add(field, message string) {
	url.Values(e).Add(field, message)
}

// Get returns the first message for a field.
func (e ValidationError) Get(field string) string {
	return url.Values(e).Get(field)
}

// Has checks if a field has any messages.
func (e ValidationError) Has(field string) bool {
	return len(e[field]) > 0
}

// IsEmpty returns true if there are no messages.
func (e ValidationError) IsEmpty() bool {
	return len(e) == 0
}

// ExtractValidationError returns the ValidationError wrapped in err, if any.
func ExtractValidationError(err error) (ValidationError, bool) {
	var ve ValidationError
	if errors.As(err, &ve) {
		return ve, true
	}
	return nil, false
}

// IsValidationError reports whether err carries field validation messages.
func IsValidationError(err error) bool {
	_, ok := ExtractValidationError(err)
	return ok
}
