package form

import (
	"errors"
	"fmt"
)

// Action kinds reported by UnresolvedActionError.
const (
	KindValidator = "validator"
	KindFilter    = "filter"
)

var (
	// ErrUnresolvedAction is matched by every UnresolvedActionError.
	ErrUnresolvedAction = errors.New("form: unresolved action")

	// ErrValidationFailed is wrapped by ValidationError.
	ErrValidationFailed = errors.New("form: validation failed")
)

// UnresolvedActionError reports a declaration whose action name is not
// registered in any lookup scope. It signals a misconfigured form, not bad
// input.
type UnresolvedActionError struct {
	Kind   string
	Field  string
	Action string
}

func (e *UnresolvedActionError) Error() string {
	return fmt.Sprintf("form: %s %q for field %q is not registered", e.Kind, e.Action, e.Field)
}

// Unwrap makes errors.Is(err, ErrUnresolvedAction) match.
func (e *UnresolvedActionError) Unwrap() error {
	return ErrUnresolvedAction
}

// IsUnresolvedAction reports whether err is, or wraps, an unresolved action.
func IsUnresolvedAction(err error) bool {
	return errors.Is(err, ErrUnresolvedAction)
}
