package form_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestValidationError(t *testing.T) {
	t.Parallel()

	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		ve := form.NewValidationError()
		assert.True(t, ve.IsEmpty())
		assert.Equal(t, "validation failed", ve.Error())
	})

	t.Run("message lists first error per field sorted", func(t *testing.T) {
		t.Parallel()
		ve := form.NewValidationError()
		ve.Add("password", "too short")
		ve.Add("email", "required")
		ve.Add("email", "invalid")

		assert.False(t, ve.IsEmpty())
		assert.True(t, ve.Has("email"))
		assert.False(t, ve.Has("name"))
		assert.Equal(t, "validation failed: email: required, password: too short", ve.Error())
	})

	t.Run("wrapped", func(t *testing.T) {
		t.Parallel()
		ve := form.NewValidationError()
		ve.Add("a", "x")
		err := fmt.Errorf("signup: %w", ve)

		assert.True(t, errors.Is(err, form.ErrValidationFailed))
		assert.True(t, form.IsValidationError(err))
		got, ok := form.ExtractValidationError(err)
		require.True(t, ok)
		assert.Equal(t, "x", got.Get("a"))
	})

	t.Run("other errors", func(t *testing.T) {
		t.Parallel()
		assert.False(t, form.IsValidationError(errors.New("boom")))
		assert.False(t, form.IsValidationError(nil))
		_, ok := form.ExtractValidationError(&form.UnresolvedActionError{})
		assert.False(t, ok)
	})
}

func TestUnresolvedActionError(t *testing.T) {
	t.Parallel()

	err := &form.UnresolvedActionError{Kind: form.KindValidator, Field: "email", Action: "mx"}
	assert.Equal(t, `form: validator "mx" for field "email" is not registered`, err.Error())
	assert.ErrorIs(t, err, form.ErrUnresolvedAction)
	assert.True(t, form.IsUnresolvedAction(fmt.Errorf("wrap: %w", err)))
	assert.False(t, form.IsUnresolvedAction(errors.New("x")))
}
