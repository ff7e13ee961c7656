package convert_test

import (
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/internal/convert"
)

func TestFloat(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    any
		expected float64
		ok       bool
	}{
		{name: "int", input: 3, expected: 3, ok: true},
		{name: "float", input: 100.1, expected: 100.1, ok: true},
		{name: "uint8", input: uint8(7), expected: 7, ok: true},
		{name: "json number", input: json.Number("2.5"), expected: 2.5, ok: true},
		{name: "numeric string", input: " 100.1 ", expected: 100.1, ok: true},
		{name: "zero string", input: "0", expected: 0, ok: true},
		{name: "empty string", input: "", ok: false},
		{name: "letters", input: "a", ok: false},
		{name: "nan string", input: "NaN", ok: false},
		{name: "bool", input: true, ok: false},
		{name: "nil", input: nil, ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			f, ok := convert.Float(tt.input)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.expected, f)
		})
	}
}

func TestInt(t *testing.T) {
	t.Parallel()

	i, ok := convert.Int("42")
	assert.True(t, ok)
	assert.Equal(t, int64(42), i)

	i, ok = convert.Int(3.0)
	assert.True(t, ok)
	assert.Equal(t, int64(3), i)

	_, ok = convert.Int(3.5)
	assert.False(t, ok)

	_, ok = convert.Int("x")
	assert.False(t, ok)
}

func TestString(t *testing.T) {
	t.Parallel()

	s, ok := convert.String(12)
	assert.True(t, ok)
	assert.Equal(t, "12", s)

	s, ok = convert.String(1.5)
	assert.True(t, ok)
	assert.Equal(t, "1.5", s)

	s, ok = convert.String(json.Number("7"))
	assert.True(t, ok)
	assert.Equal(t, "7", s)

	_, ok = convert.String(map[string]any{})
	assert.False(t, ok)
}

func TestBool(t *testing.T) {
	t.Parallel()

	for _, in := range []any{true, "yes", "ON", "1", 1, 2.5} {
		b, ok := convert.Bool(in)
		assert.True(t, ok, "%v", in)
		assert.True(t, b, "%v", in)
	}
	for _, in := range []any{false, "no", "off", "0", 0} {
		b, ok := convert.Bool(in)
		assert.True(t, ok, "%v", in)
		assert.False(t, b, "%v", in)
	}
	_, ok := convert.Bool("maybe")
	assert.False(t, ok)
}

func TestStrings(t *testing.T) {
	t.Parallel()

	l, ok := convert.Strings([]any{"a", 1, true})
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "1", "true"}, l)

	l, ok = convert.Strings("a, b,,c")
	assert.True(t, ok)
	assert.Equal(t, []string{"a", "b", "c"}, l)

	_, ok = convert.Strings([]any{map[string]any{}})
	assert.False(t, ok)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	assert.True(t, convert.Equal("qwe", "qwe"))
	assert.False(t, convert.Equal("qwe", "qw"))
	assert.True(t, convert.Equal(1, "1"))
	assert.True(t, convert.Equal(1.0, json.Number("1")))
	assert.True(t, convert.Equal(nil, nil))
	assert.False(t, convert.Equal(nil, ""))
}
