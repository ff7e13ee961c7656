package form_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/formkit/pkg/form"
)

func TestParams(t *testing.T) {
	t.Parallel()

	p := form.Params{
		"name":   "x",
		"min":    3,
		"ratio":  "0.5",
		"not":    "yes",
		"values": []any{"a", "b"},
		"csv":    "a, b,,c",
	}

	assert.True(t, p.Has("name"))
	assert.False(t, p.Has("missing"))

	v, ok := p.Get("min")
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	assert.Equal(t, "x", p.String("name", "def"))
	assert.Equal(t, "3", p.String("min", "def"))
	assert.Equal(t, "def", p.String("values", "def"))
	assert.Equal(t, "def", p.String("missing", "def"))

	assert.True(t, p.Bool("not", false))
	assert.True(t, p.Bool("missing", true))

	f, ok := p.Float("ratio")
	assert.True(t, ok)
	assert.InDelta(t, 0.5, f, 1e-9)
	_, ok = p.Float("name")
	assert.False(t, ok)

	i, ok := p.Int("min")
	assert.True(t, ok)
	assert.Equal(t, 3, i)
	_, ok = p.Int("ratio")
	assert.False(t, ok)

	assert.Equal(t, []string{"a", "b"}, p.Strings("values"))
	assert.Equal(t, []string{"a", "b", "c"}, p.Strings("csv"))
	assert.Nil(t, p.Strings("missing"))

	var empty form.Params
	assert.Equal(t, "d", empty.String("k", "d"))
}
