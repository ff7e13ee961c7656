package ruleset_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/formkit/pkg/ruleset"
)

func TestWatcherReload(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "forms.yaml", "forms: {a: {rules: [[x, required]]}}")

	cat, err := ruleset.LoadDir(dir)
	require.NoError(t, err)

	var hookErr error
	calls := 0
	w, err := ruleset.NewWatcher(dir, cat, ruleset.WithReloadHook(func(_ *ruleset.Catalog, err error) {
		calls++
		hookErr = err
	}))
	require.NoError(t, err)

	writeFile(t, dir, "forms.yaml", "forms: {b: {rules: [[x, required]]}}")
	require.NoError(t, w.Reload())
	assert.Equal(t, []string{"b"}, cat.Names())
	assert.Equal(t, 1, calls)
	assert.NoError(t, hookErr)

	writeFile(t, dir, "forms.yaml", "forms: {b: {rules: [[]]}}")
	require.Error(t, w.Reload())
	assert.Equal(t, []string{"b"}, cat.Names(), "failed reload keeps previous set")
	assert.Equal(t, 2, calls)
	assert.ErrorIs(t, hookErr, ruleset.ErrInvalidTuple)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.NoError(t, w.Run(ctx))
}

func TestWatcherRun(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFile(t, dir, "forms.yaml", "forms: {a: {}}")
	cat, err := ruleset.LoadDir(dir)
	require.NoError(t, err)

	reloaded := make(chan error, 4)
	w, err := ruleset.NewWatcher(dir, cat,
		ruleset.WithDebounce(20*time.Millisecond),
		ruleset.WithLogger(nil),
		ruleset.WithReloadHook(func(_ *ruleset.Catalog, err error) { reloaded <- err }),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	// give Run a moment to enter its loop; events queued before that are still delivered
	time.Sleep(20 * time.Millisecond)
	writeFile(t, dir, "more.json", `{"forms": {"b": {}}}`)

	select {
	case err := <-reloaded:
		require.NoError(t, err)
	case <-time.After(3 * time.Second):
		require.Fail(t, "no reload after file change")
	}
	assert.Equal(t, []string{"a", "b"}, cat.Names())

	cancel()
	require.NoError(t, <-done)
}

func TestNewWatcherErrors(t *testing.T) {
	t.Parallel()

	_, err := ruleset.NewWatcher(t.TempDir(), nil)
	assert.Error(t, err)

	cat, err := ruleset.NewCatalog()
	require.NoError(t, err)
	_, err = ruleset.NewWatcher(t.TempDir()+"/missing", cat)
	assert.Error(t, err)
}
