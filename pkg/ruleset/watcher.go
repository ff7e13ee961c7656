package ruleset

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/dmitrymomot/formkit/pkg/logger"
)

// DefaultDebounce is the quiet period after the last file event before a
// reload starts.
const DefaultDebounce = 200 * time.Millisecond

// Watcher reloads a directory catalog when declaration files change.
type Watcher struct {
	dir      string
	catalog  *Catalog
	debounce time.Duration
	logger   *slog.Logger
	onReload func(*Catalog, error)
	fsw      *fsnotify.Watcher
}

// WatcherOption configures a Watcher.
type WatcherOption func(*Watcher)

// WithDebounce sets the quiet period. Non-positive values are ignored.
func WithDebounce(d time.Duration) WatcherOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithLogger supplies a logger. If nil, logs are discarded.
func WithLogger(l *slog.Logger) WatcherOption {
	return func(w *Watcher) {
		if l != nil {
			w.logger = l
		}
	}
}

// WithReloadHook registers a callback invoked after every reload attempt
// with the live catalog and the reload error, if any.
func WithReloadHook(fn func(*Catalog, error)) WatcherOption {
	return func(w *Watcher) { w.onReload = fn }
}

// NewWatcher watches dir and keeps catalog in sync with it.
func NewWatcher(dir string, catalog *Catalog, opts ...WatcherOption) (*Watcher, error) {
	if catalog == nil {
		return nil, errors.New("ruleset: nil catalog")
	}
	w := &Watcher{
		dir:      dir,
		catalog:  catalog,
		debounce: DefaultDebounce,
		logger:   logger.Discard(),
	}
	for _, opt := range opts {
		opt(w)
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("ruleset: create watcher: %w", err)
	}
	if err := fsw.Add(dir); err != nil {
		_ = fsw.Close()
		return nil, fmt.Errorf("ruleset: watch %s: %w", dir, err)
	}
	w.fsw = fsw
	return w, nil
}

// Run processes file events until ctx is done, then releases the watcher.
func (w *Watcher) Run(ctx context.Context) error {
	defer w.fsw.Close()

	w.logger.Info("watching form declarations", logger.Path(w.dir), logger.Duration(w.debounce))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.fsw.Events:
			if !ok {
				return errors.New("ruleset: watcher events channel closed")
			}
			if !relevant(event) {
				continue
			}
			w.logger.Debug("declaration file changed", logger.Path(event.Name), slog.String("op", event.Op.String()))
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			fire = timer.C

		case <-fire:
			fire = nil
			_ = w.Reload()

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return errors.New("ruleset: watcher errors channel closed")
			}
			w.logger.Error("declaration watcher error", logger.Error(err))
		}
	}
}

// Reload reads the directory and swaps the catalog contents. On failure the
// catalog keeps its previous definitions.
func (w *Watcher) Reload() error {
	next, err := LoadDir(w.dir)
	if err != nil {
		w.logger.Error("form declarations reload failed, keeping previous set", logger.Path(w.dir), logger.Error(err))
	} else {
		w.catalog.Replace(next)
		w.logger.Info("form declarations reloaded", logger.Path(w.dir), logger.Count(next.Len()))
	}
	if w.onReload != nil {
		w.onReload(w.catalog, err)
	}
	return err
}

func relevant(event fsnotify.Event) bool {
	if event.Op == fsnotify.Chmod {
		return false
	}
	return isDeclarationFile(filepath.Base(event.Name))
}
