package ruleset

import (
	"fmt"
	"slices"
	"sync"
)

// Catalog is a concurrency-safe set of definitions keyed by form name.
type Catalog struct {
	mu    sync.RWMutex
	forms map[string]*Definition
}

// NewCatalog indexes defs by name.
func NewCatalog(defs ...*Definition) (*Catalog, error) {
	forms := make(map[string]*Definition, len(defs))
	for _, d := range defs {
		if prev, ok := forms[d.name]; ok {
			return nil, fmt.Errorf("%w: %q in %s and %s", ErrDuplicateForm, d.name, sourceName(prev), sourceName(d))
		}
		forms[d.name] = d
	}
	return &Catalog{forms: forms}, nil
}

func sourceName(d *Definition) string {
	if d.source == "" {
		return "<inline>"
	}
	return d.source
}

// Get returns the definition named name.
func (c *Catalog) Get(name string) (*Definition, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	d, ok := c.forms[name]
	return d, ok
}

// Find is Get returning ErrFormNotFound for unknown names.
func (c *Catalog) Find(name string) (*Definition, error) {
	if d, ok := c.Get(name); ok {
		return d, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFormNotFound, name)
}

// Names returns the form names in sorted order.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	names := make([]string, 0, len(c.forms))
	for name := range c.forms {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of definitions.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.forms)
}

// Replace swaps in the definitions of other. Readers see either the old or
// the new set, never a mix.
func (c *Catalog) Replace(other *Catalog) {
	other.mu.RLock()
	forms := make(map[string]*Definition, len(other.forms))
	for name, d := range other.forms {
		forms[name] = d
	}
	other.mu.RUnlock()

	c.mu.Lock()
	c.forms = forms
	c.mu.Unlock()
}
