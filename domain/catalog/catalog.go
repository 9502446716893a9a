package catalog

import (
	"sort"

	apperrors "gogarvis-backend/pkg/errors"
)

// Catalog is a named, read-only collection of reference entries. Catalogs are
// populated once at startup and never mutated, so they need no locking.
type Catalog[T Entry] struct {
	name    string
	entries []T
}

// NewCatalog creates a catalog over the given entries. Source order is
// preserved and becomes the listing order.
func NewCatalog[T Entry](name string, entries []T) *Catalog[T] {
	return &Catalog[T]{name: name, entries: entries}
}

// Name returns the catalog name
func (c *Catalog[T]) Name() string { return c.name }

// All returns every entry in source order
func (c *Catalog[T]) All() []T { return c.entries }

// Len returns the number of entries
func (c *Catalog[T]) Len() int { return len(c.entries) }

// GetByID returns the entry with the given identifier
func (c *Catalog[T]) GetByID(id string) (T, error) {
	for _, e := range c.entries {
		if e.EntryID() == id {
			return e, nil
		}
	}
	var zero T
	return zero, apperrors.NewNotFoundError(c.name)
}

// Categories returns the distinct categories present, sorted for
// deterministic output
func (c *Catalog[T]) Categories() []string {
	seen := make(map[string]struct{})
	var categories []string
	for _, e := range c.entries {
		cat := e.EntryCategory()
		if _, ok := seen[cat]; !ok {
			seen[cat] = struct{}{}
			categories = append(categories, cat)
		}
	}
	sort.Strings(categories)
	return categories
}
