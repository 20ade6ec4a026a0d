// Package catalog holds the read-only Gang-of-Four pattern catalogue and
// its query surface. The catalogue is populated once (builtin data or a
// validated YAML file) and never mutated, so a *Catalog may be shared
// across goroutines without locking.
package catalog

import (
	"strings"

	apperrors "github.com/gofcatalog/gofcat/internal/errors"
)

// Catalog is an ordered, immutable collection of pattern entries.
type Catalog struct {
	entries []PatternEntry
	byName  map[string]int
}

// New builds a catalogue from entries, enforcing the invariants: at least
// one entry, unique names, and only canonical categories and frequencies.
// Entry order is preserved as given.
func New(entries []PatternEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, apperrors.ValidationError("catalogue has no entries")
	}

	byName := make(map[string]int, len(entries))
	for i, e := range entries {
		if e.Name == "" {
			return nil, apperrors.ValidationErrorf("entry %d has an empty name", i)
		}
		if _, dup := byName[e.Name]; dup {
			return nil, apperrors.ValidationErrorf("duplicate pattern name %q", e.Name)
		}
		if !e.Category.Valid() {
			return nil, apperrors.ValidationErrorf("pattern %q has unknown category %q", e.Name, e.Category)
		}
		if !e.Frequency.Valid() {
			return nil, apperrors.ValidationErrorf("pattern %q has unknown frequency %q", e.Name, e.Frequency)
		}
		byName[e.Name] = i
	}

	// Copy so later mutation of the caller's slice cannot leak in
	owned := make([]PatternEntry, len(entries))
	copy(owned, entries)

	return &Catalog{entries: owned, byName: byName}, nil
}

// Len returns the number of entries in the catalogue
func (c *Catalog) Len() int {
	return len(c.entries)
}

// AllEntries returns the full catalogue in canonical order. The returned
// slice is a copy; callers may reorder or truncate it freely.
func (c *Catalog) AllEntries() []PatternEntry {
	out := make([]PatternEntry, len(c.entries))
	copy(out, c.entries)
	return out
}

// FindByName looks up a pattern by its exact, case-sensitive name.
// A missing name is not an error: ok is false and the entry is zero.
func (c *Catalog) FindByName(name string) (PatternEntry, bool) {
	i, ok := c.byName[name]
	if !ok {
		return PatternEntry{}, false
	}
	return c.entries[i], true
}

// ListByCategory returns every entry in the given category, preserving
// canonical order. An unknown or empty category yields an empty slice.
func (c *Catalog) ListByCategory(category PatternCategory) []PatternEntry {
	out := []PatternEntry{}
	for _, e := range c.entries {
		if e.Category == category {
			out = append(out, e)
		}
	}
	return out
}

// Search returns entries whose name, purpose, or example context contains
// query, compared case-insensitively. An empty query matches nothing.
func (c *Catalog) Search(query string) []PatternEntry {
	if query == "" {
		return []PatternEntry{}
	}
	q := strings.ToLower(query)

	out := []PatternEntry{}
	for _, e := range c.entries {
		if strings.Contains(strings.ToLower(e.Name), q) ||
			strings.Contains(strings.ToLower(e.Purpose), q) ||
			strings.Contains(strings.ToLower(e.ExampleContext), q) {
			out = append(out, e)
		}
	}
	return out
}

// CountByCategory returns the number of entries per category
func (c *Catalog) CountByCategory() map[PatternCategory]int {
	counts := make(map[PatternCategory]int, 3)
	for _, e := range c.entries {
		counts[e.Category]++
	}
	return counts
}
