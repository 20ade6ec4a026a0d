package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinShape(t *testing.T) {
	c := Builtin()

	assert.Equal(t, 23, c.Len())

	counts := c.CountByCategory()
	assert.Equal(t, 5, counts[CategoryCreational])
	assert.Equal(t, 7, counts[CategoryStructural])
	assert.Equal(t, 11, counts[CategoryBehavioral])
}

func TestBuiltinNamesUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, e := range Builtin().AllEntries() {
		assert.False(t, seen[e.Name], "duplicate name %q", e.Name)
		seen[e.Name] = true
	}
}

func TestBuiltinEntriesValid(t *testing.T) {
	for _, e := range Builtin().AllEntries() {
		assert.True(t, e.Category.Valid(), "%s: category %q", e.Name, e.Category)
		assert.True(t, e.Frequency.Valid(), "%s: frequency %q", e.Name, e.Frequency)
		assert.NotEmpty(t, e.Purpose, "%s: purpose", e.Name)
	}
}

func TestFindByName(t *testing.T) {
	c := Builtin()

	e, ok := c.FindByName("Singleton Pattern")
	require.True(t, ok)
	assert.Equal(t, CategoryCreational, e.Category)

	// Exact match is case-sensitive
	_, ok = c.FindByName("singleton pattern")
	assert.False(t, ok)

	_, ok = c.FindByName("Nonexistent Pattern")
	assert.False(t, ok)
}

func TestListByCategoryStructural(t *testing.T) {
	got := Builtin().ListByCategory(CategoryStructural)

	want := []string{
		"Adapter Pattern",
		"Decorator Pattern",
		"Composite Pattern",
		"Proxy Pattern",
		"Facade Pattern",
		"Bridge Pattern",
		"Flyweight Pattern",
	}
	require.Len(t, got, len(want))
	for i, e := range got {
		assert.Equal(t, want[i], e.Name, "position %d", i)
	}
}

func TestListByCategoryUnknown(t *testing.T) {
	got := Builtin().ListByCategory(PatternCategory("Architectural"))
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func TestAllEntriesStable(t *testing.T) {
	c := Builtin()

	first := c.AllEntries()
	// Mutating the returned slice must not leak into the catalogue
	first[0].Name = "Mangled Pattern"

	second := c.AllEntries()
	assert.Equal(t, "Factory Pattern", second[0].Name)
	assert.Len(t, second, 23)
}

func TestSearch(t *testing.T) {
	c := Builtin()

	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{
			name:  "matches name case-insensitively",
			query: "singleton",
			want:  []string{"Singleton Pattern"},
		},
		{
			name:  "matches purpose text",
			query: "cloning",
			want:  []string{"Prototype Pattern"},
		},
		{
			name:  "matches example context",
			query: "payment gateway",
			want:  []string{"Adapter Pattern"},
		},
		{
			name:  "no match",
			query: "monads",
			want:  []string{},
		},
		{
			name:  "empty query matches nothing",
			query: "",
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Search(tt.query)
			names := make([]string, 0, len(got))
			for _, e := range got {
				names = append(names, e.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestNewValidation(t *testing.T) {
	valid := PatternEntry{
		Name:      "Singleton Pattern",
		Category:  CategoryCreational,
		Purpose:   "One instance.",
		Frequency: FrequencyVeryFrequent,
	}

	tests := []struct {
		name    string
		entries []PatternEntry
		wantErr string
	}{
		{
			name:    "empty catalogue",
			entries: nil,
			wantErr: "no entries",
		},
		{
			name: "duplicate name",
			entries: []PatternEntry{
				valid,
				valid,
			},
			wantErr: "duplicate pattern name",
		},
		{
			name: "empty name",
			entries: []PatternEntry{
				{Category: CategoryCreational, Frequency: FrequencyModerate},
			},
			wantErr: "empty name",
		},
		{
			name: "unknown category",
			entries: []PatternEntry{
				{Name: "X Pattern", Category: "Architectural", Frequency: FrequencyModerate},
			},
			wantErr: "unknown category",
		},
		{
			name: "unknown frequency",
			entries: []PatternEntry{
				{Name: "X Pattern", Category: CategoryCreational, Frequency: "Always"},
			},
			wantErr: "unknown frequency",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestCategoriesCanonicalOrder(t *testing.T) {
	assert.Equal(t, []PatternCategory{
		CategoryCreational,
		CategoryStructural,
		CategoryBehavioral,
	}, Categories())
}
