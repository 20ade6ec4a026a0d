package rpc

import (
	"context"
	"fmt"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

// FindPatternTool implements the find_pattern tool
type FindPatternTool struct {
	catalog *catalog.Catalog
}

// NewFindPatternTool creates a find_pattern tool over a catalogue
func NewFindPatternTool(c *catalog.Catalog) *FindPatternTool {
	return &FindPatternTool{catalog: c}
}

// Execute looks up a pattern by exact name. An unknown name is reported
// as found=false in the result, not as a tool error.
func (t *FindPatternTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	name, ok := args["name"].(string)
	if !ok || name == "" {
		return nil, fmt.Errorf("name is required")
	}

	entry, found := t.catalog.FindByName(name)
	if !found {
		return map[string]interface{}{"found": false}, nil
	}

	return map[string]interface{}{
		"found":   true,
		"pattern": entry,
	}, nil
}

// GetSchema returns the tool's parameter schema
func (t *FindPatternTool) GetSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"name": map[string]interface{}{
				"type":        "string",
				"description": "Exact pattern name, e.g. 'Singleton Pattern'",
			},
		},
		"required": []string{"name"},
	}
}

// ListPatternsTool implements the list_patterns tool
type ListPatternsTool struct {
	catalog *catalog.Catalog
}

// NewListPatternsTool creates a list_patterns tool over a catalogue
func NewListPatternsTool(c *catalog.Catalog) *ListPatternsTool {
	return &ListPatternsTool{catalog: c}
}

// Execute lists the catalogue, optionally filtered by category
func (t *ListPatternsTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	var entries []catalog.PatternEntry

	if raw, ok := args["category"].(string); ok && raw != "" {
		category := catalog.PatternCategory(raw)
		if !category.Valid() {
			return nil, fmt.Errorf("unknown category %q (want Creational, Structural, or Behavioral)", raw)
		}
		entries = t.catalog.ListByCategory(category)
	} else {
		entries = t.catalog.AllEntries()
	}

	return map[string]interface{}{
		"count":    len(entries),
		"patterns": entries,
	}, nil
}

// GetSchema returns the tool's parameter schema
func (t *ListPatternsTool) GetSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"category": map[string]interface{}{
				"type":        "string",
				"description": "Optional category filter: Creational, Structural, or Behavioral",
			},
		},
	}
}

// SearchPatternsTool implements the search_patterns tool
type SearchPatternsTool struct {
	catalog *catalog.Catalog
}

// NewSearchPatternsTool creates a search_patterns tool over a catalogue
func NewSearchPatternsTool(c *catalog.Catalog) *SearchPatternsTool {
	return &SearchPatternsTool{catalog: c}
}

// Execute searches names, purposes, and example contexts
func (t *SearchPatternsTool) Execute(ctx context.Context, args map[string]interface{}) (interface{}, error) {
	query, ok := args["query"].(string)
	if !ok || query == "" {
		return nil, fmt.Errorf("query is required")
	}

	entries := t.catalog.Search(query)
	return map[string]interface{}{
		"count":    len(entries),
		"patterns": entries,
	}, nil
}

// GetSchema returns the tool's parameter schema
func (t *SearchPatternsTool) GetSchema() map[string]interface{} {
	return map[string]interface{}{
		"type": "object",
		"properties": map[string]interface{}{
			"query": map[string]interface{}{
				"type":        "string",
				"description": "Case-insensitive substring matched against name, purpose, and example context",
			},
		},
		"required": []string{"query"},
	}
}

// RegisterCatalogTools registers every catalogue tool on a handler
func RegisterCatalogTools(h *Handler, c *catalog.Catalog) {
	h.RegisterTool("find_pattern", NewFindPatternTool(c))
	h.RegisterTool("list_patterns", NewListPatternsTool(c))
	h.RegisterTool("search_patterns", NewSearchPatternsTool(c))
}
