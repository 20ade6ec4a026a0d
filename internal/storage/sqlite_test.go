package storage

import (
	"context"
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gofcatalog/gofcat/internal/catalog"
)

func openTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "catalog.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestExportAndReadBack(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	c := catalog.Builtin()

	require.NoError(t, s.ExportCatalog(ctx, c))

	got, err := s.Entries(ctx)
	require.NoError(t, err)
	require.Len(t, got, 23)

	// Canonical order survives the round trip
	assert.Equal(t, c.AllEntries(), got)
}

func TestExportIsIdempotent(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	c := catalog.Builtin()

	require.NoError(t, s.ExportCatalog(ctx, c))
	require.NoError(t, s.ExportCatalog(ctx, c))

	got, err := s.Entries(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 23)
}

func TestFindByName(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.ExportCatalog(ctx, catalog.Builtin()))

	e, found, err := s.FindByName(ctx, "Singleton Pattern")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, catalog.CategoryCreational, e.Category)

	_, found, err = s.FindByName(ctx, "Nonexistent Pattern")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestSearchPurpose(t *testing.T) {
	ctx := context.Background()
	s := openTestStore(t)
	require.NoError(t, s.ExportCatalog(ctx, catalog.Builtin()))

	got, err := s.SearchPurpose(ctx, "cloning")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Prototype Pattern", got[0].Name)

	none, err := s.SearchPurpose(ctx, "blockchain")
	require.NoError(t, err)
	assert.Empty(t, none)
}
