// Package storage exports the catalogue into a SQLite database so other
// tooling can query it relationally.
package storage

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/sirupsen/logrus"

	"github.com/gofcatalog/gofcat/internal/catalog"
	apperrors "github.com/gofcatalog/gofcat/internal/errors"
)

// SQLiteStore holds an open handle on a catalogue export database
type SQLiteStore struct {
	db     *sqlx.DB
	logger *logrus.Logger
}

// NewSQLiteStore opens (creating if needed) a SQLite database at path
func NewSQLiteStore(path string, logger *logrus.Logger) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apperrors.FileSystemErrorf(err, "create database directory %s", dir)
	}

	db, err := sqlx.Connect("sqlite3", path)
	if err != nil {
		return nil, apperrors.StorageErrorf(err, "connect to sqlite %s", path)
	}

	// WAL mode so readers of the export never block a re-export
	db.Exec("PRAGMA foreign_keys = ON")
	db.Exec("PRAGMA journal_mode = WAL")

	store := &SQLiteStore{
		db:     db,
		logger: logger,
	}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, apperrors.StorageError(err, "init schema")
	}

	return store, nil
}

func (s *SQLiteStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS patterns (
		name TEXT PRIMARY KEY,
		category TEXT NOT NULL,
		purpose TEXT NOT NULL,
		frequency TEXT NOT NULL,
		example_context TEXT,
		position INTEGER NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_patterns_category ON patterns(category);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database handle
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ExportCatalog replaces the patterns table with the given catalogue.
// The export is atomic: readers see either the old rows or the new ones.
func (s *SQLiteStore) ExportCatalog(ctx context.Context, c *catalog.Catalog) error {
	entries := c.AllEntries()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return apperrors.StorageError(err, "begin export transaction")
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM patterns"); err != nil {
		return apperrors.StorageError(err, "clear patterns table")
	}

	insert := `INSERT INTO patterns (name, category, purpose, frequency, example_context, position)
		VALUES (?, ?, ?, ?, ?, ?)`
	for i, e := range entries {
		if _, err := tx.ExecContext(ctx, insert,
			e.Name, string(e.Category), e.Purpose, string(e.Frequency), e.ExampleContext, i); err != nil {
			return apperrors.StorageErrorf(err, "insert pattern %s", e.Name)
		}
	}

	if err := tx.Commit(); err != nil {
		return apperrors.StorageError(err, "commit export")
	}

	s.logger.WithField("patterns", len(entries)).Info("Catalogue exported")
	return nil
}

// Entries reads the exported catalogue back in canonical order
func (s *SQLiteStore) Entries(ctx context.Context) ([]catalog.PatternEntry, error) {
	var rows []patternRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT name, category, purpose, frequency, example_context, position FROM patterns ORDER BY position")
	if err != nil {
		return nil, apperrors.StorageError(err, "query patterns")
	}
	return toEntries(rows), nil
}

// FindByName looks up one exported pattern by exact name
func (s *SQLiteStore) FindByName(ctx context.Context, name string) (catalog.PatternEntry, bool, error) {
	var row patternRow
	err := s.db.GetContext(ctx, &row,
		"SELECT name, category, purpose, frequency, example_context, position FROM patterns WHERE name = ?", name)
	if err == sql.ErrNoRows {
		return catalog.PatternEntry{}, false, nil
	}
	if err != nil {
		return catalog.PatternEntry{}, false, apperrors.StorageErrorf(err, "query pattern %s", name)
	}
	return row.entry(), true, nil
}

// SearchPurpose runs a LIKE search over purpose text in the export
func (s *SQLiteStore) SearchPurpose(ctx context.Context, query string) ([]catalog.PatternEntry, error) {
	var rows []patternRow
	err := s.db.SelectContext(ctx, &rows,
		"SELECT name, category, purpose, frequency, example_context, position FROM patterns WHERE purpose LIKE ? ORDER BY position",
		"%"+query+"%")
	if err != nil {
		return nil, apperrors.StorageErrorf(err, "search patterns for %q", query)
	}
	return toEntries(rows), nil
}

// patternRow mirrors the patterns table; position is not part of the
// domain entry, only of the export ordering
type patternRow struct {
	Name           string `db:"name"`
	Category       string `db:"category"`
	Purpose        string `db:"purpose"`
	Frequency      string `db:"frequency"`
	ExampleContext string `db:"example_context"`
	Position       int    `db:"position"`
}

func (r patternRow) entry() catalog.PatternEntry {
	return catalog.PatternEntry{
		Name:           r.Name,
		Category:       catalog.PatternCategory(r.Category),
		Purpose:        r.Purpose,
		Frequency:      catalog.Frequency(r.Frequency),
		ExampleContext: r.ExampleContext,
	}
}

func toEntries(rows []patternRow) []catalog.PatternEntry {
	out := make([]catalog.PatternEntry, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.entry())
	}
	return out
}
