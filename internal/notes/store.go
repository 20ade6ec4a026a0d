// Package notes persists personal study notes per pattern in a local
// bolt database. Notes are the only mutable state in the tool; the
// catalogue itself stays read-only.
package notes

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	apperrors "github.com/gofcatalog/gofcat/internal/errors"
)

var bucketNotes = []byte("notes")

// Note is one saved annotation on a pattern
type Note struct {
	ID        string    `json:"id"`
	Pattern   string    `json:"pattern"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// Store wraps the bolt database holding notes
type Store struct {
	db     *bolt.DB
	logger *logrus.Logger
}

// Open opens (creating if needed) the notes database at path
func Open(path string, logger *logrus.Logger) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apperrors.FileSystemErrorf(err, "create notes directory %s", dir)
	}

	db, err := bolt.Open(path, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, apperrors.StorageErrorf(err, "open notes database %s", path)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketNotes)
		return err
	})
	if err != nil {
		db.Close()
		return nil, apperrors.StorageError(err, "initialize notes bucket")
	}

	return &Store{db: db, logger: logger}, nil
}

// Close closes the underlying database
func (s *Store) Close() error {
	return s.db.Close()
}

// Add saves a new note against a pattern name and returns it.
// Callers are expected to have checked the name against the catalogue.
func (s *Store) Add(pattern, text string) (Note, error) {
	if text == "" {
		return Note{}, apperrors.ValidationError("note text is empty")
	}

	note := Note{
		ID:        uuid.NewString(),
		Pattern:   pattern,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		data, err := json.Marshal(note)
		if err != nil {
			return err
		}
		return tx.Bucket(bucketNotes).Put(noteKey(pattern, note.ID), data)
	})
	if err != nil {
		return Note{}, apperrors.StorageErrorf(err, "save note for %s", pattern)
	}

	s.logger.WithFields(logrus.Fields{"pattern": pattern, "note_id": note.ID}).Debug("Note saved")
	return note, nil
}

// ListForPattern returns all notes for one pattern, oldest first
func (s *Store) ListForPattern(pattern string) ([]Note, error) {
	var out []Note
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketNotes).Cursor()
		prefix := noteKey(pattern, "")
		for k, v := c.Seek(prefix); k != nil && bytes.HasPrefix(k, prefix); k, v = c.Next() {
			var n Note
			if err := json.Unmarshal(v, &n); err != nil {
				return err
			}
			out = append(out, n)
		}
		return nil
	})
	if err != nil {
		return nil, apperrors.StorageErrorf(err, "list notes for %s", pattern)
	}

	sortNotes(out)
	return out, nil
}

// ListAll returns every saved note, oldest first
func (s *Store) ListAll() ([]Note, error) {
	var out []Note
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketNotes).ForEach(func(k, v []byte) error {
			var n Note
			if err := json.Unmarshal(v, &n); err != nil {
				return err
			}
			out = append(out, n)
			return nil
		})
	})
	if err != nil {
		return nil, apperrors.StorageError(err, "list notes")
	}

	sortNotes(out)
	return out, nil
}

// Delete removes a note by ID. Deleting an unknown ID is an error since
// the caller named a specific note.
func (s *Store) Delete(id string) error {
	found := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketNotes)
		c := b.Cursor()
		for k, v := c.First(); k != nil; k, v = c.Next() {
			var n Note
			if err := json.Unmarshal(v, &n); err != nil {
				return err
			}
			if n.ID == id {
				found = true
				return b.Delete(k)
			}
		}
		return nil
	})
	if err != nil {
		return apperrors.StorageErrorf(err, "delete note %s", id)
	}
	if !found {
		return apperrors.ValidationErrorf("no note with id %s", id)
	}
	return nil
}

func noteKey(pattern, id string) []byte {
	return []byte(pattern + "\x00" + id)
}

func sortNotes(ns []Note) {
	sort.Slice(ns, func(i, j int) bool {
		if ns[i].CreatedAt.Equal(ns[j].CreatedAt) {
			return ns[i].ID < ns[j].ID
		}
		return ns[i].CreatedAt.Before(ns[j].CreatedAt)
	})
}
