package notes

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	s, err := Open(filepath.Join(t.TempDir(), "notes.db"), logger)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestAddAndListForPattern(t *testing.T) {
	s := openTestStore(t)

	first, err := s.Add("Singleton Pattern", "only one of these, ever")
	require.NoError(t, err)
	assert.NotEmpty(t, first.ID)
	assert.False(t, first.CreatedAt.IsZero())

	second, err := s.Add("Singleton Pattern", "careful with tests")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	_, err = s.Add("Adapter Pattern", "wraps legacy code")
	require.NoError(t, err)

	got, err := s.ListForPattern("Singleton Pattern")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "only one of these, ever", got[0].Text)
	assert.Equal(t, "careful with tests", got[1].Text)
}

func TestListForPatternEmpty(t *testing.T) {
	s := openTestStore(t)

	got, err := s.ListForPattern("Visitor Pattern")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestListAll(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Add("Singleton Pattern", "a")
	require.NoError(t, err)
	_, err = s.Add("Adapter Pattern", "b")
	require.NoError(t, err)

	got, err := s.ListAll()
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestAddRejectsEmptyText(t *testing.T) {
	s := openTestStore(t)

	_, err := s.Add("Singleton Pattern", "")
	require.Error(t, err)
}

func TestDelete(t *testing.T) {
	s := openTestStore(t)

	n, err := s.Add("Singleton Pattern", "to be removed")
	require.NoError(t, err)

	require.NoError(t, s.Delete(n.ID))

	got, err := s.ListForPattern("Singleton Pattern")
	require.NoError(t, err)
	assert.Empty(t, got)

	// Deleting again names a note that no longer exists
	err = s.Delete(n.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no note with id")
}

func TestNotesSurviveReopen(t *testing.T) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	path := filepath.Join(t.TempDir(), "notes.db")

	s, err := Open(path, logger)
	require.NoError(t, err)
	_, err = s.Add("Memento Pattern", "state snapshots")
	require.NoError(t, err)
	require.NoError(t, s.Close())

	reopened, err := Open(path, logger)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.ListForPattern("Memento Pattern")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "state snapshots", got[0].Text)
}
