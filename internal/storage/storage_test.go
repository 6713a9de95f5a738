package storage

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"notekeep/internal/models"
)

func kvImplementations(t *testing.T) map[string]KV {
	t.Helper()
	fileKV, err := NewFileKV(t.TempDir())
	require.NoError(t, err)
	return map[string]KV{
		"memory": NewMemoryKV(),
		"file":   fileKV,
	}
}

func TestKV_SetGetDelete(t *testing.T) {
	for name, kv := range kvImplementations(t) {
		t.Run(name, func(t *testing.T) {
			_, err := kv.Get("absent")
			assert.ErrorIs(t, err, ErrNotFound)

			require.NoError(t, kv.Set("k", []byte(`{"a":1}`)))
			value, err := kv.Get("k")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":1}`), value)

			require.NoError(t, kv.Set("k", []byte(`{"a":2}`)))
			value, err = kv.Get("k")
			require.NoError(t, err)
			assert.Equal(t, []byte(`{"a":2}`), value, "set replaces wholesale")

			require.NoError(t, kv.Delete("k"))
			_, err = kv.Get("k")
			assert.ErrorIs(t, err, ErrNotFound)

			assert.NoError(t, kv.Delete("k"), "deleting an absent key is fine")
			assert.NoError(t, kv.Close())
		})
	}
}

func TestFileKV_SurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	first, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(NotesKey, []byte(`[]`)))
	require.NoError(t, first.Close())

	second, err := NewFileKV(dir)
	require.NoError(t, err)
	value, err := second.Get(NotesKey)
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), value)
}

func TestFileKV_LeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)
	require.NoError(t, kv.Set("k", []byte("v")))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "k.json", entries[0].Name())
}

func TestNoteStore_RoundTrip(t *testing.T) {
	store := NewNoteStore(NewMemoryKV(), zap.NewNop())

	notes := []models.Note{
		{
			ID:        "n1",
			Title:     "First",
			Tags:      []string{"a", "b"},
			CreatedAt: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
			UpdatedAt: time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
		},
	}
	require.NoError(t, store.Save(notes))

	loaded := store.Load()
	require.Len(t, loaded, 1)
	assert.Equal(t, "n1", loaded[0].ID)
	assert.Equal(t, []string{"a", "b"}, loaded[0].Tags)
	assert.True(t, loaded[0].UpdatedAt.Equal(notes[0].UpdatedAt))
}

func TestNoteStore_EmptyWhenAbsent(t *testing.T) {
	store := NewNoteStore(NewMemoryKV(), zap.NewNop())
	assert.Empty(t, store.Load())
}

func TestNoteStore_EmptyWhenCorrupt(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(NotesKey, []byte("{not json")))

	store := NewNoteStore(kv, zap.NewNop())
	assert.Empty(t, store.Load())
}

func TestSessionStore_Lifecycle(t *testing.T) {
	store := NewSessionStore(NewMemoryKV(), zap.NewNop())

	assert.Nil(t, store.CurrentUser())

	user := &models.User{ID: "u1", Email: "a@b.c", Name: "a"}
	require.NoError(t, store.SetCurrentUser(user))
	assert.Equal(t, user, store.CurrentUser())

	require.NoError(t, store.Clear())
	assert.Nil(t, store.CurrentUser())
}

func TestSessionStore_CorruptRecord(t *testing.T) {
	kv := NewMemoryKV()
	require.NoError(t, kv.Set(UserKey, []byte("???")))

	store := NewSessionStore(kv, zap.NewNop())
	assert.Nil(t, store.CurrentUser())
}

func TestFileKV_KeysMapToFiles(t *testing.T) {
	dir := t.TempDir()
	kv, err := NewFileKV(dir)
	require.NoError(t, err)

	require.NoError(t, kv.Set(NotesKey, []byte("[]")))

	_, err = os.Stat(filepath.Join(dir, NotesKey+".json"))
	assert.NoError(t, err)
}
