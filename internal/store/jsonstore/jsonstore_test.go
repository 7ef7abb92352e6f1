package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ogzhncrt/dailydo/internal/model"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "todos.json")
	return New(path), path
}

func TestLoadMissingFileIsEmptyStore(t *testing.T) {
	s, path := newTestStore(t)
	doc, err := s.Load()
	require.NoError(t, err)
	assert.Empty(t, doc.Todos)

	_, err = os.Stat(path)
	assert.True(t, os.IsNotExist(err), "load must not create the file")
}

func TestSaveLoadRoundTrip(t *testing.T) {
	s, _ := newTestStore(t)

	var doc model.Document
	doc.Append("Take a Scotch course")
	doc.Append("Travel the world")
	doc.MarkComplete(2)
	require.NoError(t, s.Save(doc))

	got, err := s.Load()
	require.NoError(t, err)
	require.Len(t, got.Todos, 2)
	assert.Equal(t, model.Record{Title: "Take a Scotch course", ID: 1}, got.Todos[0])
	assert.Equal(t, model.Record{Title: "Travel the world", Complete: true, ID: 2}, got.Todos[1])
}

func TestSaveWritesTodosKeyedDocument(t *testing.T) {
	s, path := newTestStore(t)

	var doc model.Document
	doc.Append("a")
	require.NoError(t, s.Save(doc))

	b, err := os.ReadFile(path)
	require.NoError(t, err)

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(b, &raw))
	require.Contains(t, raw, "todos")

	var todos []map[string]any
	require.NoError(t, json.Unmarshal(raw["todos"], &todos))
	require.Len(t, todos, 1)
	assert.Equal(t, "a", todos[0]["title"])
	assert.Equal(t, false, todos[0]["complete"])
	assert.Equal(t, float64(1), todos[0]["id"])
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, s.Save(model.Document{}))

	entries, err := os.ReadDir(filepath.Dir(path))
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "todos.json", entries[0].Name())
}

func TestSaveOverwritesExisting(t *testing.T) {
	s, _ := newTestStore(t)

	var doc model.Document
	doc.Append("a")
	require.NoError(t, s.Save(doc))
	doc.Append("b")
	require.NoError(t, s.Save(doc))

	got, err := s.Load()
	require.NoError(t, err)
	assert.Len(t, got.Todos, 2)
}

func TestLoadMalformedDocument(t *testing.T) {
	s, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := s.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "json unmarshal")
}

func TestDefaultPath(t *testing.T) {
	t.Setenv("DAILYDO_FILE", "")
	p, err := DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "todos.json", filepath.Base(p))

	t.Setenv("DAILYDO_FILE", "/tmp/elsewhere.json")
	p, err = DefaultPath()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/elsewhere.json", p)
}
