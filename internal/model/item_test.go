package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextID(t *testing.T) {
	var doc Document
	assert.Equal(t, 1, doc.NextID(), "empty document starts at 1")

	doc.Append("first")
	doc.Append("second")
	assert.Equal(t, 3, doc.NextID())

	// ids are max+1, not count+1
	doc = Document{Todos: []Record{{Title: "x", ID: 7}}}
	assert.Equal(t, 8, doc.NextID())
}

func TestAppendAssignsSequentialIDs(t *testing.T) {
	var doc Document
	titles := []string{"Take a Scotch course", "Travel the world", ""}
	for i, title := range titles {
		rec := doc.Append(title)
		assert.Equal(t, i+1, rec.ID)
		assert.Equal(t, title, rec.Title)
		assert.False(t, rec.Complete)
	}
	require.Len(t, doc.Todos, 3)
	for i, r := range doc.Todos {
		assert.Equal(t, titles[i], r.Title, "insertion order preserved")
	}
}

func TestMarkComplete(t *testing.T) {
	var doc Document
	doc.Append("a")
	doc.Append("b")

	require.True(t, doc.MarkComplete(2))
	assert.False(t, doc.Todos[0].Complete, "other records untouched")
	assert.True(t, doc.Todos[1].Complete)

	// idempotent
	require.True(t, doc.MarkComplete(2))
	assert.True(t, doc.Todos[1].Complete)

	assert.False(t, doc.MarkComplete(99))
	assert.False(t, doc.MarkComplete(0))
}

func TestStats(t *testing.T) {
	var doc Document
	done, pending := doc.Stats()
	assert.Zero(t, done)
	assert.Zero(t, pending)

	doc.Append("a")
	doc.Append("b")
	doc.Append("c")
	doc.MarkComplete(1)

	done, pending = doc.Stats()
	assert.Equal(t, 1, done)
	assert.Equal(t, 2, pending)
}
