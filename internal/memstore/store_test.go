package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testRecord struct {
	ID   string
	Name string
}

func newTestCollection() *Collection[testRecord] {
	return NewCollection(
		func(r testRecord) string { return r.ID },
		func(r testRecord, id string) testRecord { r.ID = id; return r },
	)
}

func TestAddAssignsIDWhenMissing(t *testing.T) {
	c := newTestCollection()

	stored, ok := c.Add(testRecord{Name: "no id"})
	require.True(t, ok)
	assert.NotEmpty(t, stored.ID)

	matches := c.Filter(func(r testRecord) bool { return r.ID == stored.ID })
	require.Len(t, matches, 1)
	assert.Equal(t, "no id", matches[0].Name)
}

func TestAddKeepsProvidedID(t *testing.T) {
	c := newTestCollection()

	stored, ok := c.Add(testRecord{ID: "m-1", Name: "fixed"})
	require.True(t, ok)
	assert.Equal(t, "m-1", stored.ID)

	_, ok = c.Add(testRecord{ID: "m-1", Name: "duplicate"})
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())
}

func TestUpdateUnknownIDIsSilentNoOp(t *testing.T) {
	c := newTestCollection()
	c.Add(testRecord{ID: "m-1", Name: "one"})
	before := c.All()

	ok := c.Update("missing", func(r testRecord) testRecord {
		r.Name = "changed"
		return r
	})
	assert.False(t, ok)
	assert.Equal(t, before, c.All())
	assert.Equal(t, 1, c.Len())
}

func TestRemoveUnknownIDIsSilentNoOp(t *testing.T) {
	c := newTestCollection()
	c.Add(testRecord{ID: "m-1", Name: "one"})

	assert.False(t, c.Remove("missing"))
	assert.Equal(t, 1, c.Len())

	assert.True(t, c.Remove("m-1"))
	assert.Equal(t, 0, c.Len())
}

func TestAllPreservesInsertionOrder(t *testing.T) {
	c := newTestCollection()
	c.Add(testRecord{ID: "a"})
	c.Add(testRecord{ID: "b"})
	c.Add(testRecord{ID: "c"})
	c.Remove("b")
	c.Add(testRecord{ID: "d"})

	var ids []string
	for _, r := range c.All() {
		ids = append(ids, r.ID)
	}
	assert.Equal(t, []string{"a", "c", "d"}, ids)
}

func TestFilterMatchesPredicate(t *testing.T) {
	c := newTestCollection()
	c.Add(testRecord{ID: "a", Name: "keep"})
	c.Add(testRecord{ID: "b", Name: "drop"})
	c.Add(testRecord{ID: "c", Name: "keep"})

	keep := c.Filter(func(r testRecord) bool { return r.Name == "keep" })
	require.Len(t, keep, 2)
	assert.Equal(t, "a", keep[0].ID)
	assert.Equal(t, "c", keep[1].ID)
}
