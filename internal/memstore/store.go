// Package memstore provides the in-memory entity store backing the default
// deployment. Each Collection holds one record type keyed by id and supports
// insert, update-by-id, delete-by-id and full-scan filtering. There are no
// indices and no persistence.
package memstore

import (
	"sync"

	"github.com/google/uuid"
)

// Collection is a concurrent-safe in-memory collection of records keyed by
// id. Iteration order is insertion order, which keeps list reads stable
// across calls on an unchanged collection.
type Collection[T any] struct {
	mu    sync.RWMutex
	items map[string]T
	order []string

	idOf  func(T) string
	setID func(T, string) T
}

// NewCollection creates an empty collection. idOf extracts a record's id;
// setID returns a copy of the record with the id assigned, used when Add
// receives a record without one.
func NewCollection[T any](idOf func(T) string, setID func(T, string) T) *Collection[T] {
	return &Collection[T]{
		items: make(map[string]T),
		idOf:  idOf,
		setID: setID,
	}
}

// Add inserts a record, assigning a generated id if the record has none.
// It returns the stored record and false if the id was already present
// (the existing record is left untouched).
func (c *Collection[T]) Add(item T) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	id := c.idOf(item)
	if id == "" {
		id = uuid.NewString()
		item = c.setID(item, id)
	}
	if _, exists := c.items[id]; exists {
		return c.items[id], false
	}
	c.items[id] = item
	c.order = append(c.order, id)
	return item, true
}

// Get returns the record with the given id.
func (c *Collection[T]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	return item, ok
}

// Replace stores item under id. Replacing an unknown id is a silent no-op:
// the collection is unchanged and false is returned, matching the map-based
// conditional replace the product shipped with.
func (c *Collection[T]) Replace(id string, item T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	c.items[id] = item
	return true
}

// Update applies fn to the record with the given id and stores the result.
// Updating an unknown id is a silent no-op returning false.
func (c *Collection[T]) Update(id string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	item, ok := c.items[id]
	if !ok {
		return false
	}
	c.items[id] = fn(item)
	return true
}

// Remove deletes the record with the given id. Removing an unknown id is a
// silent no-op returning false.
func (c *Collection[T]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, oid := range c.order {
		if oid == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}

// All returns every record in insertion order.
func (c *Collection[T]) All() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.items[id])
	}
	return out
}

// Filter returns the records matching pred, in insertion order.
func (c *Collection[T]) Filter(pred func(T) bool) []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []T
	for _, id := range c.order {
		if pred(c.items[id]) {
			out = append(out, c.items[id])
		}
	}
	return out
}

// Len returns the number of records.
func (c *Collection[T]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
