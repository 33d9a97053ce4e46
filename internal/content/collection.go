// Package content holds the in-memory content collections and the reaction
// ledger. Collections are the only "database" in the system: ordered slices
// of value-type items, mutated in place and reset to their seed values on
// restart.
package content

import (
	"strconv"
	"sync"
	"time"
)

// Entity is implemented by every content item: it exposes its id, can be
// stamped with a fresh one, and merges a typed patch into itself.
type Entity[T, P any] interface {
	EntityID() string
	WithEntityID(id string) T
	ApplyPatch(p P) T
}

// Placement controls where Add inserts: user-generated collections grow at
// the front (newest first), admin-curated lists grow at the back.
type Placement int

const (
	Append Placement = iota
	Prepend
)

// Collection is one ordered, independently-keyed list of items. Ids are
// unique within the collection only.
type Collection[T Entity[T, P], P any] struct {
	mu        sync.RWMutex
	placement Placement
	items     []T
	lastID    int64
}

func NewCollection[T Entity[T, P], P any](placement Placement, seed []T) *Collection[T, P] {
	return &Collection[T, P]{
		placement: placement,
		items:     append([]T(nil), seed...),
	}
}

// List returns the items in insertion order. Callers sort downstream when a
// page needs a date or ranking order.
func (c *Collection[T, P]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]T(nil), c.items...)
}

func (c *Collection[T, P]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, item := range c.items {
		if item.EntityID() == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

func (c *Collection[T, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

// Add stamps the item with a fresh timestamp-derived id and inserts it
// according to the collection's placement. The stored item is returned.
func (c *Collection[T, P]) Add(item T) T {
	c.mu.Lock()
	defer c.mu.Unlock()
	item = item.WithEntityID(c.nextID())
	if c.placement == Prepend {
		c.items = append([]T{item}, c.items...)
	} else {
		c.items = append(c.items, item)
	}
	return item
}

// Update merges the patch into the item with the given id, keeping its
// position. Returns false when the id is not present.
func (c *Collection[T, P]) Update(id string, patch P) bool {
	return c.Transform(id, func(item T) T { return item.ApplyPatch(patch) })
}

// Transform replaces the item with fn(item), keeping its position. Returns
// false when the id is not present.
func (c *Collection[T, P]) Transform(id string, fn func(T) T) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items[i] = fn(item)
			return true
		}
	}
	return false
}

// Remove filters the id out of the collection. Absent ids are a no-op.
// Dependent comments are not cascaded; see the registry tests.
func (c *Collection[T, P]) Remove(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i, item := range c.items {
		if item.EntityID() == id {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return true
		}
	}
	return false
}

// Ids are millisecond timestamps with a monotonic tiebreak so two adds in
// the same millisecond stay distinct.
func (c *Collection[T, P]) nextID() string {
	id := time.Now().UnixMilli()
	if id <= c.lastID {
		id = c.lastID + 1
	}
	c.lastID = id
	return strconv.FormatInt(id, 10)
}
