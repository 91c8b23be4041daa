package store

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Record is satisfied by every entity a Table can hold: it knows its own id,
// accepts a freshly assigned one, merges a partial update over itself, and
// produces a deep copy.
type Record[T, P any] interface {
	EntityID() string
	SetEntityID(id string)
	Merge(patch P)
	Clone() T
}

// Table is a keyed, insertion-ordered collection of one entity kind.
// All operations are safe for concurrent use. Records handed out are deep
// copies, so a caller can never mutate table state through a returned value.
type Table[T Record[T, P], P any] struct {
	mu   sync.RWMutex
	rows []T
}

func NewTable[T Record[T, P], P any]() *Table[T, P] {
	return &Table[T, P]{}
}

// All returns every record in insertion order.
func (t *Table[T, P]) All() []T {
	return t.FindMany(nil)
}

// FindMany returns the records matching the predicate in insertion order.
// A nil predicate matches everything. The result is never nil.
func (t *Table[T, P]) FindMany(match func(T) bool) []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := []T{}
	for _, row := range t.rows {
		if match == nil || match(row) {
			out = append(out, row.Clone())
		}
	}
	return out
}

// FindOne returns the first record matching the predicate in insertion
// order, or false if nothing matches.
func (t *Table[T, P]) FindOne(match func(T) bool) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	for _, row := range t.rows {
		if match(row) {
			return row.Clone(), true
		}
	}
	var zero T
	return zero, false
}

// Get looks a record up by id. Returns ErrNotFound if the id is unknown.
func (t *Table[T, P]) Get(id string) (T, error) {
	rec, ok := t.FindOne(func(row T) bool { return row.EntityID() == id })
	if !ok {
		var zero T
		return zero, errors.Wrapf(ErrNotFound, "no record with id %q", id)
	}
	return rec, nil
}

// Create stores the record and returns it. An empty id is replaced with a
// fresh uuid; a caller-supplied id (used for seeding) is kept as-is.
func (t *Table[T, P]) Create(rec T) T {
	t.mu.Lock()
	defer t.mu.Unlock()

	if rec.EntityID() == "" {
		rec.SetEntityID(uuid.NewString())
	}
	stored := rec.Clone()
	t.rows = append(t.rows, stored)
	return stored.Clone()
}

// Change merges the patch over the record with the given id and returns the
// updated record. Fields the patch leaves nil are preserved. Returns
// ErrNotFound if the id is unknown.
func (t *Table[T, P]) Change(id string, patch P) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, row := range t.rows {
		if row.EntityID() == id {
			row.Merge(patch)
			return row.Clone(), nil
		}
	}
	var zero T
	return zero, errors.Wrapf(ErrNotFound, "no record with id %q", id)
}

// Delete removes the record with the given id and returns it. Returns
// ErrNotFound if the id is unknown.
func (t *Table[T, P]) Delete(id string) (T, error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for i, row := range t.rows {
		if row.EntityID() == id {
			t.rows = append(t.rows[:i], t.rows[i+1:]...)
			return row, nil
		}
	}
	var zero T
	return zero, errors.Wrapf(ErrNotFound, "no record with id %q", id)
}

// Len reports the number of stored records.
func (t *Table[T, P]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
