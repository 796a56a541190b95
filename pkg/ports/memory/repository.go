// Package memory provides in-memory implementations of the ports contracts.
// They carry no durability and exist so consumers can unit-test application
// services without a database.
package memory

import (
	"context"
	"slices"
	"sync"

	"domainkit/pkg/platform/sentinel"
	"domainkit/pkg/ports"
)

// Repository is a map-backed ports.Repository. Iteration order for GetAll is
// insertion order, so tests can assert deterministically.
type Repository[TID comparable, T ports.Aggregate[TID]] struct {
	mu    sync.RWMutex
	items map[TID]T
	order []TID
}

// NewRepository constructs an empty in-memory repository.
func NewRepository[TID comparable, T ports.Aggregate[TID]]() *Repository[TID, T] {
	return &Repository[TID, T]{items: make(map[TID]T)}
}

// GetByID returns the aggregate with the given ID, or sentinel.ErrNotFound.
func (r *Repository[TID, T]) GetByID(_ context.Context, id TID) (T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	if !ok {
		var zero T
		return zero, sentinel.ErrNotFound
	}
	return item, nil
}

// GetAll returns every stored aggregate in insertion order.
func (r *Repository[TID, T]) GetAll(_ context.Context) ([]T, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	all := make([]T, 0, len(r.order))
	for _, id := range r.order {
		all = append(all, r.items[id])
	}
	return all, nil
}

// Add stores a new aggregate. Returns sentinel.ErrConflict if the ID exists.
func (r *Repository[TID, T]) Add(_ context.Context, aggregate T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.add(aggregate)
}

// AddMany stores several aggregates atomically: either all are added or, on
// the first conflict, none are.
func (r *Repository[TID, T]) AddMany(_ context.Context, aggregates []T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range aggregates {
		if _, exists := r.items[a.ID()]; exists {
			return sentinel.ErrConflict
		}
	}
	for _, a := range aggregates {
		if err := r.add(a); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository[TID, T]) add(aggregate T) error {
	id := aggregate.ID()
	if _, exists := r.items[id]; exists {
		return sentinel.ErrConflict
	}
	r.items[id] = aggregate
	r.order = append(r.order, id)
	return nil
}

// Update replaces a stored aggregate. Returns sentinel.ErrNotFound if the ID
// is unknown.
func (r *Repository[TID, T]) Update(_ context.Context, aggregate T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.update(aggregate)
}

// UpdateMany replaces several stored aggregates; fails on the first unknown
// ID without applying any replacement.
func (r *Repository[TID, T]) UpdateMany(_ context.Context, aggregates []T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range aggregates {
		if _, exists := r.items[a.ID()]; !exists {
			return sentinel.ErrNotFound
		}
	}
	for _, a := range aggregates {
		if err := r.update(a); err != nil {
			return err
		}
	}
	return nil
}

func (r *Repository[TID, T]) update(aggregate T) error {
	id := aggregate.ID()
	if _, exists := r.items[id]; !exists {
		return sentinel.ErrNotFound
	}
	r.items[id] = aggregate
	return nil
}

// Remove deletes an aggregate. Returns sentinel.ErrNotFound if absent.
func (r *Repository[TID, T]) Remove(_ context.Context, aggregate T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeByID(aggregate.ID())
}

// RemoveMany deletes several aggregates; fails on the first unknown ID
// without deleting anything.
func (r *Repository[TID, T]) RemoveMany(_ context.Context, aggregates []T) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, a := range aggregates {
		if _, exists := r.items[a.ID()]; !exists {
			return sentinel.ErrNotFound
		}
	}
	for _, a := range aggregates {
		if err := r.removeByID(a.ID()); err != nil {
			return err
		}
	}
	return nil
}

// RemoveByID deletes the aggregate with the given ID. Returns
// sentinel.ErrNotFound if absent.
func (r *Repository[TID, T]) RemoveByID(_ context.Context, id TID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.removeByID(id)
}

func (r *Repository[TID, T]) removeByID(id TID) error {
	if _, exists := r.items[id]; !exists {
		return sentinel.ErrNotFound
	}
	delete(r.items, id)
	if i := slices.Index(r.order, id); i >= 0 {
		r.order = slices.Delete(r.order, i, i+1)
	}
	return nil
}

// Len reports the number of stored aggregates.
func (r *Repository[TID, T]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// Clear removes everything. Test helper.
func (r *Repository[TID, T]) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = make(map[TID]T)
	r.order = nil
}
