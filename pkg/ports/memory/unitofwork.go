package memory

import (
	"context"
	"sync"

	"domainkit/pkg/domain"
	"domainkit/pkg/platform/sentinel"
	"domainkit/pkg/ports"
)

var _ ports.UnitOfWork = (*UnitOfWork)(nil)

// EventSource is the slice of an aggregate the unit of work needs: a
// drainable event queue. *domain.AggregateRoot and anything embedding it
// qualifies.
type EventSource interface {
	DequeueAll() []domain.Event
}

// UnitOfWork is a bookkeeping ports.UnitOfWork for tests. It tracks
// registered aggregates, counts changes flushed by SaveChanges, and enforces
// the begin/commit/rollback protocol with sentinel.ErrInvalidState.
type UnitOfWork struct {
	mu      sync.Mutex
	tracked []EventSource
	changes int
	inTx    bool
}

// NewUnitOfWork constructs an empty unit of work.
func NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{}
}

// Track registers an aggregate so its events are collected by
// DequeuePendingEvents and its change is counted by the next SaveChanges.
// Registration order is preserved.
func (u *UnitOfWork) Track(source EventSource) {
	u.mu.Lock()
	defer u.mu.Unlock()
	u.tracked = append(u.tracked, source)
	u.changes++
}

// SaveChanges returns the number of changes registered since the last save
// and resets the counter. Tracked aggregates stay tracked so their events
// remain collectable after the save, mirroring the persist-then-dispatch
// ordering.
func (u *UnitOfWork) SaveChanges(_ context.Context) (int, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	n := u.changes
	u.changes = 0
	return n, nil
}

// BeginTransaction opens the logical transaction. Nested transactions are
// rejected.
func (u *UnitOfWork) BeginTransaction(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inTx {
		return sentinel.ErrInvalidState
	}
	u.inTx = true
	return nil
}

// CommitTransaction closes the open transaction.
func (u *UnitOfWork) CommitTransaction(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.inTx {
		return sentinel.ErrInvalidState
	}
	u.inTx = false
	return nil
}

// RollbackTransaction abandons the open transaction and forgets tracked
// aggregates and uncounted changes.
func (u *UnitOfWork) RollbackTransaction(_ context.Context) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if !u.inTx {
		return sentinel.ErrInvalidState
	}
	u.inTx = false
	u.tracked = nil
	u.changes = 0
	return nil
}

// DequeuePendingEvents drains every tracked aggregate in registration order
// and returns the concatenated events. Aggregates drained here come back
// clean, so a second call returns nothing new.
func (u *UnitOfWork) DequeuePendingEvents(_ context.Context) ([]domain.Event, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	var events []domain.Event
	for _, source := range u.tracked {
		events = append(events, source.DequeueAll()...)
	}
	return events, nil
}
