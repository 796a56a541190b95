// Package ports defines the boundary contracts between the domain layer and
// the application/persistence layers. Everything here is implemented outside
// the domain core; the interfaces only reference domain types.
package ports

import (
	"context"

	"github.com/google/uuid"

	"domainkit/pkg/domain"
)

//go:generate mockgen -source=ports.go -destination=mocks/mocks.go -package=mocks UnitOfWork,EventIdempotency

// Aggregate is the capability a repository needs from an aggregate root:
// a stable identifier and a drainable event queue. *domain.AggregateRoot and
// any type embedding it satisfy this.
type Aggregate[TID comparable] interface {
	ID() TID
	DequeueAll() []domain.Event
}

// Repository persists and retrieves aggregates of one kind, keyed by their
// identifier. Implementations live in the persistence layer; the domain core
// only consumes the contract.
type Repository[TID comparable, T Aggregate[TID]] interface {
	GetByID(ctx context.Context, id TID) (T, error)
	GetAll(ctx context.Context) ([]T, error)

	Add(ctx context.Context, aggregate T) error
	AddMany(ctx context.Context, aggregates []T) error

	Update(ctx context.Context, aggregate T) error
	UpdateMany(ctx context.Context, aggregates []T) error

	Remove(ctx context.Context, aggregate T) error
	RemoveMany(ctx context.Context, aggregates []T) error
	RemoveByID(ctx context.Context, id TID) error
}

// UnitOfWork coordinates a set of aggregate changes committed together.
type UnitOfWork interface {
	// SaveChanges flushes pending changes and returns the number of affected
	// records.
	SaveChanges(ctx context.Context) (int, error)

	BeginTransaction(ctx context.Context) error
	CommitTransaction(ctx context.Context) error
	RollbackTransaction(ctx context.Context) error

	// DequeuePendingEvents drains every tracked aggregate's event queue and
	// returns the concatenated events for dispatch.
	DequeuePendingEvents(ctx context.Context) ([]domain.Event, error)
}

// EventIdempotency records which events a given handler has already
// processed, backed by a durable record keyed by (eventID, handlerName).
type EventIdempotency interface {
	HasBeenProcessed(ctx context.Context, eventID uuid.UUID, handlerName string) (bool, error)
	MarkAsProcessed(ctx context.Context, eventID uuid.UUID, eventType, handlerName string) error
}

// ProcessOnce runs handle for the given event unless the (event, handlerName)
// pair has already been processed, and marks it processed on success.
// Reprocessing a handled event is a no-op. The handler's error propagates
// unmarked, so a retry will run it again.
func ProcessOnce(ctx context.Context, idem EventIdempotency, event domain.Event, handlerName string, handle func(ctx context.Context) error) error {
	done, err := idem.HasBeenProcessed(ctx, event.EventID(), handlerName)
	if err != nil {
		return err
	}
	if done {
		return nil
	}
	if err := handle(ctx); err != nil {
		return err
	}
	return idem.MarkAsProcessed(ctx, event.EventID(), event.EventType(), handlerName)
}
