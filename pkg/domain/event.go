package domain

import (
	"time"

	"github.com/google/uuid"
)

// Event is an immutable record of something that happened inside an
// aggregate. Concrete events embed BaseEvent and add their payload fields.
type Event interface {
	// EventID is unique per occurrence: two structurally identical events
	// are still distinct facts and carry distinct IDs.
	EventID() uuid.UUID

	// EventType is a stable discriminator for the concrete event kind,
	// assigned once at construction (e.g. "order.placed").
	EventType() string

	// OccurredOn is when the event happened. Defaults to construction time.
	OccurredOn() time.Time

	// Version signals the payload shape to consumers. Defaults to 1; bump it
	// when the payload changes incompatibly.
	Version() int
}

// BaseEvent carries the metadata every domain event shares. Embed it by value:
//
//	type OrderPlaced struct {
//	    domain.BaseEvent
//	    OrderID uuid.UUID
//	    Total   int64
//	}
//
//	func NewOrderPlaced(orderID uuid.UUID, total int64) OrderPlaced {
//	    return OrderPlaced{
//	        BaseEvent: domain.NewBaseEvent("order.placed"),
//	        OrderID:   orderID,
//	        Total:     total,
//	    }
//	}
type BaseEvent struct {
	eventID    uuid.UUID
	eventType  string
	occurredOn time.Time
	version    int
}

// NewBaseEvent constructs event metadata with a fresh event ID, the current
// time, and version 1. The event type is the concrete kind's stable name and
// is never settable afterwards.
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		eventID:    uuid.New(),
		eventType:  eventType,
		occurredOn: time.Now(),
		version:    1,
	}
}

// EventID returns the per-occurrence identifier.
func (e BaseEvent) EventID() uuid.UUID { return e.eventID }

// EventType returns the concrete kind discriminator.
func (e BaseEvent) EventType() string { return e.eventType }

// OccurredOn returns when the event happened.
func (e BaseEvent) OccurredOn() time.Time { return e.occurredOn }

// Version returns the payload schema version.
func (e BaseEvent) Version() int { return e.version }

// WithOccurredOn returns a copy with the timestamp replaced. Event ID, type,
// and version are untouched, so test fixtures can pin deterministic times
// without forging new occurrences.
func (e BaseEvent) WithOccurredOn(t time.Time) BaseEvent {
	e.occurredOn = t
	return e
}

// WithVersion returns a copy with the schema version replaced. Used by event
// kinds whose payload shape has evolved past version 1.
func (e BaseEvent) WithVersion(v int) BaseEvent {
	e.version = v
	return e
}
