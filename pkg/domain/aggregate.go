package domain

// AggregateRoot is an Entity that is also a consistency boundary and the sole
// source of its domain events. Events accumulate in a private,
// insertion-ordered queue and are drained in one shot by the persistence
// layer after a successful save.
//
// The queue never deduplicates: raising the same event kind twice, even with
// identical payloads, retains both occurrences in raise order.
type AggregateRoot[TID comparable] struct {
	Entity[TID]

	pending []Event
}

// NewAggregateRoot constructs an aggregate base with a clean event queue.
func NewAggregateRoot[TID comparable](kind Kind, id TID) AggregateRoot[TID] {
	return AggregateRoot[TID]{Entity: NewEntity(kind, id)}
}

// Raise appends an event to the pending queue. Call it only from the
// aggregate's own behavior methods, so every event originates from a
// domain-meaningful state transition; external code should never raise
// events on an aggregate it does not implement.
func (a *AggregateRoot[TID]) Raise(event Event) {
	a.pending = append(a.pending, event)
}

// DequeueAll returns the pending events in raise order and clears the queue
// in the same operation. Draining a clean aggregate is legal and returns an
// empty slice. The returned slice is a snapshot the caller owns; subsequent
// raises never mutate it.
func (a *AggregateRoot[TID]) DequeueAll() []Event {
	events := a.pending
	a.pending = nil
	return events
}

// HasPendingEvents reports whether any events have been raised since the last
// drain.
func (a *AggregateRoot[TID]) HasPendingEvents() bool {
	return len(a.pending) > 0
}
