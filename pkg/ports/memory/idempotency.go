package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"domainkit/pkg/ports"
)

var _ ports.EventIdempotency = (*IdempotencyStore)(nil)

type idempotencyKey struct {
	eventID     uuid.UUID
	handlerName string
}

// ProcessedRecord captures what was stored when an event was marked
// processed.
type ProcessedRecord struct {
	EventID     uuid.UUID
	EventType   string
	HandlerName string
	ProcessedAt time.Time
}

// IdempotencyStore is a map-backed ports.EventIdempotency keyed by
// (eventID, handlerName).
type IdempotencyStore struct {
	mu        sync.RWMutex
	processed map[idempotencyKey]ProcessedRecord
}

// NewIdempotencyStore constructs an empty idempotency store.
func NewIdempotencyStore() *IdempotencyStore {
	return &IdempotencyStore{processed: make(map[idempotencyKey]ProcessedRecord)}
}

// HasBeenProcessed reports whether the handler already handled the event.
func (s *IdempotencyStore) HasBeenProcessed(_ context.Context, eventID uuid.UUID, handlerName string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.processed[idempotencyKey{eventID: eventID, handlerName: handlerName}]
	return ok, nil
}

// MarkAsProcessed records the (event, handler) pair. Marking twice keeps the
// first record, so the call is itself idempotent.
func (s *IdempotencyStore) MarkAsProcessed(_ context.Context, eventID uuid.UUID, eventType, handlerName string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := idempotencyKey{eventID: eventID, handlerName: handlerName}
	if _, ok := s.processed[key]; ok {
		return nil
	}
	s.processed[key] = ProcessedRecord{
		EventID:     eventID,
		EventType:   eventType,
		HandlerName: handlerName,
		ProcessedAt: time.Now(),
	}
	return nil
}

// Record returns the stored record for a pair, if present. Test helper.
func (s *IdempotencyStore) Record(eventID uuid.UUID, handlerName string) (ProcessedRecord, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.processed[idempotencyKey{eventID: eventID, handlerName: handlerName}]
	return rec, ok
}
