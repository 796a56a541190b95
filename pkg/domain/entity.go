package domain

import "time"

// Kind discriminates concrete entity types for equality purposes. Two
// entities with equal identifiers but different kinds are never equal.
// An explicit tag is used instead of reflection because method promotion
// through an embedded base erases the outer type.
type Kind string

// String returns the kind tag.
func (k Kind) String() string {
	return string(k)
}

// Entity is the base for objects with a persistent identity distinct from
// their attribute values. Embed it in concrete types and construct it through
// NewEntity so the identifier and kind are fixed up front.
//
// Invariants:
//   - id and kind are immutable after construction
//   - equality is kind + identifier only; attributes never participate
//   - createdAt == updatedAt and createdBy == updatedBy immediately after
//     MarkCreated; later MarkUpdated calls touch only the updated pair
//
// Audit fields are not set at construction: the persistence layer (or another
// external caller) drives MarkCreated and MarkUpdated with the timestamp and
// actor it considers authoritative.
type Entity[TID comparable] struct {
	id   TID
	kind Kind

	createdAt time.Time
	updatedAt time.Time
	createdBy ActorID
	updatedBy ActorID
}

// NewEntity constructs an entity base with its identity fixed. The identifier
// is never reassigned afterwards.
func NewEntity[TID comparable](kind Kind, id TID) Entity[TID] {
	return Entity[TID]{id: id, kind: kind}
}

// ID returns the entity's identifier. Suitable as a map key.
func (e *Entity[TID]) ID() TID {
	return e.id
}

// Kind returns the concrete-kind discriminator assigned at construction.
func (e *Entity[TID]) Kind() Kind {
	return e.kind
}

// MarkCreated stamps the creation audit pair. Both created and updated fields
// are set so a freshly persisted entity satisfies createdAt == updatedAt.
// Callers are expected to invoke this exactly once, at creation time.
func (e *Entity[TID]) MarkCreated(at time.Time, by ActorID) {
	e.createdAt = at
	e.updatedAt = at
	e.createdBy = by
	e.updatedBy = by
}

// MarkUpdated stamps the update audit pair, leaving the creation pair intact.
func (e *Entity[TID]) MarkUpdated(at time.Time, by ActorID) {
	e.updatedAt = at
	e.updatedBy = by
}

// CreatedAt returns when the entity was first persisted.
func (e *Entity[TID]) CreatedAt() time.Time { return e.createdAt }

// UpdatedAt returns when the entity was last modified.
func (e *Entity[TID]) UpdatedAt() time.Time { return e.updatedAt }

// CreatedBy returns the actor that created the entity, if recorded.
func (e *Entity[TID]) CreatedBy() ActorID { return e.createdBy }

// UpdatedBy returns the actor that last modified the entity, if recorded.
func (e *Entity[TID]) UpdatedBy() ActorID { return e.updatedBy }

// Equals reports identity-based equality: same concrete kind and equal
// identifiers. Reference identity short-circuits to true. Attribute values
// never participate.
func (e *Entity[TID]) Equals(other *Entity[TID]) bool {
	if other == nil {
		return false
	}
	if e == other {
		return true
	}
	return e.kind == other.kind && e.id == other.id
}

// Hash derives a hash solely from the identifier, so it is stable across the
// identifier's own equality and consistent with Equals for entities of one
// kind.
func (e *Entity[TID]) Hash() uint64 {
	return componentHash(e.id)
}
