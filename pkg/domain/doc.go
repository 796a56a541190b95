// Package domain provides the foundational building blocks for a DDD domain
// layer: typed identifiers, entities with identity-based equality and audit
// fields, aggregate roots with an in-memory domain-event queue, immutable
// domain-event metadata, and structural value-object equality.
//
// Nothing in this package performs I/O, blocks, or coordinates across
// goroutines. A single aggregate instance is owned by a single caller;
// embedding these types in a concurrent context is the caller's problem.
package domain
