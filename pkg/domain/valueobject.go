package domain

import (
	"fmt"
	"hash/fnv"
	"reflect"
)

// ValueObject is implemented by types whose identity is purely structural:
// two instances are interchangeable whenever their equality components match.
//
// EqualityComponents must return the same ordered sequence on every call for
// an unmodified instance. Components may be scalars, nested ValueObjects, or
// nil (absent components compare equal to other absent components). An empty
// sequence is legal; all instances of such a kind are mutually equal.
type ValueObject interface {
	EqualityComponents() []any
}

// ValueEqual reports structural equality: both values are of the exact same
// concrete type and their equality-component sequences match pairwise in
// order. A nil operand is never equal to anything.
func ValueEqual(a, b ValueObject) bool {
	if a == nil || b == nil {
		return false
	}
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	ac := a.EqualityComponents()
	bc := b.EqualityComponents()
	if len(ac) != len(bc) {
		return false
	}
	for i := range ac {
		if !componentEqual(ac[i], bc[i]) {
			return false
		}
	}
	return true
}

// ValueHash folds the equality components with an order-sensitive combiner:
// seed 17, then hash = hash*31 + componentHash for each component, an absent
// component contributing 0. Transposed components of distinguishable values
// therefore produce different hashes, and ValueEqual(a, b) implies
// ValueHash(a) == ValueHash(b).
func ValueHash(v ValueObject) uint64 {
	var h uint64 = 17
	for _, c := range v.EqualityComponents() {
		h = h*31 + componentHash(c)
	}
	return h
}

func componentEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	// Nested value objects compare structurally, not by field identity.
	if av, ok := a.(ValueObject); ok {
		if bv, ok := b.(ValueObject); ok {
			return ValueEqual(av, bv)
		}
		return false
	}
	return reflect.DeepEqual(a, b)
}

// componentHash hashes a single component. Nested value objects hash through
// their own component fold so nesting stays consistent with componentEqual.
// Everything else hashes its dynamic type and printed value, which is stable
// for any two values reflect.DeepEqual considers equal (fmt sorts map keys).
func componentHash(c any) uint64 {
	if c == nil {
		return 0
	}
	if v, ok := c.(ValueObject); ok {
		return ValueHash(v)
	}
	h := fnv.New64a()
	fmt.Fprintf(h, "%T\x00%v", c, c)
	return h.Sum64()
}
