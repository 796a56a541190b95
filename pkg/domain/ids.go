package domain

import (
	"github.com/google/uuid"

	dErrors "domainkit/pkg/domain-errors"
)

// Typed identifiers prevent cross-type assignment at compile time: a UserID
// can never be passed where a TenantID is expected. Construct via the Parse
// functions at trust boundaries; direct conversion bypasses validation.
type (
	// UserID identifies a user account.
	UserID uuid.UUID

	// TenantID identifies a tenant organization.
	TenantID uuid.UUID
)

// ActorID tags audit fields with the principal that performed a change.
// The zero value means "no actor recorded" (system-driven changes, bulk
// migrations). Kept as an opaque string so callers can use user IDs,
// service names, or external subject identifiers interchangeably.
type ActorID string

// IsZero reports whether no actor was recorded.
func (a ActorID) IsZero() bool {
	return a == ""
}

// String returns the raw actor identifier.
func (a ActorID) String() string {
	return string(a)
}

// NewID generates a fresh random identifier. This is the default-identity
// convenience for entities and events that do not carry a caller-supplied key.
func NewID() uuid.UUID {
	return uuid.New()
}

// ParseUserID constructs a UserID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed, or the
// nil UUID; no other errors are expected.
func ParseUserID(s string) (UserID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return UserID{}, err
	}
	return UserID(u), nil
}

// ParseTenantID constructs a TenantID from external input.
//
// Errors: returns CodeInvalidInput when the value is empty, malformed, or the
// nil UUID; no other errors are expected.
func ParseTenantID(s string) (TenantID, error) {
	u, err := parseUUID(s)
	if err != nil {
		return TenantID{}, err
	}
	return TenantID(u), nil
}

// parseUUID enforces the shared identifier invariant: valid, non-empty,
// non-nil UUIDs only.
func parseUUID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "identifier cannot be empty")
	}
	u, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "identifier is not a valid UUID")
	}
	if u == uuid.Nil {
		return uuid.Nil, dErrors.New(dErrors.CodeInvalidInput, "identifier cannot be the nil UUID")
	}
	return u, nil
}

// String returns the canonical UUID form.
func (id UserID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the identifier is unset.
func (id UserID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}

// String returns the canonical UUID form.
func (id TenantID) String() string {
	return uuid.UUID(id).String()
}

// IsNil reports whether the identifier is unset.
func (id TenantID) IsNil() bool {
	return uuid.UUID(id) == uuid.Nil
}
