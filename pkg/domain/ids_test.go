package domain_test

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"domainkit/pkg/domain"
	dErrors "domainkit/pkg/domain-errors"
)

// TestParseID_Invariants validates the parsing invariant:
// "IDs must be valid, non-empty, non-nil UUIDs".
func TestParseID_Invariants(t *testing.T) {
	t.Run("rejects empty string", func(t *testing.T) {
		_, err := domain.ParseUserID("")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects invalid format", func(t *testing.T) {
		_, err := domain.ParseUserID("not-a-uuid")
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("rejects nil UUID", func(t *testing.T) {
		_, err := domain.ParseUserID(uuid.Nil.String())
		require.Error(t, err)
		assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
	})

	t.Run("accepts valid UUID", func(t *testing.T) {
		validUUID := uuid.New()
		id, err := domain.ParseUserID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, domain.UserID(validUUID), id)
	})

	t.Run("tenant IDs enforce the same invariant", func(t *testing.T) {
		_, err := domain.ParseTenantID("")
		require.Error(t, err)

		validUUID := uuid.New()
		id, err := domain.ParseTenantID(validUUID.String())
		require.NoError(t, err)
		assert.Equal(t, domain.TenantID(validUUID), id)
	})
}

// TestTypeDistinction verifies the compiler enforces type safety.
func TestTypeDistinction(t *testing.T) {
	userID := domain.UserID(uuid.New())
	tenantID := domain.TenantID(uuid.New())

	// These would fail to compile if the types were interchangeable:
	// var _ domain.UserID = tenantID   // compile error
	// var _ domain.TenantID = userID   // compile error

	assert.NotEqual(t, uuid.UUID(userID), uuid.UUID(tenantID))
}

// TestParseID_SecurityInvariants validates trust-boundary parsing rules.
func TestParseID_SecurityInvariants(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Attack vectors
		{"SQL injection attempt", "'; DROP TABLE users;--", true},
		{"Path traversal", "../../../etc/passwd", true},
		{"Null byte injection", "550e8400\x00-e29b-41d4-a716-446655440000", true},
		{"Oversized input", strings.Repeat("a", 1000), true},

		// Edge cases
		{"Empty string", "", true},
		{"Nil UUID", uuid.Nil.String(), true},
		{"Whitespace only", "   ", true},
		{"Uppercase valid UUID", "550E8400-E29B-41D4-A716-446655440000", false},

		// Valid
		{"Valid UUID lowercase", "550e8400-e29b-41d4-a716-446655440000", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := domain.ParseUserID(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNewID(t *testing.T) {
	t.Run("generated identifiers are non-nil and unique", func(t *testing.T) {
		seen := make(map[uuid.UUID]bool)
		for i := 0; i < 100; i++ {
			id := domain.NewID()
			require.NotEqual(t, uuid.Nil, id)
			require.False(t, seen[id])
			seen[id] = true
		}
	})
}

func TestActorID(t *testing.T) {
	t.Run("zero value means no actor recorded", func(t *testing.T) {
		var actor domain.ActorID
		assert.True(t, actor.IsZero())
	})

	t.Run("non-empty actor is not zero", func(t *testing.T) {
		actor := domain.ActorID("scheduler")
		assert.False(t, actor.IsZero())
		assert.Equal(t, "scheduler", actor.String())
	})
}
