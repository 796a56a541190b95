package requestcontext_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	id "domainkit/pkg/domain"
	"domainkit/pkg/requestcontext"
)

func TestUserID(t *testing.T) {
	t.Run("returns the injected user", func(t *testing.T) {
		userID := id.UserID(uuid.New())
		ctx := requestcontext.WithUserID(context.Background(), userID)

		got, ok := requestcontext.UserID(ctx)
		require.True(t, ok)
		assert.Equal(t, userID, got)
	})

	t.Run("reports absence on a bare context", func(t *testing.T) {
		_, ok := requestcontext.UserID(context.Background())
		assert.False(t, ok)
	})
}

func TestTenantID(t *testing.T) {
	t.Run("returns the injected tenant", func(t *testing.T) {
		tenantID := id.TenantID(uuid.New())
		ctx := requestcontext.WithTenantID(context.Background(), tenantID)

		got, ok := requestcontext.TenantID(ctx)
		require.True(t, ok)
		assert.Equal(t, tenantID, got)
	})

	t.Run("reports absence when the request is not tenant-scoped", func(t *testing.T) {
		_, ok := requestcontext.TenantID(context.Background())
		assert.False(t, ok)
	})
}

func TestActor(t *testing.T) {
	t.Run("explicit actor wins", func(t *testing.T) {
		ctx := requestcontext.WithUserID(context.Background(), id.UserID(uuid.New()))
		ctx = requestcontext.WithActor(ctx, "scheduler")
		assert.Equal(t, id.ActorID("scheduler"), requestcontext.Actor(ctx))
	})

	t.Run("falls back to the bound user", func(t *testing.T) {
		userID := id.UserID(uuid.New())
		ctx := requestcontext.WithUserID(context.Background(), userID)
		assert.Equal(t, id.ActorID(userID.String()), requestcontext.Actor(ctx))
	})

	t.Run("is zero when nothing is bound", func(t *testing.T) {
		assert.True(t, requestcontext.Actor(context.Background()).IsZero())
	})
}

func TestRequestID(t *testing.T) {
	ctx := requestcontext.WithRequestID(context.Background(), "req-42")
	assert.Equal(t, "req-42", requestcontext.RequestID(ctx))
	assert.Empty(t, requestcontext.RequestID(context.Background()))
}

func TestNow(t *testing.T) {
	t.Run("returns the pinned time", func(t *testing.T) {
		pinned := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
		ctx := requestcontext.WithTime(context.Background(), pinned)
		assert.Equal(t, pinned, requestcontext.Now(ctx))
	})

	t.Run("falls back to the wall clock", func(t *testing.T) {
		assert.WithinDuration(t, time.Now(), requestcontext.Now(context.Background()), time.Second)
	})
}
