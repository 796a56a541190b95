// Package requestcontext provides context accessors for request-scoped
// values: the current actor, the current tenant, and the request time.
//
// Middleware (or a worker/CLI entrypoint) sets values; services and
// persistence interceptors read them. The package stays free of transport
// dependencies so domain-adjacent code can import it without pulling in HTTP.
//
// Usage in services (read values):
//
//	actor := requestcontext.Actor(ctx)
//	tenantID, ok := requestcontext.TenantID(ctx)
//	now := requestcontext.Now(ctx)
//
// Usage in middleware (set values):
//
//	ctx = requestcontext.WithUserID(ctx, userID)
//	ctx = requestcontext.WithTenantID(ctx, tenantID)
//
// Usage in tests (inject values):
//
//	ctx = requestcontext.WithTime(ctx, fixedTime)
package requestcontext

import (
	"context"
	"time"

	id "domainkit/pkg/domain"
)

// Context key types (unexported for encapsulation).
type (
	userIDKey      struct{}
	tenantIDKey    struct{}
	actorKey       struct{}
	requestIDKey   struct{}
	requestTimeKey struct{}
)

// Exported context keys for tests that need context.WithValue directly.
var (
	ContextKeyUserID      = userIDKey{}
	ContextKeyTenantID    = tenantIDKey{}
	ContextKeyActor       = actorKey{}
	ContextKeyRequestID   = requestIDKey{}
	ContextKeyRequestTime = requestTimeKey{}
)

// UserID retrieves the authenticated user ID from the context. The second
// return is false when no user is bound (anonymous or system work).
func UserID(ctx context.Context) (id.UserID, bool) {
	userID, ok := ctx.Value(ContextKeyUserID).(id.UserID)
	return userID, ok
}

// WithUserID injects a user ID into the context.
func WithUserID(ctx context.Context, userID id.UserID) context.Context {
	return context.WithValue(ctx, ContextKeyUserID, userID)
}

// TenantID retrieves the current tenant from the context. The second return
// is false when the request is not tenant-scoped.
func TenantID(ctx context.Context) (id.TenantID, bool) {
	tenantID, ok := ctx.Value(ContextKeyTenantID).(id.TenantID)
	return tenantID, ok
}

// WithTenantID injects a tenant ID into the context.
func WithTenantID(ctx context.Context, tenantID id.TenantID) context.Context {
	return context.WithValue(ctx, ContextKeyTenantID, tenantID)
}

// Actor retrieves the audit actor for the current request. Falls back to the
// bound user ID when no explicit actor was set, and to the zero ActorID when
// neither is present.
func Actor(ctx context.Context) id.ActorID {
	if actor, ok := ctx.Value(ContextKeyActor).(id.ActorID); ok {
		return actor
	}
	if userID, ok := UserID(ctx); ok {
		return id.ActorID(userID.String())
	}
	return ""
}

// WithActor injects an explicit audit actor into the context. Use for system
// actors ("scheduler", "migration") that have no user identity.
func WithActor(ctx context.Context, actor id.ActorID) context.Context {
	return context.WithValue(ctx, ContextKeyActor, actor)
}

// RequestID retrieves the request correlation ID from the context.
func RequestID(ctx context.Context) string {
	if reqID, ok := ctx.Value(ContextKeyRequestID).(string); ok {
		return reqID
	}
	return ""
}

// WithRequestID injects a request correlation ID into the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, ContextKeyRequestID, requestID)
}

// Now retrieves the request-scoped time from context. Falls back to
// time.Now() if not set (workers, CLI, tests that don't care).
//
// Persistence interceptors should stamp MarkCreated/MarkUpdated with this so
// every audit field written in one request carries the same timestamp.
func Now(ctx context.Context) time.Time {
	if t, ok := ctx.Value(ContextKeyRequestTime).(time.Time); ok {
		return t
	}
	return time.Now()
}

// WithTime injects a specific time into a context. Useful for:
//   - Unit tests that need deterministic audit timestamps
//   - Workers that need consistent time within a batch operation
func WithTime(ctx context.Context, t time.Time) context.Context {
	return context.WithValue(ctx, ContextKeyRequestTime, t)
}
