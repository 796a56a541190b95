package testutil

import (
	"context"
	"time"

	"domainkit/pkg/requestcontext"
)

// FixedTime is an arbitrary stable instant for deterministic fixtures.
var FixedTime = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

// ContextAt returns a background context carrying t as the request time, so
// code reading requestcontext.Now(ctx) sees a pinned clock.
func ContextAt(t time.Time) context.Context {
	return requestcontext.WithTime(context.Background(), t)
}

// FixedContext returns a background context pinned to FixedTime.
func FixedContext() context.Context {
	return ContextAt(FixedTime)
}
