package actor

import (
	"context"

	"github.com/workhub-team/workhub/internal/domain/entities"
)

type contextKey string

const actorKey contextKey = "actor"

// WithActor stores the authenticated actor in the context
func WithActor(ctx context.Context, a entities.Actor) context.Context {
	return context.WithValue(ctx, actorKey, a)
}

// FromContext extracts the authenticated actor from the context
func FromContext(ctx context.Context) (entities.Actor, bool) {
	a, ok := ctx.Value(actorKey).(entities.Actor)
	return a, ok
}
