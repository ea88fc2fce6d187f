// Package audit carries the identity of the caller through a request so the
// persistence layer can stamp created-by and updated-by columns.
package audit

import "context"

type actorKey struct{}

// Actor identifies who performs an operation.
type Actor struct {
	ID    int64
	Email string
	Role  string
}

func WithActor(ctx context.Context, actor Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, actor)
}

// ActorFrom returns the actor stored in ctx, if any.
func ActorFrom(ctx context.Context) (Actor, bool) {
	actor, ok := ctx.Value(actorKey{}).(Actor)
	if !ok || actor.Email == "" {
		return Actor{}, false
	}
	return actor, true
}

// Stamp returns the author to record for a write, nil for anonymous callers.
func Stamp(ctx context.Context) *string {
	actor, ok := ActorFrom(ctx)
	if !ok {
		return nil
	}
	email := actor.Email
	return &email
}
