// Package identity carries the verified external user identifier through a
// request context and resolves it for services.
package identity

import (
	"context"
	"errors"
	"strings"
)

// ErrUnauthorized is returned when a call carries no verified identity.
var ErrUnauthorized = errors.New("unauthorized")

type externalIDKey struct{}

// WithExternalID returns a context carrying the verified external identifier.
func WithExternalID(ctx context.Context, externalID string) context.Context {
	return context.WithValue(ctx, externalIDKey{}, externalID)
}

// ExternalIDFromContext returns the external identifier, if a non-empty one is present.
func ExternalIDFromContext(ctx context.Context) (string, bool) {
	if ctx == nil {
		return "", false
	}
	id, ok := ctx.Value(externalIDKey{}).(string)
	if !ok || strings.TrimSpace(id) == "" {
		return "", false
	}
	return id, true
}

// Resolver maps an inbound call context to a verified external identifier.
type Resolver interface {
	Resolve(ctx context.Context) (string, error)
}

// ContextResolver reads the identifier placed in the context by the auth middleware.
type ContextResolver struct{}

// Resolve returns ErrUnauthorized when the context has no identity.
func (ContextResolver) Resolve(ctx context.Context) (string, error) {
	id, ok := ExternalIDFromContext(ctx)
	if !ok {
		return "", ErrUnauthorized
	}
	return id, nil
}

var _ Resolver = ContextResolver{}
