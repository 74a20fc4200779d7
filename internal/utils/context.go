// Package utils provides helpers shared across layers: typed context keys,
// JSON response writing, identifier generation, session token signing and the
// outbound HTTP client.
package utils

import (
	"context"

	"github.com/hcorbage/corb3d/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// SessionCtxKey is the key under which the auth middleware stores the
// authenticated [models.Session].
var SessionCtxKey = contextKey("session")

// WithSession returns a copy of ctx carrying s.
func WithSession(ctx context.Context, s models.Session) context.Context {
	return context.WithValue(ctx, SessionCtxKey, s)
}

// GetSessionFromContext retrieves the session stored by [WithSession].
//
// ok is false when the value is missing or has an unexpected type:
//
//	session, ok := utils.GetSessionFromContext(ctx)
//	if !ok {
//	    // request is not authenticated
//	}
func GetSessionFromContext(ctx context.Context) (models.Session, bool) {
	s, ok := ctx.Value(SessionCtxKey).(models.Session)
	return s, ok
}
