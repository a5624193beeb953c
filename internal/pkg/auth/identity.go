package auth

import (
	"context"
	"time"
)

// Identity is the authenticated user acting on a request
type Identity struct {
	UserID  int64
	Email   string
	Name    string
	TokenID string
	// ExpiresAt is when the session token stops being valid
	ExpiresAt time.Time
}

type identityKey struct{}

// WithIdentity stores id in ctx
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey{}, id)
}

// IdentityFrom returns the identity stored in ctx, or nil for anonymous requests
func IdentityFrom(ctx context.Context) *Identity {
	id, _ := ctx.Value(identityKey{}).(*Identity)
	return id
}
