// Package utils provides small helpers shared across the server: request
// context keys, JWT issuing and verification, password hashing, HMAC
// signatures, JSON responses, the outbound HTTP client, clocks and token
// generation.
package utils

import (
	"context"

	"github.com/MKhiriev/go-story-nook/models"
)

// contextKey is a private type for context keys so values set here never
// collide with string keys from other packages.
type contextKey string

// String implements fmt.Stringer.
func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the authenticated caller is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying the authenticated caller.
func WithIdentity(ctx context.Context, identity models.Identity) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, identity)
}

// IdentityFromContext returns the caller stored by WithIdentity.
// ok is false when no identity was stored or it has an unexpected type.
func IdentityFromContext(ctx context.Context) (models.Identity, bool) {
	identity, ok := ctx.Value(IdentityCtxKey).(models.Identity)
	return identity, ok
}

// GetUserIDFromContext is a shortcut for IdentityFromContext(ctx).UserID.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	identity, ok := IdentityFromContext(ctx)
	return identity.UserID, ok
}
