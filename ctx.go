package access

import (
	"context"
)

var claimsCtxKey = &contextKey{"claims"}

type contextKey struct {
	name string
}

// WithClaimsContext sets the SessionClaims in the given context
func WithClaimsContext(r context.Context, claims *SessionClaims) context.Context {
	return context.WithValue(r, claimsCtxKey, claims)
}

// GetClaims extracts the SessionClaims from the standard context
func GetClaims(ctx context.Context) (*SessionClaims, bool) {
	raw, ok := ctx.Value(claimsCtxKey).(*SessionClaims)
	return raw, ok
}

// RoleFromContext returns the caller's role, or false when no session is
// attached
func RoleFromContext(ctx context.Context) (Role, bool) {
	claims, ok := GetClaims(ctx)
	if !ok || !claims.IsAuthenticated() {
		return "", false
	}
	return claims.Role(), true
}

// TenantFromContext returns the caller's tenant id, empty for staff roles
func TenantFromContext(ctx context.Context) (string, bool) {
	claims, ok := GetClaims(ctx)
	if !ok || !claims.IsAuthenticated() {
		return "", false
	}
	return claims.TenantID(), true
}
