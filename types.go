package access

import (
	"context"
	"fmt"
)

type Logger interface {
	Debug(format string, args ...any)
	Info(format string, args ...any)
	Warn(format string, args ...any)
	Error(format string, args ...any)
}

// Identity holds the attributes of an authenticated principal. TenantID is
// empty unless the role is client.
type Identity interface {
	ID() string
	Email() string
	Role() Role
	TenantID() string
}

// Authenticator holds methods to deal with authentication
type Authenticator interface {
	Login(ctx context.Context, email, password string) (string, Identity, error)
	Authenticate(ctx context.Context, email, password string) (Identity, error)
	ClaimsFromToken(token string) (*SessionClaims, error)
}

// IdentityStore is the narrow persistence surface the core depends on. The
// rest of the application owns the schema; authentication only ever reads by
// email or upserts an externally linked identity.
type IdentityStore interface {
	FindByEmail(ctx context.Context, email string) (*User, error)
	UpsertLinkedIdentity(ctx context.Context, user *User) (*User, error)
}

// TokenService handles session token issuance and validation
type TokenService interface {
	Generate(identity Identity) (string, error)
	Validate(tokenString string) (*SessionClaims, error)
}

// LoginPayload is the credential submission shape the HTTP layer binds into
type LoginPayload interface {
	GetIdentifier() string
	GetPassword() string
	GetExtendedSession() bool
}

type defLogger struct{}

func (d defLogger) Error(format string, args ...any) {
	fmt.Printf("[ERR] ACCESS "+newline(format), args...)
}

func (d defLogger) Warn(format string, args ...any) {
	fmt.Printf("[WRN] ACCESS "+newline(format), args...)
}

func (d defLogger) Info(format string, args ...any) {
	fmt.Printf("[INF] ACCESS "+newline(format), args...)
}

func (d defLogger) Debug(format string, args ...any) {
	fmt.Printf("[DBG] ACCESS "+newline(format), args...)
}

func newline(s string) string {
	if len(s) > 0 && s[len(s)-1] != '\n' {
		s += "\n"
	}
	return s
}
