package access

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the signed, stateless token payload. Role and tenant are
// embedded at login so authorization decisions never need a store round-trip.
// Claims are written once at session creation and only read afterwards; a
// role or tenant change requires a new token.
type SessionClaims struct {
	jwt.RegisteredClaims
	UID      string `json:"uid,omitempty"`
	UserRole Role   `json:"role,omitempty"`
	Tenant   string `json:"tenant_id,omitempty"`
}

// UserID returns the identity id the token was minted for
func (c *SessionClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.RegisteredClaims.Subject
}

// Role returns the role snapshot taken at login
func (c *SessionClaims) Role() Role {
	return c.UserRole
}

// TenantID returns the company the identity belongs to, empty for staff
// and admin roles
func (c *SessionClaims) TenantID() string {
	return c.Tenant
}

// Expires returns the expiration time
func (c *SessionClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *SessionClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}

// IsAuthenticated reports a usable identity is present
func (c *SessionClaims) IsAuthenticated() bool {
	return c != nil && c.UserID() != ""
}
