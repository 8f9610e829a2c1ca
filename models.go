package access

import (
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// User is the credential-bearing account record. The wider application owns
// most user data; this model carries only what authentication and tenancy
// need.
type User struct {
	bun.BaseModel  `bun:"table:users,alias:usr"`
	ID             uuid.UUID  `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Role           Role       `bun:"user_role,notnull" json:"user_role,omitempty"`
	FirstName      string     `bun:"first_name" json:"first_name,omitempty"`
	LastName       string     `bun:"last_name" json:"last_name,omitempty"`
	Email          string     `bun:"email,notnull,unique" json:"email,omitempty"`
	Phone          string     `bun:"phone_number" json:"phone_number,omitempty"`
	PasswordHash   string     `bun:"password_hash" json:"-"`
	CompanyID      *uuid.UUID `bun:"company_id,nullzero,type:uuid" json:"company_id,omitempty"`
	Provider       string     `bun:"provider" json:"provider,omitempty"`
	ProviderUserID string     `bun:"provider_user_id" json:"provider_user_id,omitempty"`
	EmailValidated bool       `bun:"is_email_verified" json:"is_email_verified,omitempty"`
	LoggedInAt     *time.Time `bun:"loggedin_at" json:"loggedin_at,omitempty"`
	CreatedAt      *time.Time `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt      *time.Time `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
	DeletedAt      *time.Time `bun:"deleted_at,soft_delete,nullzero" json:"deleted_at,omitempty"`
}

// HasCredential reports whether the account can authenticate with a
// password. OAuth-only accounts have no usable hash.
func (u *User) HasCredential() bool {
	return u != nil && u.PasswordHash != ""
}

// TenantID returns the company id in string form, empty unless set
func (u *User) TenantID() string {
	if u == nil || u.CompanyID == nil {
		return ""
	}
	return u.CompanyID.String()
}

// Identity snapshots the user into an immutable Identity for one
// authentication event
func (u *User) Identity() Identity {
	return authIdentity{
		id:     u.ID.String(),
		email:  u.Email,
		role:   u.Role,
		tenant: u.TenantID(),
	}
}

type authIdentity struct {
	id     string
	email  string
	role   Role
	tenant string
}

func (a authIdentity) ID() string       { return a.id }
func (a authIdentity) Email() string    { return a.email }
func (a authIdentity) Role() Role       { return a.role }
func (a authIdentity) TenantID() string { return a.tenant }

var _ Identity = authIdentity{}

// NewIdentity builds an Identity value directly, used when claims or
// external providers already carry the resolved fields
func NewIdentity(id, email string, role Role, tenantID string) Identity {
	return authIdentity{id: id, email: email, role: role, tenant: tenantID}
}

func parseCompanyID(raw string) (*uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid company id")
	}
	return &id, nil
}
