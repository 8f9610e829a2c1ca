package access_test

import (
	"encoding/json"
	"testing"

	access "github.com/agencykit/go-access"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestUser_HasCredential(t *testing.T) {
	t.Run("true when a hash is stored", func(t *testing.T) {
		user := &access.User{PasswordHash: "$2a$12$something"}
		assert.True(t, user.HasCredential())
	})

	t.Run("false for oauth only accounts", func(t *testing.T) {
		user := &access.User{Provider: "google", ProviderUserID: "g-123"}
		assert.False(t, user.HasCredential())
	})

	t.Run("false for nil user", func(t *testing.T) {
		var user *access.User
		assert.False(t, user.HasCredential())
	})
}

func TestUser_TenantID(t *testing.T) {
	t.Run("string form of the company id", func(t *testing.T) {
		companyID := uuid.New()
		user := &access.User{CompanyID: &companyID}
		assert.Equal(t, companyID.String(), user.TenantID())
	})

	t.Run("empty without a company", func(t *testing.T) {
		user := &access.User{}
		assert.Empty(t, user.TenantID())
	})

	t.Run("empty for nil user", func(t *testing.T) {
		var user *access.User
		assert.Empty(t, user.TenantID())
	})
}

func TestUser_Identity(t *testing.T) {
	companyID := uuid.New()
	user := &access.User{
		ID:        uuid.New(),
		Email:     "client@customer.test",
		Role:      access.RoleClient,
		CompanyID: &companyID,
	}

	identity := user.Identity()

	assert.Equal(t, user.ID.String(), identity.ID())
	assert.Equal(t, "client@customer.test", identity.Email())
	assert.Equal(t, access.RoleClient, identity.Role())
	assert.Equal(t, companyID.String(), identity.TenantID())

	t.Run("snapshot does not track later mutations", func(t *testing.T) {
		user.Role = access.RoleAdmin
		assert.Equal(t, access.RoleClient, identity.Role())
	})
}

func TestNewIdentity(t *testing.T) {
	identity := access.NewIdentity("id-1", "person@agency.test", access.RoleStaff, "")

	assert.Equal(t, "id-1", identity.ID())
	assert.Equal(t, "person@agency.test", identity.Email())
	assert.Equal(t, access.RoleStaff, identity.Role())
	assert.Empty(t, identity.TenantID())
}

func TestUser_PasswordHashNeverSerialized(t *testing.T) {
	user := &access.User{
		ID:           uuid.New(),
		Email:        "ana@agency.test",
		PasswordHash: "$2a$12$supersecret",
	}

	raw, err := json.Marshal(user)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "supersecret")
	assert.NotContains(t, string(raw), "password")
}
