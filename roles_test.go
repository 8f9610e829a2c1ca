package access_test

import (
	"testing"

	access "github.com/agencykit/go-access"
	"github.com/stretchr/testify/assert"
)

func TestRole_IsValid(t *testing.T) {
	tests := []struct {
		name string
		role access.Role
		want bool
	}{
		{"admin is valid", access.RoleAdmin, true},
		{"staff is valid", access.RoleStaff, true},
		{"client is valid", access.RoleClient, true},
		{"empty is invalid", access.Role(""), false},
		{"unknown is invalid", access.Role("superuser"), false},
		{"case sensitive", access.Role("Admin"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.role.IsValid())
		})
	}
}

func TestRole_IsStaff(t *testing.T) {
	assert.True(t, access.RoleAdmin.IsStaff())
	assert.True(t, access.RoleStaff.IsStaff())
	assert.False(t, access.RoleClient.IsStaff())
	assert.False(t, access.Role("visitor").IsStaff())
}

func TestParseRole(t *testing.T) {
	t.Run("parses known roles", func(t *testing.T) {
		for _, role := range access.GetAllRoles() {
			parsed, ok := access.ParseRole(string(role))
			assert.True(t, ok)
			assert.Equal(t, role, parsed)
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, ok := access.ParseRole("intern")
		assert.False(t, ok)
	})
}

func TestGetAllRoles(t *testing.T) {
	roles := access.GetAllRoles()
	assert.Len(t, roles, 3)
	assert.Contains(t, roles, access.RoleAdmin)
	assert.Contains(t, roles, access.RoleStaff)
	assert.Contains(t, roles, access.RoleClient)
}
