package access

// Role is the platform role carried by an identity
type Role string

const (
	// RoleAdmin has full access to the admin area
	RoleAdmin Role = "admin"
	// RoleStaff is an agency employee (i.e. dashboard access)
	RoleStaff Role = "staff"
	// RoleClient belongs to a client company and only sees the portal
	RoleClient Role = "client"
)

// IsValid checks if the role is one of the predefined valid roles
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleStaff, RoleClient:
		return true
	default:
		return false
	}
}

// IsStaff reports whether the role is an internal agency role
func (r Role) IsStaff() bool {
	return r == RoleAdmin || r == RoleStaff
}

// GetAllRoles returns all predefined roles
func GetAllRoles() []Role {
	return []Role{RoleAdmin, RoleStaff, RoleClient}
}

// ParseRole safely parses a string into a Role type
func ParseRole(roleStr string) (Role, bool) {
	role := Role(roleStr)
	return role, role.IsValid()
}
