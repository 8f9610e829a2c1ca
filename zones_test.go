package access_test

import (
	"testing"

	access "github.com/agencykit/go-access"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want access.Zone
	}{
		{
			name: "admin root",
			path: "/admin",
			want: access.ZoneAdmin,
		},
		{
			name: "admin subpath",
			path: "/admin/users/42",
			want: access.ZoneAdmin,
		},
		{
			name: "admin prefix without segment boundary is public",
			path: "/administrivia",
			want: access.ZonePublic,
		},
		{
			name: "dashboard root",
			path: "/dashboard",
			want: access.ZoneDashboard,
		},
		{
			name: "dashboard subpath",
			path: "/dashboard/projects",
			want: access.ZoneDashboard,
		},
		{
			name: "dashboard prefix without segment boundary is public",
			path: "/dashboards",
			want: access.ZonePublic,
		},
		{
			name: "portal root",
			path: "/portal",
			want: access.ZonePortal,
		},
		{
			name: "portal subpath",
			path: "/portal/invoices/2026-08",
			want: access.ZonePortal,
		},
		{
			name: "login is auth pages",
			path: "/login",
			want: access.ZoneAuthPages,
		},
		{
			name: "register is auth pages",
			path: "/register",
			want: access.ZoneAuthPages,
		},
		{
			name: "register subpath is auth pages",
			path: "/register/confirm",
			want: access.ZoneAuthPages,
		},
		{
			name: "root is public",
			path: "/",
			want: access.ZonePublic,
		},
		{
			name: "marketing page is public",
			path: "/services/branding",
			want: access.ZonePublic,
		},
		{
			name: "empty path is public",
			path: "",
			want: access.ZonePublic,
		},
		{
			name: "loginish prefix is public",
			path: "/loginhelp",
			want: access.ZonePublic,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, access.ClassifyPath(tt.path))
		})
	}
}

func TestZone_Path(t *testing.T) {
	tests := []struct {
		zone access.Zone
		want string
	}{
		{access.ZoneAdmin, "/admin"},
		{access.ZoneDashboard, "/dashboard"},
		{access.ZonePortal, "/portal"},
		{access.ZoneAuthPages, "/login"},
		{access.ZonePublic, "/"},
		{access.Zone("bogus"), "/"},
	}

	for _, tt := range tests {
		t.Run(string(tt.zone), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.zone.Path())
		})
	}
}

func TestZone_IsValid(t *testing.T) {
	for _, zone := range []access.Zone{
		access.ZoneAdmin,
		access.ZoneDashboard,
		access.ZonePortal,
		access.ZoneAuthPages,
		access.ZonePublic,
	} {
		assert.True(t, zone.IsValid(), "zone %q should be valid", zone)
	}

	assert.False(t, access.Zone("").IsValid())
	assert.False(t, access.Zone("backstage").IsValid())
}
