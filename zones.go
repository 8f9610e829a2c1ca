package access

import "strings"

// Zone is the security classification of a request target
type Zone string

const (
	// ZoneAdmin is the staff-only administration area
	ZoneAdmin Zone = "admin"
	// ZoneDashboard is the internal dashboard for agency users
	ZoneDashboard Zone = "dashboard"
	// ZonePortal is the client-facing portal
	ZonePortal Zone = "portal"
	// ZoneAuthPages covers login and registration pages
	ZoneAuthPages Zone = "auth"
	// ZonePublic is everything else, no session required
	ZonePublic Zone = "public"
)

// IsValid checks if the zone is one of the predefined valid zones
func (z Zone) IsValid() bool {
	switch z {
	case ZoneAdmin, ZoneDashboard, ZonePortal, ZoneAuthPages, ZonePublic:
		return true
	default:
		return false
	}
}

// Path returns the canonical entry path for a zone. Used when a decision
// redirects the caller to the area their role permits.
func (z Zone) Path() string {
	switch z {
	case ZoneAdmin:
		return "/admin"
	case ZoneDashboard:
		return "/dashboard"
	case ZonePortal:
		return "/portal"
	case ZoneAuthPages:
		return "/login"
	default:
		return "/"
	}
}

// zonePrefixes maps recognized path prefixes to zones. Order matters: the
// classifier checks these in sequence and anything unmatched is public.
var zonePrefixes = []struct {
	prefix string
	zone   Zone
}{
	{"/admin", ZoneAdmin},
	{"/dashboard", ZoneDashboard},
	{"/portal", ZonePortal},
	{"/login", ZoneAuthPages},
	{"/register", ZoneAuthPages},
}

// ClassifyPath maps a request path to its Zone. Unrecognized paths are
// public; prefixes only match at a path-segment boundary so that e.g.
// /administrivia is not the admin zone.
func ClassifyPath(path string) Zone {
	if path == "" {
		return ZonePublic
	}

	for _, zp := range zonePrefixes {
		if path == zp.prefix {
			return zp.zone
		}
		if strings.HasPrefix(path, zp.prefix+"/") {
			return zp.zone
		}
	}

	return ZonePublic
}
