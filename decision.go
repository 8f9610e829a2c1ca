package access

// DecisionKind discriminates the possible outcomes of a zone decision
type DecisionKind string

const (
	// DecisionAllow lets the request proceed to its handler
	DecisionAllow DecisionKind = "allow"
	// DecisionDeny rejects the request because no session is present
	DecisionDeny DecisionKind = "deny_unauthenticated"
	// DecisionRedirect sends the caller to the zone their role permits
	DecisionRedirect DecisionKind = "redirect"
)

// AccessDecision is the outcome of evaluating a zone against session claims.
// Target is only set for redirect decisions.
type AccessDecision struct {
	Kind   DecisionKind
	Target Zone
}

// Allowed reports whether the request may proceed
func (d AccessDecision) Allowed() bool {
	return d.Kind == DecisionAllow
}

// Denied reports whether the request was rejected for lack of a session
func (d AccessDecision) Denied() bool {
	return d.Kind == DecisionDeny
}

// Redirected reports whether the caller should be sent elsewhere
func (d AccessDecision) Redirected() bool {
	return d.Kind == DecisionRedirect
}

func allow() AccessDecision {
	return AccessDecision{Kind: DecisionAllow}
}

func denyUnauthenticated() AccessDecision {
	return AccessDecision{Kind: DecisionDeny}
}

func redirectTo(zone Zone) AccessDecision {
	return AccessDecision{Kind: DecisionRedirect, Target: zone}
}

// Decide evaluates the decision table for a single zone and the caller's
// session state. Claims may be nil when no session token was presented. A
// request is only ever evaluated against one zone's rule, and a missing
// session short-circuits before any redirect logic runs.
func Decide(zone Zone, claims *SessionClaims) AccessDecision {
	switch zone {
	case ZoneAdmin:
		if claims == nil {
			return denyUnauthenticated()
		}
		if claims.Role() != RoleAdmin {
			return redirectTo(ZoneDashboard)
		}
		return allow()

	case ZoneDashboard:
		if claims == nil {
			return denyUnauthenticated()
		}
		if claims.Role() == RoleClient {
			return redirectTo(ZonePortal)
		}
		return allow()

	case ZonePortal:
		if claims == nil {
			return denyUnauthenticated()
		}
		return allow()

	case ZoneAuthPages:
		if claims == nil {
			return allow()
		}
		if claims.Role() == RoleClient {
			return redirectTo(ZonePortal)
		}
		return redirectTo(ZoneDashboard)

	default:
		return allow()
	}
}
