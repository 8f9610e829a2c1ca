package access

// Config carries the immutable settings for the access core. It is a plain
// value injected at construction so tests can run with synthetic secrets
// instead of reading process-wide environment state at call time.
type Config struct {
	// SigningKey signs session tokens. Required.
	SigningKey string
	// TokenExpiration is the session TTL in hours. Zero means 24.
	TokenExpiration int
	// ExtendedTokenDuration is the remember-me TTL in hours
	ExtendedTokenDuration int
	// Issuer and Audience are embedded in and checked against tokens
	Issuer   string
	Audience []string
	// ContextKey is where middleware stores decoded claims
	ContextKey string
	// TokenLookup configures extraction, e.g. "cookie:session,header:Authorization"
	TokenLookup string
	// AuthScheme prefixes header tokens, usually "Bearer"
	AuthScheme string
	// RejectedRouteKey names the cookie that preserves the originally
	// requested URL across a login redirect
	RejectedRouteKey string
	// RejectedRouteDefault is where we send users when no rejected route
	// cookie is present
	RejectedRouteDefault string
	// WebhookSecret keys inbound payload signatures. Empty disables
	// verification unless RequireSignature is set.
	WebhookSecret string
	// RequireSignature makes an empty WebhookSecret a construction error
	// instead of trust-all mode
	RequireSignature bool
}

const defaultTokenExpiration = 24

func (c Config) GetSigningKey() string { return c.SigningKey }

func (c Config) GetTokenExpiration() int {
	if c.TokenExpiration <= 0 {
		return defaultTokenExpiration
	}
	return c.TokenExpiration
}

func (c Config) GetExtendedTokenDuration() int { return c.ExtendedTokenDuration }

func (c Config) GetIssuer() string { return c.Issuer }

func (c Config) GetAudience() []string { return c.Audience }

func (c Config) GetContextKey() string {
	if c.ContextKey == "" {
		return "session"
	}
	return c.ContextKey
}

func (c Config) GetTokenLookup() string {
	if c.TokenLookup == "" {
		return "cookie:" + c.GetContextKey() + ",header:Authorization"
	}
	return c.TokenLookup
}

func (c Config) GetAuthScheme() string {
	if c.AuthScheme == "" {
		return "Bearer"
	}
	return c.AuthScheme
}

func (c Config) GetRejectedRouteKey() string {
	if c.RejectedRouteKey == "" {
		return "rejected_route"
	}
	return c.RejectedRouteKey
}

func (c Config) GetRejectedRouteDefault() string {
	if c.RejectedRouteDefault == "" {
		return "/"
	}
	return c.RejectedRouteDefault
}
