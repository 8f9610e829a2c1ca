package access_test

import (
	"testing"

	access "github.com/agencykit/go-access"
	"github.com/stretchr/testify/assert"
)

func TestConfig_Defaults(t *testing.T) {
	cfg := access.Config{SigningKey: "k"}

	assert.Equal(t, "k", cfg.GetSigningKey())
	assert.Equal(t, 24, cfg.GetTokenExpiration())
	assert.Equal(t, "session", cfg.GetContextKey())
	assert.Equal(t, "cookie:session,header:Authorization", cfg.GetTokenLookup())
	assert.Equal(t, "Bearer", cfg.GetAuthScheme())
	assert.Equal(t, "rejected_route", cfg.GetRejectedRouteKey())
	assert.Equal(t, "/", cfg.GetRejectedRouteDefault())
}

func TestConfig_Overrides(t *testing.T) {
	cfg := access.Config{
		SigningKey:           "k",
		TokenExpiration:      2,
		Issuer:               "agencykit",
		Audience:             []string{"web"},
		ContextKey:           "sid",
		AuthScheme:           "Token",
		RejectedRouteKey:     "return_to",
		RejectedRouteDefault: "/dashboard",
	}

	assert.Equal(t, 2, cfg.GetTokenExpiration())
	assert.Equal(t, "agencykit", cfg.GetIssuer())
	assert.Equal(t, []string{"web"}, cfg.GetAudience())
	assert.Equal(t, "sid", cfg.GetContextKey())
	assert.Equal(t, "cookie:sid,header:Authorization", cfg.GetTokenLookup())
	assert.Equal(t, "Token", cfg.GetAuthScheme())
	assert.Equal(t, "return_to", cfg.GetRejectedRouteKey())
	assert.Equal(t, "/dashboard", cfg.GetRejectedRouteDefault())
}

func TestConfig_NegativeExpirationFallsBack(t *testing.T) {
	cfg := access.Config{SigningKey: "k", TokenExpiration: -5}
	assert.Equal(t, 24, cfg.GetTokenExpiration())
}
