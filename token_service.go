package access

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenServiceImpl implements the TokenService interface
type TokenServiceImpl struct {
	signingKey      []byte
	tokenExpiration int
	issuer          string
	audience        jwt.ClaimStrings
	logger          Logger
}

// NewTokenService creates a new TokenService instance
func NewTokenService(signingKey []byte, tokenExpiration int, issuer string, audience jwt.ClaimStrings, logger Logger) *TokenServiceImpl {
	if logger == nil {
		logger = defLogger{}
	}
	if tokenExpiration <= 0 {
		tokenExpiration = defaultTokenExpiration
	}
	return &TokenServiceImpl{
		signingKey:      signingKey,
		tokenExpiration: tokenExpiration,
		issuer:          issuer,
		audience:        audience,
		logger:          logger,
	}
}

// Generate creates a session token carrying the identity's role and tenant
func (ts *TokenServiceImpl) Generate(identity Identity) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    ts.issuer,
			Subject:   identity.ID(),
			Audience:  ts.audience,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(ts.tokenExpiration) * time.Hour)),
		},
		UID:      identity.ID(),
		UserRole: identity.Role(),
		Tenant:   identity.TenantID(),
	}

	return ts.SignClaims(claims)
}

// SignClaims signs session claims using the configured signing key
func (ts *TokenServiceImpl) SignClaims(claims *SessionClaims) (string, error) {
	if claims == nil {
		return "", fmt.Errorf("claims must not be nil")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signedString, err := token.SignedString(ts.signingKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign session token: %w", err)
	}

	return signedString, nil
}

// Validate parses and validates a token string, returning session claims.
// Every failure mode collapses into ErrTokenInvalid: a caller cannot tell a
// tampered token from an expired or malformed one. The underlying cause is
// logged for operators only.
func (ts *TokenServiceImpl) Validate(tokenString string) (*SessionClaims, error) {
	parserOptions := make([]jwt.ParserOption, 0, 2)
	if ts.issuer != "" {
		parserOptions = append(parserOptions, jwt.WithIssuer(ts.issuer))
	}
	if len(ts.audience) > 0 {
		parserOptions = append(parserOptions, jwt.WithAudience(ts.audience...))
	}

	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			ts.logger.Error("TokenService validate encountered unexpected signing method", "alg", t.Header["alg"])
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.signingKey, nil
	}, parserOptions...)

	if err != nil {
		ts.logger.Debug("TokenService validate rejected token", "cause", err)
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*SessionClaims)
	if !ok || !token.Valid {
		ts.logger.Error("TokenService validate could not decode claims")
		return nil, ErrTokenInvalid
	}

	if !claims.UserRole.IsValid() {
		ts.logger.Debug("TokenService validate rejected token", "cause", "unknown role")
		return nil, ErrTokenInvalid
	}

	return claims, nil
}

var _ TokenService = (*TokenServiceImpl)(nil)
