package access

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	goerrors "github.com/goliatone/go-errors"
)

// minPasswordLength is the shortest password we will even look up
const minPasswordLength = 8

// Auther resolves credentials into identities and mints session tokens
type Auther struct {
	store        IdentityStore
	tokenService TokenService
	logger       Logger
}

// NewAuthenticator returns a new Authenticator backed by the given store
func NewAuthenticator(store IdentityStore, cfg Config) *Auther {
	tokenService := NewTokenService(
		[]byte(cfg.GetSigningKey()),
		cfg.GetTokenExpiration(),
		cfg.GetIssuer(),
		cfg.GetAudience(),
		defLogger{},
	)

	return &Auther{
		store:        store,
		tokenService: tokenService,
		logger:       defLogger{},
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	s.logger = logger
	return s
}

// WithTokenService overrides the token service, e.g. for custom TTLs
func (s *Auther) WithTokenService(tokenService TokenService) *Auther {
	s.tokenService = tokenService
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

type credentialPayload struct {
	Email    string
	Password string
}

func (p credentialPayload) Validate() error {
	return validation.ValidateStruct(&p,
		validation.Field(
			&p.Email,
			validation.Required,
			is.Email,
		),
		validation.Field(
			&p.Password,
			validation.Required,
			validation.Length(minPasswordLength, 0),
		),
	)
}

// Authenticate verifies an email and password pair and returns the resolved
// Identity. Malformed input, unknown email, credential-less account, and
// password mismatch all surface as ErrInvalidCredentials; the miss paths
// still burn a bcrypt comparison so response timing does not reveal whether
// the account exists.
func (s *Auther) Authenticate(ctx context.Context, email, password string) (Identity, error) {
	email = NormalizeEmail(email)

	payload := credentialPayload{Email: email, Password: password}
	if err := payload.Validate(); err != nil {
		s.logger.Debug("authenticate rejected malformed credentials", "error", err)
		return nil, ErrInvalidCredentials
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if goerrors.IsNotFound(err) || err == ErrIdentityNotFound {
			CompareDummyHash(password)
			return nil, ErrInvalidCredentials
		}
		s.logger.Error("authenticate store lookup failed", "error", err)
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to retrieve user during verification")
	}

	if !user.HasCredential() {
		// OAuth-only account, same outcome and cost as a mismatch
		CompareDummyHash(password)
		return nil, ErrInvalidCredentials
	}

	if !VerifyPassword(password, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.Role.IsValid() {
		s.logger.Error("authenticate user has invalid role", "user_id", user.ID.String(), "role", user.Role)
		return nil, goerrors.New("user has an unknown or invalid role", goerrors.CategoryAuth).
			WithTextCode("INVALID_ROLE").
			WithMetadata(map[string]any{"user_id": user.ID.String()})
	}

	return user.Identity(), nil
}

// Login authenticates a credential pair and on success mints a signed
// session token for the client to hold
func (s *Auther) Login(ctx context.Context, email, password string) (string, Identity, error) {
	identity, err := s.Authenticate(ctx, email, password)
	if err != nil {
		s.logger.Debug("login failed", "error", err)
		return "", nil, err
	}

	token, err := s.tokenService.Generate(identity)
	if err != nil {
		s.logger.Error("login token generation failed", "error", err)
		return "", nil, goerrors.Wrap(err, goerrors.CategoryInternal, "failed to generate session token")
	}

	return token, identity, nil
}

// ClaimsFromToken decodes and verifies a session token. The claims are
// trusted as-is; no store lookup happens here.
func (s *Auther) ClaimsFromToken(raw string) (*SessionClaims, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		s.logger.Debug("claims from token validation failed", "error", err)
		return nil, err
	}
	return claims, nil
}

var _ Authenticator = (*Auther)(nil)

// NormalizeEmail lowercases and trims an email identifier
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
