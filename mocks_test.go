package access_test

import (
	"context"

	access "github.com/agencykit/go-access"
	"github.com/stretchr/testify/mock"
)

// MockIdentityStore implements access.IdentityStore for testing
type MockIdentityStore struct {
	mock.Mock
}

func (m *MockIdentityStore) FindByEmail(ctx context.Context, email string) (*access.User, error) {
	args := m.Called(ctx, email)
	if u := args.Get(0); u != nil {
		return u.(*access.User), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockIdentityStore) UpsertLinkedIdentity(ctx context.Context, user *access.User) (*access.User, error) {
	args := m.Called(ctx, user)
	if u := args.Get(0); u != nil {
		return u.(*access.User), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockTokenService implements access.TokenService for testing
type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) Generate(identity access.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}

func (m *MockTokenService) Validate(tokenString string) (*access.SessionClaims, error) {
	args := m.Called(tokenString)
	if c := args.Get(0); c != nil {
		return c.(*access.SessionClaims), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockLogger implements access.Logger for testing
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// MockIdentity implements access.Identity for testing
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Email() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Role() access.Role {
	args := m.Called()
	return args.Get(0).(access.Role)
}

func (m *MockIdentity) TenantID() string {
	args := m.Called()
	return args.String(0)
}
