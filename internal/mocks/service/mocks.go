// Package service provides hand-rolled testify mocks for the domain service
// interfaces.
package service

import (
	"github.com/stretchr/testify/mock"

	"authstarter/internal/domain/entity"
	"authstarter/internal/domain/service"
)

// MockPasswordHasher is a mock implementation of service.PasswordHasher.
type MockPasswordHasher struct {
	mock.Mock
}

func (m *MockPasswordHasher) Hash(password string) (string, error) {
	args := m.Called(password)

	return args.String(0), args.Error(1)
}

func (m *MockPasswordHasher) Check(password, hash string) bool {
	args := m.Called(password, hash)

	return args.Bool(0)
}

// MockTokenIssuer is a mock implementation of service.TokenIssuer.
type MockTokenIssuer struct {
	mock.Mock
}

func (m *MockTokenIssuer) Issue(principal *entity.Principal) (string, error) {
	args := m.Called(principal)

	return args.String(0), args.Error(1)
}

func (m *MockTokenIssuer) Parse(tokenString string) (*service.Claims, error) {
	args := m.Called(tokenString)
	if claims, ok := args.Get(0).(*service.Claims); ok {
		return claims, args.Error(1)
	}

	return nil, args.Error(1)
}
