// Package usecase provides hand-rolled testify mocks for the application
// usecase interfaces.
package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"authstarter/internal/usecase"
)

// MockAuthUsecase is a mock implementation of usecase.AuthUsecase.
type MockAuthUsecase struct {
	mock.Mock
}

func (m *MockAuthUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.RegisterOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	args := m.Called(ctx, input)
	if out, ok := args.Get(0).(*usecase.LoginOutput); ok {
		return out, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAuthUsecase) AssignRole(ctx context.Context, accountID int64, roleName string) error {
	args := m.Called(ctx, accountID, roleName)

	return args.Error(0)
}
