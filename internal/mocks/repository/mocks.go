// Package repository provides hand-rolled testify mocks for the domain
// repository interfaces.
package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	"authstarter/internal/domain/entity"
	"authstarter/internal/domain/repository"
)

// MockAccountRepository is a mock implementation of repository.AccountRepository.
type MockAccountRepository struct {
	mock.Mock
}

func (m *MockAccountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	args := m.Called(ctx, id)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	args := m.Called(ctx, email)
	if account, ok := args.Get(0).(*entity.Account); ok {
		return account, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockAccountRepository) Create(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

func (m *MockAccountRepository) Update(ctx context.Context, account *entity.Account) error {
	args := m.Called(ctx, account)

	return args.Error(0)
}

// MockRoleRepository is a mock implementation of repository.RoleRepository.
type MockRoleRepository struct {
	mock.Mock
}

func (m *MockRoleRepository) FindByName(ctx context.Context, name string) (*entity.Role, error) {
	args := m.Called(ctx, name)
	if role, ok := args.Get(0).(*entity.Role); ok {
		return role, args.Error(1)
	}

	return nil, args.Error(1)
}

func (m *MockRoleRepository) Create(ctx context.Context, role *entity.Role) error {
	args := m.Called(ctx, role)

	return args.Error(0)
}

// StubRepositoryFactory hands out fixed repository instances, standing in for
// the transaction-bound factory.
type StubRepositoryFactory struct {
	AccountRepo repository.AccountRepository
	RoleRepo    repository.RoleRepository
}

func (f *StubRepositoryFactory) NewAccountRepository() repository.AccountRepository {
	return f.AccountRepo
}

func (f *StubRepositoryFactory) NewRoleRepository() repository.RoleRepository {
	return f.RoleRepo
}

// StubTransactionManager runs the callback immediately with the supplied
// factory, without any real transaction.
type StubTransactionManager struct {
	Factory repository.RepositoryFactory
}

func (tm *StubTransactionManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm.Factory)
}
