// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers
// and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"authstarter/internal/domain/entity"
)

// Domain-specific lookup errors. The application layer handles these
// without depending on database-specific error values.
var (
	// ErrAccountNotFound is returned when no account matches a lookup.
	ErrAccountNotFound = errors.New("account not found")
	// ErrRoleNotFound is returned when no role matches a lookup.
	ErrRoleNotFound = errors.New("role not found")
)

// AccountRepository defines the standard operations for account persistence.
// Email uniqueness is enforced by the storage layer itself; Create surfaces
// a concurrent duplicate as a domain error, making the service-level
// pre-check an optimization rather than the enforcement mechanism.
type AccountRepository interface {
	// FindByID retrieves a single account by its identifier, roles included.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail retrieves a single account by its email address, roles included.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// Create persists a new account and writes the assigned id and
	// timestamps back onto the entity.
	Create(ctx context.Context, account *entity.Account) error

	// Update persists mutations to an existing account, including its role set.
	Update(ctx context.Context, account *entity.Account) error
}

// RoleRepository defines the operations for role reference data.
type RoleRepository interface {
	// FindByName retrieves a role by its unique name.
	FindByName(ctx context.Context, name string) (*entity.Role, error)

	// Create persists a new role and writes the assigned id back onto the entity.
	Create(ctx context.Context, role *entity.Role) error
}
