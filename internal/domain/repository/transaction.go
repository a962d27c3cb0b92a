package repository

import "context"

// TransactionManager defines the interface for managing database transactions.
// This lets the use case layer scope multi-step work to a single transaction
// without depending on a specific DB driver.
type TransactionManager interface {
	// Execute runs a function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// Otherwise, it is committed. All repository instances obtained from
	// the factory share the same transaction.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific
// transaction.
type RepositoryFactory interface {
	// NewAccountRepository returns an AccountRepository bound to the current transaction.
	NewAccountRepository() AccountRepository

	// NewRoleRepository returns a RoleRepository bound to the current transaction.
	NewRoleRepository() RoleRepository
}
