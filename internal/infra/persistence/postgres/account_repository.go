// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"authstarter/internal/domain/entity"
	domainerrors "authstarter/internal/domain/errors"
	"authstarter/internal/domain/repository"
	"authstarter/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain.AccountRepository interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its unique ID, preloading its granted roles.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Roles").
		First(&accountM, id).Error

	if err != nil {
		// If the error is 'record not found', return a domain-specific error.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	// Map the persistence model back to a pure domain entity before returning.
	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its email address, preloading its granted roles.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	err := repo.db.WithContext(ctx).
		Preload("Roles").
		Where("email = ?", email).
		First(&accountM).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account entity to the database. The unique index on
// email is the final arbiter of duplicates; a violation here surfaces as a
// domain error even when the pre-insert lookup missed a concurrent write.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("invalid role reference")
		}
		// For other database errors, return a generic database error
		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	// Update the account entity with the generated ID and timestamps
	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update modifies an existing account entity and replaces its role grants.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	// Save the account row itself without touching the join table, then
	// reconcile the role grants explicitly so removed roles are unlinked.
	if err := repo.db.WithContext(ctx).Omit("Roles").Save(accountM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyExists.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountUpdateFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}

	if err := repo.db.WithContext(ctx).
		Model(accountM).
		Association("Roles").
		Replace(accountM.Roles); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update account roles")
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// toAccountDomain maps a persistence model to a pure domain entity.
func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	roles := make([]entity.Role, 0, len(accountM.Roles))
	for _, roleM := range accountM.Roles {
		roles = append(roles, entity.Role{
			ID:   roleM.ID,
			Name: roleM.Name,
		})
	}

	return &entity.Account{
		ID:           accountM.ID,
		Username:     accountM.Username,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		Roles:        roles,
		CreatedAt:    accountM.CreatedAt,
		UpdatedAt:    accountM.UpdatedAt,
	}
}

// fromAccountDomain maps a pure domain entity to a persistence model.
func fromAccountDomain(account *entity.Account) *model.AccountModel {
	roles := make([]model.RoleModel, 0, len(account.Roles))
	for _, role := range account.Roles {
		roles = append(roles, model.RoleModel{
			ID:   role.ID,
			Name: role.Name,
		})
	}

	return &model.AccountModel{
		ID:           account.ID,
		Username:     account.Username,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Roles:        roles,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
}
