// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "authstarter/internal/delivery/context"
	"authstarter/internal/domain/entity"
	domainerrors "authstarter/internal/domain/errors"
	"authstarter/internal/domain/repository"
	"authstarter/internal/domain/service"
	"authstarter/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	hasher      service.PasswordHasher
	tokenIssuer service.TokenIssuer
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	TokenIssuer service.TokenIssuer
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		hasher:      params.Hasher,
		tokenIssuer: params.TokenIssuer,
		logger:      params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
// The email lookup and the insert run in one transaction; the unique index
// on email still backstops concurrent registrations for the same address.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	var registeredAccount *entity.Account
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()

		_, err := accountRepo.FindByEmail(ctx, input.Email)
		if err == nil {
			srv.log(ctx).Warn("Registration rejected for registered email", slog.String("email", input.Email))

			return errors.Wrap(domainerrors.ErrEmailAlreadyExists, "email already registered")
		}
		if !errors.Is(err, repository.ErrAccountNotFound) {
			return errors.Wrap(err, "failed to check email availability")
		}

		hashedPassword, hashErr := srv.hasher.Hash(input.Password)
		if hashErr != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", hashErr))

			return errors.Wrap(hashErr, "failed to hash password during registration")
		}

		newAccount := &entity.Account{
			Username:     input.Username,
			Email:        input.Email,
			PasswordHash: hashedPassword,
		}
		if createErr := accountRepo.Create(ctx, newAccount); createErr != nil {
			return errors.Wrap(createErr, "failed to create account during registration")
		}

		registeredAccount = newAccount

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", registeredAccount.ID))

	return &usecase.RegisterOutput{Account: registeredAccount}, nil
}

// Login verifies the presented credentials and issues a signed bearer token.
// Unknown email and wrong password produce the same error externally; the
// logs keep the distinction for operators.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown email", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "account not found")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.Int64("accountID", account.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	principal := entity.NewPrincipal(account)

	accessToken, err := srv.tokenIssuer.Issue(principal)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, domainerrors.ErrTokenIssueFailed.WrapMessage("failed to issue access token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{
		TokenType:   service.TokenTypeBearer,
		AccessToken: accessToken,
		Principal:   principal,
	}, nil
}

// AssignRole grants a named role to an account, creating the role if it does
// not exist yet. Granting a role the account already holds changes nothing.
func (srv *authService) AssignRole(ctx context.Context, accountID int64, roleName string) error {
	srv.log(ctx).Info("Assigning role", slog.Int64("accountID", accountID), slog.String("role", roleName))

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.NewAccountRepository()
		roleRepo := repoFactory.NewRoleRepository()

		account, err := accountRepo.FindByID(ctx, accountID)
		if err != nil {
			if errors.Is(err, repository.ErrAccountNotFound) {
				return errors.Wrap(domainerrors.ErrAccountNotFound, "account not found for role assignment")
			}

			return errors.Wrap(err, "failed to load account for role assignment")
		}

		role, err := roleRepo.FindByName(ctx, roleName)
		if errors.Is(err, repository.ErrRoleNotFound) {
			role = &entity.Role{Name: roleName}
			if createErr := roleRepo.Create(ctx, role); createErr != nil {
				if !errors.Is(createErr, domainerrors.ErrRoleAlreadyExists) {
					return errors.Wrap(createErr, "failed to create role for assignment")
				}
				// A concurrent assignment created the role first; reload it.
				role, err = roleRepo.FindByName(ctx, roleName)
				if err != nil {
					return errors.Wrap(err, "failed to reload role after concurrent create")
				}
			}
		} else if err != nil {
			return errors.Wrap(err, "failed to find role by name")
		}

		if !account.AddRole(*role) {
			srv.log(ctx).Debug("Role already granted", slog.Int64("accountID", accountID), slog.String("role", roleName))

			return nil
		}

		if err := accountRepo.Update(ctx, account); err != nil {
			return errors.Wrap(err, "failed to persist role assignment")
		}

		return nil
	})

	if err != nil {
		srv.log(ctx).Error("Failed to execute role assignment transaction", slog.Int64("accountID", accountID), slog.String("role", roleName), slog.Any("error", err))

		return err
	}

	return nil
}
