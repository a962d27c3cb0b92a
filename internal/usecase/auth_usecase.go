// Package usecase defines the application's business logic interfaces and
// their input/output structures.
package usecase

import (
	"context"

	"authstarter/internal/domain/entity"
)

// RegisterInput carries the data required to create a new account.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// RegisterOutput carries the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginInput carries the credentials presented for verification.
type LoginInput struct {
	Email    string
	Password string
}

// LoginOutput carries the issued bearer token and the authenticated principal.
type LoginOutput struct {
	TokenType   string
	AccessToken string
	Principal   *entity.Principal
}

// AuthUsecase defines the application-level operations of the authentication core.
type AuthUsecase interface {
	// Register creates a new account with a hashed password. The email must
	// not already be in use.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login verifies credentials and issues a signed bearer token.
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)

	// AssignRole grants a named role to an account, creating the role on
	// first use. Granting an already-held role is a no-op.
	AssignRole(ctx context.Context, accountID int64, roleName string) error
}
