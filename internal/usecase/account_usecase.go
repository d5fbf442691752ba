// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=64"`
	Password string `json:"password" validate:"required,min=8,max=128"`
	Fullname string `json:"fullname" validate:"max=255"`
	Address  string `json:"address" validate:"max=255"`
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshInput carries the presented refresh token together with the
// account id taken from the caller's verified access token.
type RefreshInput struct {
	AccountID    uuid.UUID
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// GoogleVerifyInput carries the raw Google ID token relayed by the client.
type GoogleVerifyInput struct {
	IDToken string `json:"idToken" validate:"required"`
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account's public information.
type RegisterOutput struct {
	Account *entity.Account
}

// TokenPairOutput returns the issued tokens after login, refresh or
// Google verification, together with the filtered account.
type TokenPairOutput struct {
	AccessToken  string
	RefreshToken string
	Account      *entity.Account
}

// AccountUsecase defines the interface for account and session business
// operations. This is the contract that the delivery layer depends on.
type AccountUsecase interface {
	// Register creates an inactive local account together with its session.
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)

	// Login authenticates a local account and issues a token pair.
	Login(ctx context.Context, input *LoginInput) (*TokenPairOutput, error)

	// Logout clears the stored refresh token and closes the open login.
	Logout(ctx context.Context, accountID uuid.UUID) error

	// Refresh rotates the refresh token and issues a new pair. The presented
	// token must match the one on record exactly.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPairOutput, error)

	// GoogleVerify signs a Google user in, creating the account on first contact.
	GoogleVerify(ctx context.Context, input *GoogleVerifyInput) (*TokenPairOutput, error)

	// Profile returns the filtered account of the authenticated caller.
	Profile(ctx context.Context, accountID uuid.UUID) (*entity.Account, error)
}
