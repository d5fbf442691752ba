// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// ErrDuplicateAccount is returned when a unique email or username constraint is violated.
var ErrDuplicateAccount = errors.New("account already exists")

// AccountRepository defines the standard operations for account persistence.
// The application layer will depend on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Account, error)

	// FindByEmailAndType retrieves an account by email within one credential
	// origin, so local and Google accounts with the same email stay distinct.
	FindByEmailAndType(ctx context.Context, email string, accountType entity.AccountType) (*entity.Account, error)

	// FindByUsername retrieves a single account by its username.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account. Returns ErrDuplicateAccount when the
	// email or username is already taken.
	Create(ctx context.Context, account *entity.Account) error

	// UpdateRefreshToken unconditionally replaces the stored refresh token.
	// An empty token clears it (logout).
	UpdateRefreshToken(ctx context.Context, id uuid.UUID, token string) error

	// SwapRefreshToken replaces the stored refresh token only when it still
	// equals previous. Returns false when no row matched, which means a
	// concurrent refresh already rotated it.
	SwapRefreshToken(ctx context.Context, id uuid.UUID, previous, next string) (bool, error)

	// UpdateStatus changes the activation state of an account.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.AccountStatus) error

	// UpdatePassword replaces the stored password hash.
	UpdatePassword(ctx context.Context, id uuid.UUID, hashed string) error
}
