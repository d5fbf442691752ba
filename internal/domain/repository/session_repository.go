package repository

import (
	"context"
	"errors"

	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSessionNotFound is returned when an account has no session record.
var ErrSessionNotFound = errors.New("session not found")

// ErrSessionExists is returned when creating a session for an account that already has one.
var ErrSessionExists = errors.New("session already exists")

// SessionRepository manages the one-per-account session records and their
// login history.
type SessionRepository interface {
	// Create persists a fresh session with no logins. Returns
	// ErrSessionExists when the account already owns one.
	Create(ctx context.Context, accountID uuid.UUID) (*entity.Session, error)

	// FindByAccountID loads the session together with its login history.
	FindByAccountID(ctx context.Context, accountID uuid.UUID) (*entity.Session, error)

	// AppendLogin inserts a new history row carrying the refresh token and
	// mirrors it into the last-login snapshot.
	AppendLogin(ctx context.Context, accountID uuid.UUID, refreshToken string) error

	// RotateRefreshToken replaces the refresh token on the last-login
	// snapshot and on the most recent history row that still carries one.
	RotateRefreshToken(ctx context.Context, accountID uuid.UUID, refreshToken string) error

	// MarkLoggedOut stamps a logout time on the last-login snapshot and on
	// any history row still open.
	MarkLoggedOut(ctx context.Context, accountID uuid.UUID) error

	// StoreOTP overwrites the pending activation code.
	StoreOTP(ctx context.Context, accountID uuid.UUID, otp *entity.OTP) error

	// StoreResetOTP overwrites the pending password-reset code.
	StoreResetOTP(ctx context.Context, accountID uuid.UUID, otp *entity.OTP) error

	// ClearOTP removes the pending activation code after a successful confirm.
	ClearOTP(ctx context.Context, accountID uuid.UUID) error

	// ClearResetOTP removes the pending password-reset code.
	ClearResetOTP(ctx context.Context, accountID uuid.UUID) error
}
