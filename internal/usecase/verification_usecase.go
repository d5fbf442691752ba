package usecase

import (
	"context"

	"github.com/google/uuid"
)

// SendOTPInput identifies the account the code is mailed to.
type SendOTPInput struct {
	Email string `json:"email" validate:"required,email"`
}

// ConfirmOTPInput carries the emailed code back for verification.
type ConfirmOTPInput struct {
	Email string `json:"email" validate:"required,email"`
	OTP   string `json:"otp" validate:"required,len=6,numeric"`
}

// ResetPasswordInput carries the replacement password for the
// authenticated caller.
type ResetPasswordInput struct {
	AccountID   uuid.UUID
	NewPassword string `json:"newPassword" validate:"required,min=8,max=128"`
}

// VerificationUsecase covers the OTP-driven flows: account activation
// and password reset.
type VerificationUsecase interface {
	// SendActivationOTP mails a fresh activation code and stores it on the session.
	SendActivationOTP(ctx context.Context, input *SendOTPInput) error

	// ConfirmActivationOTP checks the code and flips the account to active.
	ConfirmActivationOTP(ctx context.Context, input *ConfirmOTPInput) error

	// SendResetOTP mails a fresh password-reset code.
	SendResetOTP(ctx context.Context, input *SendOTPInput) error

	// ConfirmResetOTP checks the password-reset code without consuming the account state.
	ConfirmResetOTP(ctx context.Context, input *ConfirmOTPInput) error

	// ResetPassword re-hashes and stores the new password for the caller.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
