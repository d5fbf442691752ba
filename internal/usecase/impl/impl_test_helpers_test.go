package impl

import (
	"io"
	"log/slog"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/entity"

	"github.com/google/uuid"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestOTPConfig(ttl, sendInterval time.Duration) *config.Config {
	return &config.Config{
		OTP: &config.OTPConfig{
			TTL:          ttl,
			SendInterval: sendInterval,
		},
	}
}

func newActiveLocalAccount() *entity.Account {
	return &entity.Account{
		ID:       uuid.New(),
		Email:    "viewer@example.com",
		Username: "viewer",
		Password: "hashed_password",
		Role:     entity.RoleUser,
		Status:   entity.AccountStatusActive,
		Type:     entity.AccountTypeLocal,
	}
}

func newInactiveLocalAccount() *entity.Account {
	account := newActiveLocalAccount()
	account.Status = entity.AccountStatusInactive

	return account
}
