// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session tracks the login state of a single account. Each account owns
// at most one session; repeated logins append to its history instead of
// creating new sessions.
type Session struct {
	ID        uuid.UUID     `json:"id"`        // The unique identifier for the session record.
	AccountID uuid.UUID     `json:"accountId"` // Links the session to the account it belongs to.
	LastLogin *LoginRecord  `json:"lastLogin"` // Snapshot of the most recent login, nil before the first one.
	History   []LoginRecord `json:"history"`
	OTP       *OTP          `json:"-"` // Pending activation code, nil when none has been issued. Never serialized.
	ResetOTP  *OTP          `json:"-"` // Pending password-reset code, kept separate from activation. Never serialized.
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

// LoginRecord is one entry in a session's login history.
type LoginRecord struct {
	ID           uuid.UUID  `json:"id"`          // The unique identifier for the history row.
	LoggedInAt   time.Time  `json:"loggedInAt"`  // When this login happened.
	LoggedOutAt  *time.Time `json:"loggedOutAt"` // When the login ended, nil while still open.
	RefreshToken string     `json:"-"`           // The refresh token issued for this login. Never serialized.
}

// OTP is a short-lived numeric verification code mailed to the account.
type OTP struct {
	Code      string    // Six decimal digits.
	ExpiresAt time.Time // Hard expiry, codes are single-use within this window.
}

// Expired reports whether the code is past its expiry at the given time.
func (o *OTP) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// Matches reports whether the presented code equals the stored one.
func (o *OTP) Matches(code string) bool {
	return o.Code == code
}
