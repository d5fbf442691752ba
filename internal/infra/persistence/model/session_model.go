package model

import (
	"time"

	"github.com/google/uuid"
)

// SessionModel mirrors the 'sessions' table. The unique AccountID index
// enforces the one-session-per-account rule at the database level. The
// last_* columns snapshot the most recent login; the full history lives
// in session_logins.
type SessionModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	AccountID uuid.UUID `gorm:"type:uuid;not null;unique"`

	LastLoggedInAt   *time.Time
	LastLoggedOutAt  *time.Time
	LastRefreshToken string `gorm:"type:text"`

	OTPCode      string `gorm:"type:varchar(6)"`
	OTPExpiresAt *time.Time

	ResetOTPCode      string `gorm:"type:varchar(6)"`
	ResetOTPExpiresAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time

	Logins []SessionLoginModel `gorm:"foreignKey:SessionID"`
}

// TableName explicitly sets the table name for GORM.
func (SessionModel) TableName() string {
	return "sessions"
}

// SessionLoginModel mirrors the append-only 'session_logins' table.
type SessionLoginModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	SessionID    uuid.UUID `gorm:"type:uuid;not null;index"`
	LoggedInAt   time.Time `gorm:"not null"`
	LoggedOutAt  *time.Time
	RefreshToken string `gorm:"type:text"`
	CreatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (SessionLoginModel) TableName() string {
	return "session_logins"
}
