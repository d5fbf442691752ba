// Package model holds the GORM table mappings for the persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// AccountModel mirrors the 'accounts' table. PostgreSQL generates UUIDs via uuid_generate_v7().
// Email is unique per account type so a local and a google account may share an address.
type AccountModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);not null;uniqueIndex:idx_accounts_email_type"`
	Type         string    `gorm:"type:varchar(20);not null;default:'local';uniqueIndex:idx_accounts_email_type"`
	Username     string    `gorm:"type:varchar(100);unique;not null"`
	Password     string    `gorm:"type:varchar(255);not null"`
	Fullname     string    `gorm:"type:varchar(255)"`
	Address      string    `gorm:"type:varchar(255)"`
	Role         string    `gorm:"type:varchar(20);not null;default:'user'"`
	Status       string    `gorm:"type:varchar(20);not null;default:'inactive'"`
	RefreshToken string    `gorm:"type:text"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	Session *SessionModel `gorm:"foreignKey:AccountID"`
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
