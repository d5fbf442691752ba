// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AccountStatus represents the activation state of an account.
type AccountStatus string

const (
	// AccountStatusActive indicates the account has confirmed its email.
	AccountStatusActive AccountStatus = "active"
	// AccountStatusInactive indicates the account has not yet been activated.
	AccountStatusInactive AccountStatus = "inactive"
)

// String returns the string representation of the AccountStatus.
func (s AccountStatus) String() string {
	return string(s)
}

// IsValid checks if the AccountStatus is a valid value.
func (s AccountStatus) IsValid() bool {
	switch s {
	case AccountStatusActive, AccountStatusInactive:
		return true
	default:
		return false
	}
}

// AccountType represents the credential origin of an account.
type AccountType string

const (
	// AccountTypeLocal indicates an email/password account.
	AccountTypeLocal AccountType = "local"
	// AccountTypeGoogle indicates an account created through Google sign-in.
	AccountTypeGoogle AccountType = "google"
)

// String returns the string representation of the AccountType.
func (t AccountType) String() string {
	return string(t)
}

// IsValid checks if the AccountType is a valid value.
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeLocal, AccountTypeGoogle:
		return true
	default:
		return false
	}
}

// Account is the core identity entity. An email may appear once per
// account type, so a local and a Google account can share an address.
type Account struct {
	ID           uuid.UUID     `json:"id"`        // The unique identifier for the account.
	Email        string        `json:"email"`     // Login identifier, unique per account type.
	Username     string        `json:"username"`  // Public display handle, globally unique.
	Password     string        `json:"-"`         // The bcrypt-hashed credential. Never serialized.
	Fullname     string        `json:"fullname"`  // Optional real name.
	Address      string        `json:"address"`   // Optional mailing address.
	Role         Role          `json:"role"`      // Authorization role, defaults to RoleUser.
	Status       AccountStatus `json:"status"`    // Activation state, local accounts start inactive.
	Type         AccountType   `json:"type"`      // Credential origin, local or google.
	RefreshToken string        `json:"-"`         // The currently valid refresh token. Never serialized.
	CreatedAt    time.Time     `json:"createdAt"` // Timestamp of account creation.
	UpdatedAt    time.Time     `json:"updatedAt"` // Timestamp of the last modification.
}

// Filtered returns a copy safe for API responses, with credential
// material blanked out.
func (a *Account) Filtered() *Account {
	clone := *a
	clone.Password = ""
	clone.RefreshToken = ""

	return &clone
}

// IsActive reports whether the account may log in.
func (a *Account) IsActive() bool {
	return a.Status == AccountStatusActive
}
