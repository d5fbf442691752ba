package entity

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountJSON_NeverCarriesCredentialMaterial(t *testing.T) {
	account := &Account{
		ID:           uuid.New(),
		Email:        "user@example.com",
		Username:     "moviefan",
		Password:     "$2a$10$bcrypthashbcrypthashbcrypthash",
		Fullname:     "Movie Fan",
		Role:         RoleUser,
		Status:       AccountStatusActive,
		Type:         AccountTypeLocal,
		RefreshToken: "some.refresh.token",
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}

	encoded, err := json.Marshal(account.Filtered())
	require.NoError(t, err)

	var payload map[string]any
	require.NoError(t, json.Unmarshal(encoded, &payload))

	assert.NotContains(t, payload, "Password")
	assert.NotContains(t, payload, "password")
	assert.NotContains(t, payload, "RefreshToken")
	assert.NotContains(t, payload, "refreshToken")

	assert.Equal(t, "user@example.com", payload["email"])
	assert.Equal(t, "moviefan", payload["username"])
	assert.Equal(t, "active", payload["status"])
	assert.Contains(t, payload, "createdAt")
}

func TestAccountJSON_CredentialKeysAbsentEvenUnfiltered(t *testing.T) {
	account := &Account{
		Email:        "user@example.com",
		Password:     "hash",
		RefreshToken: "token",
	}

	encoded, err := json.Marshal(account)
	require.NoError(t, err)

	assert.NotContains(t, string(encoded), "hash")
	assert.NotContains(t, string(encoded), "token")
}

func TestSessionJSON_HidesOTPAndRefreshTokens(t *testing.T) {
	now := time.Now()
	session := &Session{
		ID:        uuid.New(),
		AccountID: uuid.New(),
		LastLogin: &LoginRecord{LoggedInAt: now, RefreshToken: "rotating.token"},
		History:   []LoginRecord{{LoggedInAt: now, RefreshToken: "rotating.token"}},
		OTP:       &OTP{Code: "123456", ExpiresAt: now.Add(time.Minute)},
	}

	encoded, err := json.Marshal(session)
	require.NoError(t, err)

	assert.NotContains(t, string(encoded), "123456")
	assert.NotContains(t, string(encoded), "rotating.token")
	assert.Contains(t, string(encoded), "lastLogin")
}
