package auth

import (
	"testing"
	"time"

	"cinelog/config"
	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_jwt_secret_key_very_long_for_testing"
	cfg.JWT.AccessTTL = 3 * time.Hour
	cfg.JWT.RefreshTTL = 72 * time.Hour

	return cfg
}

func testAccount() *entity.Account {
	return &entity.Account{
		ID:       uuid.New(),
		Email:    "viewer@example.com",
		Username: "viewer",
		Role:     entity.RoleUser,
		Status:   entity.AccountStatusActive,
	}
}

func TestJWTService_GenerateAndVerifyAccessToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)
	require.NotNil(t, jwtService)

	account := testAccount()

	accessToken, err := jwtService.GenerateAccessToken(account)
	require.NoError(t, err)
	assert.NotEmpty(t, accessToken)

	claims, err := jwtService.VerifyAccessToken(accessToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.ID)
	assert.Equal(t, account.Email, claims.Email)
	assert.Equal(t, account.Username, claims.Username)
	assert.Equal(t, entity.RoleUser, claims.Role)
	assert.Equal(t, entity.AccountStatusActive, claims.Status)
}

func TestJWTService_GenerateAndVerifyRefreshToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	account := testAccount()

	refreshToken, err := jwtService.GenerateRefreshToken(account)
	require.NoError(t, err)
	assert.NotEmpty(t, refreshToken)

	claims, err := jwtService.VerifyRefreshToken(refreshToken)
	require.NoError(t, err)
	assert.Equal(t, account.ID, claims.ID)
	assert.NotZero(t, claims.RevokedAt)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig()
	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	// Sign an already expired token with the same secret.
	now := time.Now()
	expired := &service.AccessClaims{
		ID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now.Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(now.Add(-time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, expired).SignedString([]byte(cfg.JWT.Secret))
	require.NoError(t, err)

	claims, err := jwtService.VerifyAccessToken(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenExpired)
}

func TestJWTService_TamperedSignature(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	// Sign with a different secret so the signature check fails.
	foreign := &service.AccessClaims{
		ID: uuid.New(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, foreign).SignedString([]byte("some_other_secret_entirely"))
	require.NoError(t, err)

	claims, err := jwtService.VerifyAccessToken(signed)
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenSignatureInvalid)
}

func TestJWTService_MalformedToken(t *testing.T) {
	jwtService, err := NewJWTService(testConfig())
	require.NoError(t, err)

	claims, err := jwtService.VerifyAccessToken("clearly-not-a-jwt-token-format")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, service.ErrTokenMalformed)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := &config.Config{}

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTTLs(t *testing.T) {
	cfg := &config.Config{}
	cfg.JWT.Secret = "test_jwt_secret_key_very_long_for_testing"

	jwtService, err := NewJWTService(cfg)
	require.NoError(t, err)

	assert.Equal(t, 3*time.Hour, jwtService.AccessTokenTTL())
	assert.Equal(t, 72*time.Hour, jwtService.RefreshTokenTTL())
}
