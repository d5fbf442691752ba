// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"cinelog/config"
	"cinelog/internal/domain/entity"
	"cinelog/internal/domain/service"
	"cinelog/internal/errors"
)

const (
	defaultAccessTTL  = 3 * time.Hour
	defaultRefreshTTL = 3 * 24 * time.Hour
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Access and refresh tokens share one signing secret; what distinguishes
// them is the claim shape and lifetime.
type jwtService struct {
	secret     []byte
	accessTTL  time.Duration
	refreshTTL time.Duration
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.JWT.Secret == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	accessTTL := cfg.JWT.AccessTTL
	if accessTTL <= 0 {
		accessTTL = defaultAccessTTL
	}
	refreshTTL := cfg.JWT.RefreshTTL
	if refreshTTL <= 0 {
		refreshTTL = defaultRefreshTTL
	}

	return &jwtService{
		secret:     []byte(cfg.JWT.Secret),
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
	}, nil
}

// GenerateAccessToken signs a short-lived token snapshotting the account's
// identity and authorization state at issue time.
func (s *jwtService) GenerateAccessToken(account *entity.Account) (string, error) {
	now := time.Now()
	claims := &service.AccessClaims{
		ID:       account.ID,
		Email:    account.Email,
		Username: account.Username,
		Role:     account.Role,
		Status:   account.Status,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// GenerateRefreshToken signs a long-lived token carrying only the account id
// and the issue timestamp.
func (s *jwtService) GenerateRefreshToken(account *entity.Account) (string, error) {
	now := time.Now()
	claims := &service.RefreshClaims{
		ID:        account.ID,
		RevokedAt: now.Unix(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.refreshTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return signed, nil
}

// VerifyAccessToken parses and validates an access token.
func (s *jwtService) VerifyAccessToken(tokenString string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := s.parseInto(tokenString, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// VerifyRefreshToken parses and validates a refresh token.
func (s *jwtService) VerifyRefreshToken(tokenString string) (*service.RefreshClaims, error) {
	claims := &service.RefreshClaims{}
	if err := s.parseInto(tokenString, claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// parseInto parses the token string into claims and collapses the parser's
// error tree into the three sentinel errors callers dispatch on. Expiry is
// checked before the signature errors so an expired-but-ours token is
// reported as expired.
func (s *jwtService) parseInto(tokenString string, claims jwt.Claims) error {
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenExpired):
			return service.ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenSignatureInvalid), errors.Is(err, jwt.ErrSignatureInvalid):
			return service.ErrTokenSignatureInvalid
		default:
			return service.ErrTokenMalformed
		}
	}
	if !token.Valid {
		return service.ErrTokenMalformed
	}

	return nil
}

// AccessTokenTTL returns the configured access token lifetime.
func (s *jwtService) AccessTokenTTL() time.Duration {
	return s.accessTTL
}

// RefreshTokenTTL returns the configured refresh token lifetime.
func (s *jwtService) RefreshTokenTTL() time.Duration {
	return s.refreshTTL
}
