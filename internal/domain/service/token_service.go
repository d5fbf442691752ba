package service

import (
	"errors"
	"time"

	"cinelog/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Verification failures are collapsed into exactly one of these three,
// so callers can tell an expired token (re-authenticate) apart from a
// forged or garbled one (reject).
var (
	// ErrTokenExpired means the token was well-formed and signed by us but is past its expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenSignatureInvalid means the signature does not match our secret.
	ErrTokenSignatureInvalid = errors.New("token signature invalid")
	// ErrTokenMalformed means the string is not a parseable JWT.
	ErrTokenMalformed = errors.New("token malformed")
)

// AccessClaims is the payload carried by access tokens. It snapshots the
// account at issue time; handlers read it from the request context and
// must treat it as immutable.
type AccessClaims struct {
	ID       uuid.UUID            `json:"id"`
	Email    string               `json:"email"`
	Username string               `json:"username"`
	Role     entity.Role          `json:"role"`
	Status   entity.AccountStatus `json:"status"`
	jwt.RegisteredClaims
}

// RefreshClaims is the payload carried by refresh tokens. RevokedAt is
// the issue timestamp; revocation itself happens by rotating the stored
// token, not by consulting this field.
type RefreshClaims struct {
	ID        uuid.UUID `json:"id"`
	RevokedAt int64     `json:"revokedAt"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying JWTs.
// This abstracts the details of token creation from the use cases.
type TokenService interface {
	// GenerateAccessToken signs a short-lived token carrying the account snapshot.
	GenerateAccessToken(account *entity.Account) (string, error)

	// GenerateRefreshToken signs a long-lived token carrying only the account id.
	GenerateRefreshToken(account *entity.Account) (string, error)

	// VerifyAccessToken parses and validates an access token.
	// Failures map to ErrTokenExpired, ErrTokenSignatureInvalid or ErrTokenMalformed.
	VerifyAccessToken(tokenString string) (*AccessClaims, error)

	// VerifyRefreshToken parses and validates a refresh token with the same
	// error contract as VerifyAccessToken.
	VerifyRefreshToken(tokenString string) (*RefreshClaims, error)

	// AccessTokenTTL returns the configured access token lifetime.
	AccessTokenTTL() time.Duration

	// RefreshTokenTTL returns the configured refresh token lifetime.
	RefreshTokenTTL() time.Duration
}
