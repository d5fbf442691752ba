package middleware

import (
	"strings"

	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	// KeyAccountID is the echo.Context key holding the caller's account id.
	KeyAccountID = "accountID"

	// KeyClaims is the echo.Context key holding the verified access claims.
	KeyClaims = "claims"
)

// AuthMiddleware validates bearer access tokens and exposes the verified
// claims to handlers.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate verifies the Authorization header and stores the claims on
// the request context. An expired token is reported distinctly so clients
// know to refresh instead of re-authenticating.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrAccessDenied.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrAccessDenied.WithDetails("Authorization header must carry a Bearer token")
		}

		claims, err := m.tokenSvc.VerifyAccessToken(tokenString)
		if err != nil {
			if errors.Is(err, service.ErrTokenExpired) {
				return domainerrors.ErrTokenExpired
			}

			return domainerrors.ErrTokenInvalid
		}

		c.Set(KeyAccountID, claims.ID)
		c.Set(KeyClaims, claims)

		return next(c)
	}
}

// RequireRole gates a route on the role carried by the access token.
// It must run after Authenticate.
func (m *AuthMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			claims, ok := c.Get(KeyClaims).(*service.AccessClaims)
			if !ok {
				return domainerrors.ErrForbidden.WithDetails("role information missing")
			}

			if string(claims.Role) != requiredRole {
				return domainerrors.ErrForbidden.WithDetails("requires '" + requiredRole + "' role")
			}

			return next(c)
		}
	}
}

// AccountID extracts the authenticated caller's account id from the
// request context. It is only valid after Authenticate has run.
func AccountID(c echo.Context) (uuid.UUID, error) {
	accountID, ok := c.Get(KeyAccountID).(uuid.UUID)
	if !ok {
		return uuid.Nil, domainerrors.ErrAccessDenied.WithDetails("account id missing from request context")
	}

	return accountID, nil
}
