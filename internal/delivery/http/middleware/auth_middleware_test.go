package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"cinelog/internal/domain/entity"
	domainerrors "cinelog/internal/domain/errors"
	"cinelog/internal/domain/service"
	mockSvc "cinelog/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/movie/refresh-genres", nil)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec)
}

func requireAppError(t *testing.T, err error) domainerrors.AppError {
	t.Helper()

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))

	return appErr
}

func TestRequireRole_AllowsMatchingRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newTestContext(t)
	c.Set(KeyClaims, &service.AccessClaims{ID: uuid.New(), Role: entity.RoleAdmin})

	called := false
	err := m.RequireRole(entity.RoleAdmin.String())(func(c echo.Context) error {
		called = true

		return nil
	})(c)

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRequireRole_RejectsOtherRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newTestContext(t)
	c.Set(KeyClaims, &service.AccessClaims{ID: uuid.New(), Role: entity.RoleUser})

	err := m.RequireRole(entity.RoleAdmin.String())(func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	appErr := requireAppError(t, err)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
	assert.Equal(t, http.StatusForbidden, appErr.HTTPCode())
}

func TestRequireRole_RejectsMissingClaims(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	c := newTestContext(t)

	err := m.RequireRole(entity.RoleAdmin.String())(func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	appErr := requireAppError(t, err)
	assert.Equal(t, "FORBIDDEN", appErr.ErrorCode())
}

func TestAuthenticate_ExpiredTokenReportedDistinctly(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().
		VerifyAccessToken("stale.token").
		Return(nil, service.ErrTokenExpired)

	m := NewAuthMiddleware(tokenSvc)

	c := newTestContext(t)
	c.Request().Header.Set(echo.HeaderAuthorization, "Bearer stale.token")

	err := m.Authenticate(func(c echo.Context) error {
		t.Fatal("handler must not run")

		return nil
	})(c)

	appErr := requireAppError(t, err)
	assert.Equal(t, domainerrors.ErrTokenExpired.ErrorCode(), appErr.ErrorCode())
}
