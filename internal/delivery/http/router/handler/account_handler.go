// Package handler contains the HTTP handlers for the application.
package handler

import (
	"net/http"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/response"
	"cinelog/internal/domain/entity"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// tokenPairResponse is the JSON shape shared by login, refresh and
// Google verification responses.
type tokenPairResponse struct {
	User         *entity.Account `json:"user"`
	AccessToken  string          `json:"accessToken"`
	RefreshToken string          `json:"refreshToken"`
}

func newTokenPairResponse(output *usecase.TokenPairOutput) tokenPairResponse {
	return tokenPairResponse{
		User:         output.Account,
		AccessToken:  output.AccessToken,
		RefreshToken: output.RefreshToken,
	}
}

// AccountHandler holds dependencies for account and session handlers.
type AccountHandler struct {
	uc usecase.AccountUsecase
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase) *AccountHandler {
	return &AccountHandler{uc: uc}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var input usecase.RegisterInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.Account, "Account registered successfully")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenPairResponse(output), "Login successful")
}

// Logout closes the caller's session.
func (h *AccountHandler) Logout(c echo.Context) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.Logout(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Successfully logged out"}, "Logout successful")
}

// InvokeNewTokens rotates the caller's refresh token and issues a new pair.
func (h *AccountHandler) InvokeNewTokens(c echo.Context) error {
	var input usecase.RefreshInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid refresh input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	accountID, err := middleware.AccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.AccountID = accountID

	output, err := h.uc.Refresh(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenPairResponse(output), "Token refreshed successfully")
}

// GoogleVerify signs a Google user in from an ID token posted by the client.
func (h *AccountHandler) GoogleVerify(c echo.Context) error {
	var input usecase.GoogleVerifyInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid Google sign-in input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.GoogleVerify(c.Request().Context(), &input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenPairResponse(output), "Google sign-in successful")
}

// GoogleCallback handles the provider redirect variant of Google sign-in,
// where the ID token arrives as a query or form parameter.
func (h *AccountHandler) GoogleCallback(c echo.Context) error {
	idToken := c.QueryParam("id_token")
	if idToken == "" {
		idToken = c.FormValue("id_token")
	}
	if idToken == "" {
		return response.BadRequest(c, "INVALID_INPUT", "ID token is required")
	}

	output, err := h.uc.GoogleVerify(c.Request().Context(), &usecase.GoogleVerifyInput{IDToken: idToken})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, newTokenPairResponse(output), "Google sign-in successful")
}

// Profile returns the authenticated caller's account.
func (h *AccountHandler) Profile(c echo.Context) error {
	accountID, err := middleware.AccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}

	account, err := h.uc.Profile(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, account, "Profile retrieved successfully")
}
