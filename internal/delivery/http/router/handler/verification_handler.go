package handler

import (
	"net/http"

	"cinelog/internal/delivery/http/middleware"
	"cinelog/internal/delivery/http/response"
	"cinelog/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// VerificationHandler holds dependencies for OTP verification handlers.
type VerificationHandler struct {
	uc usecase.VerificationUsecase
}

// NewVerificationHandler is the constructor for VerificationHandler, injected by Fx.
func NewVerificationHandler(uc usecase.VerificationUsecase) *VerificationHandler {
	return &VerificationHandler{uc: uc}
}

func (h *VerificationHandler) bindSendInput(c echo.Context) (*usecase.SendOTPInput, error) {
	var input usecase.SendOTPInput
	if err := c.Bind(&input); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&input); err != nil {
		return nil, errors.WithStack(err)
	}

	return &input, nil
}

func (h *VerificationHandler) bindConfirmInput(c echo.Context) (*usecase.ConfirmOTPInput, error) {
	var input usecase.ConfirmOTPInput
	if err := c.Bind(&input); err != nil {
		return nil, response.BindingError(c, "INVALID_INPUT", "Invalid verification input")
	}
	if err := c.Validate(&input); err != nil {
		return nil, errors.WithStack(err)
	}

	return &input, nil
}

// SendActivationEmail mails a fresh activation code.
func (h *VerificationHandler) SendActivationEmail(c echo.Context) error {
	input, err := h.bindSendInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.SendActivationOTP(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Activation code sent")
}

// ConfirmActivationOTP checks the activation code and activates the account.
func (h *VerificationHandler) ConfirmActivationOTP(c echo.Context) error {
	input, err := h.bindConfirmInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.ConfirmActivationOTP(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Account activated successfully")
}

// SendResetEmail mails a fresh password-reset code.
func (h *VerificationHandler) SendResetEmail(c echo.Context) error {
	input, err := h.bindSendInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.SendResetOTP(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset code sent")
}

// ConfirmResetOTP checks the password-reset code.
func (h *VerificationHandler) ConfirmResetOTP(c echo.Context) error {
	input, err := h.bindConfirmInput(c)
	if err != nil || input == nil {
		return err
	}

	if err := h.uc.ConfirmResetOTP(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Verification code accepted")
}

// ResetPassword stores a new password for the authenticated caller.
func (h *VerificationHandler) ResetPassword(c echo.Context) error {
	var input usecase.ResetPasswordInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid password input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	accountID, err := middleware.AccountID(c)
	if err != nil {
		return errors.WithStack(err)
	}
	input.AccountID = accountID

	if err := h.uc.ResetPassword(c.Request().Context(), &input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}
