// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"accountd/internal/delivery/http/response"
	domainerrors "accountd/internal/domain/errors"
	"accountd/internal/usecase"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc     usecase.AccountUsecase
	logger *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:     uc,
		logger: logger,
	}
}

// registerRequest is the explicit boundary shape of a registration call.
// Mobile is required by the contract even though the store never keeps it.
type registerRequest struct {
	FirstName  string `json:"first_name" validate:"required"`
	MiddleName string `json:"middle_name"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required"`
	Mobile     string `json:"mobile" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// loginRequest is the explicit boundary shape of a login call.
type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}

	input := &usecase.RegisterInput{
		FirstName:  req.FirstName,
		MiddleName: req.MiddleName,
		LastName:   req.LastName,
		Email:      req.Email,
		Mobile:     req.Mobile,
		Password:   req.Password,
	}

	if err := h.uc.Register(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	// Never echo the created account back; the hash stays behind the store boundary.
	return response.Success(c, http.StatusCreated, "Account created successfully!")
}

// Login handles the login request.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, domainerrors.ErrValidationFailed.Message())
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.SuccessWithUser(c, http.StatusOK, "Login successful!", output.Profile)
}
