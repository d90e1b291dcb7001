// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "hivefund/internal/delivery/context"
	"hivefund/internal/delivery/http/response"
	"hivefund/internal/domain/entity"
	"hivefund/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// registerRequest is the payload for POST /register.
type registerRequest struct {
	FullName string `json:"full_name" validate:"required,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Address  string `json:"address" validate:"required"`
	PostCode string `json:"post_code" validate:"required"`
	Country  string `json:"country" validate:"required"`
}

// loginRequest is the payload for POST /login.
type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// loginResponse mirrors the token grant shape clients expect.
type loginResponse struct {
	AccessToken string             `json:"access_token"`
	TokenType   string             `json:"token_type"`
	User        *entity.PublicUser `json:"user"`
}

// UserHandler holds dependencies for user-related handlers.
type UserHandler struct {
	uc     usecase.UserUsecase
	logger *slog.Logger
}

// NewUserHandler is the constructor for UserHandler, injected by Fx.
func NewUserHandler(uc usecase.UserUsecase, logger *slog.Logger) *UserHandler {
	return &UserHandler{
		uc:     uc,
		logger: logger,
	}
}

// Register handles the account registration request.
func (h *UserHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind registration request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		FullName: req.FullName,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
		PostCode: req.PostCode,
		Country:  req.Country,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, output.User.Public(), "User registered successfully")
}

// Login handles the user login request.
func (h *UserHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Warn("Failed to bind login request", slog.Any("error", err))

		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, loginResponse{
		AccessToken: output.AccessToken,
		TokenType:   "bearer",
		User:        output.User.Public(),
	}, "Login successful")
}

// ListUsers handles the request to list all registered users.
func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.uc.ListUsers(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	publicUsers := make([]*entity.PublicUser, 0, len(users))
	for _, u := range users {
		publicUsers = append(publicUsers, u.Public())
	}

	return response.Success(c, http.StatusOK, publicUsers, "Users retrieved successfully")
}

// Me handles the request to get the current user's profile.
func (h *UserHandler) Me(c echo.Context) error {
	userID, ok := deliverycontext.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	user, err := h.uc.GetUser(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, user.Public(), "Profile retrieved successfully")
}
