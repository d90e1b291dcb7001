package middleware

import (
	"strings"

	deliverycontext "hivefund/internal/delivery/context"
	domainerrors "hivefund/internal/domain/errors"
	"hivefund/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session token.
// Errors flow to the central error handler so every rejection shares the same shape.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return domainerrors.ErrTokenInvalid.WithDetails("Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return domainerrors.ErrTokenInvalid.WithDetails("Invalid token format, must be Bearer token")
		}

		claims, err := m.tokenSvc.Verify(tokenString)
		if err != nil {
			return err
		}

		// Set user info on the context for handlers to use
		deliverycontext.SetUserID(c, claims.UserID)

		return next(c)
	}
}
