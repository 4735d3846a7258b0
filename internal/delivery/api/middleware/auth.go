package middleware

import (
	"strings"

	deliverycontext "yelocar/internal/delivery/context"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// AuthMiddleware verifies the bearer ID token on protected routes.
type AuthMiddleware struct {
	accounts usecase.AccountUsecase
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(accounts usecase.AccountUsecase) *AuthMiddleware {
	return &AuthMiddleware{accounts: accounts}
}

// Authenticate stores the verified identity on the echo context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return errors.WithStack(domainerrors.ErrUnauthenticated)
		}

		token, found := strings.CutPrefix(authHeader, bearerPrefix)
		if !found {
			return errors.WithStack(domainerrors.ErrInvalidToken)
		}

		identity, err := m.accounts.Authenticate(c.Request().Context(), token)
		if err != nil {
			return err
		}

		deliverycontext.SetIdentity(c, *identity)

		return next(c)
	}
}
