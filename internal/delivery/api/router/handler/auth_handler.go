package handler

import (
	"net/http"

	"yelocar/internal/delivery/api/response"
	deliverycontext "yelocar/internal/delivery/context"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// AuthHandlerParams holds dependencies for AuthHandler, injected by Fx.
type AuthHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
}

// AuthHandler serves sign-up, sign-in and sign-out.
type AuthHandler struct {
	accountUC usecase.AccountUsecase
}

func NewAuthHandler(params AuthHandlerParams) *AuthHandler {
	return &AuthHandler{accountUC: params.AccountUC}
}

// SignUp handles POST /auth/signup
func (h *AuthHandler) SignUp(c echo.Context) error {
	var req usecase.SignUpInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign up input")
	}

	out, err := h.accountUC.SignUp(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusCreated, newAuthResponse(out), out.Notices)
}

// SignIn handles POST /auth/signin
func (h *AuthHandler) SignIn(c echo.Context) error {
	var req usecase.SignInInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid sign in input")
	}

	out, err := h.accountUC.SignIn(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, newAuthResponse(out), out.Notices)
}

// SignOut handles POST /auth/signout
func (h *AuthHandler) SignOut(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	if err := h.accountUC.SignOut(c.Request().Context(), identity); err != nil {
		return response.HandleAppError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
