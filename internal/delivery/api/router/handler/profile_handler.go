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

// ProfileHandlerParams holds dependencies for ProfileHandler, injected by Fx.
type ProfileHandlerParams struct {
	fx.In

	ProfileUC usecase.ProfileUsecase
}

// ProfileHandler serves the signed-in user's profile and account deletion.
// Every route sits behind the auth middleware.
type ProfileHandler struct {
	profileUC usecase.ProfileUsecase
}

func NewProfileHandler(params ProfileHandlerParams) *ProfileHandler {
	return &ProfileHandler{profileUC: params.ProfileUC}
}

// Get handles GET /api/v1/profile
func (h *ProfileHandler) Get(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	result := h.profileUC.CurrentProfile(c.Request().Context(), identity)

	return response.SuccessWithNotices(c, http.StatusOK, newProfileResponse(result.Profile), result.Notices)
}

// Refresh handles POST /api/v1/profile/refresh
func (h *ProfileHandler) Refresh(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	result := h.profileUC.RefreshProfile(c.Request().Context(), identity)

	return response.SuccessWithNotices(c, http.StatusOK, newProfileResponse(result.Profile), result.Notices)
}

// Update handles PATCH /api/v1/profile. Omitted fields are left unchanged.
func (h *ProfileHandler) Update(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	var req usecase.UpdateProfileInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid profile input")
	}

	result, err := h.profileUC.UpdateProfile(c.Request().Context(), identity, &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, newProfileResponse(result.Profile), result.Notices)
}

// DeleteAccount handles DELETE /api/v1/account
func (h *ProfileHandler) DeleteAccount(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return errors.WithStack(domainerrors.ErrUnauthenticated)
	}

	notices, err := h.profileUC.DeleteAccount(c.Request().Context(), identity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusOK, map[string]bool{"deleted": true}, notices)
}
