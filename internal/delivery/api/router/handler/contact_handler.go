package handler

import (
	"net/http"

	"yelocar/internal/delivery/api/response"
	"yelocar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	ContactUC usecase.ContactUsecase
}

type ContactHandler struct {
	contactUC usecase.ContactUsecase
}

func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{contactUC: params.ContactUC}
}

// Submit handles POST /api/v1/contact
func (h *ContactHandler) Submit(c echo.Context) error {
	var req usecase.ContactInput
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}

	out, err := h.contactUC.Submit(c.Request().Context(), &req)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.SuccessWithNotices(c, http.StatusCreated, ContactResponse{
		ID:        out.Message.ID,
		CreatedAt: out.Message.CreatedAt,
	}, out.Notices)
}
