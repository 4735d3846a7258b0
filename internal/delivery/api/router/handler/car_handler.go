package handler

import (
	"net/http"
	"strconv"

	"yelocar/internal/delivery/api/response"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const headerListingURL = "X-Listing-Url"

// CarHandlerParams holds dependencies for CarHandler, injected by Fx.
type CarHandlerParams struct {
	fx.In

	CatalogUC usecase.CatalogUsecase
}

// CarHandler serves the catalog browse endpoints.
type CarHandler struct {
	catalogUC usecase.CatalogUsecase
}

// NewCarHandler is the constructor for CarHandler
func NewCarHandler(params CarHandlerParams) *CarHandler {
	return &CarHandler{catalogUC: params.CatalogUC}
}

// SelectTagRequest carries the client's current filter state and the clicked tag.
type SelectTagRequest struct {
	State FilterStateDTO `json:"state"`
	Tag   string         `json:"tag" validate:"required"`
}

// Search handles GET /api/v1/cars?q=&category=&price=&tag=
func (h *CarHandler) Search(c echo.Context) error {
	var req FilterStateDTO
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid search parameters")
	}

	state, ok := req.toEntity()
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidFilter)
	}

	result := h.catalogUC.Search(c.Request().Context(), state)

	return response.Success(c, http.StatusOK, newSearchResponse(result))
}

// SelectTag handles POST /api/v1/cars/tags/select
func (h *CarHandler) SelectTag(c echo.Context) error {
	var req SelectTagRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid tag selection")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	state, ok := req.State.toEntity()
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidFilter)
	}
	tag, ok := FilterStateDTO{Tag: req.Tag}.toEntity()
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidFilter)
	}

	result := h.catalogUC.SelectTag(c.Request().Context(), state, tag.ActiveTag)

	return response.Success(c, http.StatusOK, newSearchResponse(result))
}

// Get handles GET /api/v1/cars/:id
func (h *CarHandler) Get(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	entry, err := h.catalogUC.Get(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newCarResponse(entry))
}

// Facets handles GET /api/v1/cars/facets
func (h *CarHandler) Facets(c echo.Context) error {
	facets := h.catalogUC.Facets(c.Request().Context())

	return response.Success(c, http.StatusOK, FacetsResponse{
		Categories:   facets.Categories,
		PriceBuckets: facets.PriceBuckets,
		TrendingTags: facets.TrendingTags,
	})
}

// ShareQR handles GET /api/v1/cars/:id/qr and returns a PNG.
func (h *CarHandler) ShareQR(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid car ID")
	}

	qr, err := h.catalogUC.ShareQR(c.Request().Context(), id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	c.Response().Header().Set(headerListingURL, qr.URL)
	c.Response().Header().Set(echo.HeaderCacheControl, "public, max-age=86400")

	return c.Blob(http.StatusOK, "image/png", qr.PNG)
}
