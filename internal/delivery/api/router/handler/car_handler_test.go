package handler

import (
	"net/http"
	"testing"

	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	mockUsecase "yelocar/internal/mocks/usecase"
	"yelocar/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func hondaCity() *entity.CatalogEntry {
	return &entity.CatalogEntry{
		ID:       1,
		Name:     "Honda City",
		Price:    1_100_000,
		Discount: 50_000,
		Category: entity.CategorySedan,
		Features: []entity.Feature{{Label: "Automatic", Icon: entity.Icon("gear")}},
	}
}

func TestCarHandler_Search(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCarHandler(CarHandlerParams{CatalogUC: catalogUC})
	c, rec := newTestContext(http.MethodGet, "/api/v1/cars?q=city&category=Sedan&price=10L-25L", "")

	want := entity.FilterState{
		SearchTerm:  "city",
		Category:    entity.CategorySedan,
		PriceBucket: entity.PriceBucket10To25L,
		ActiveTag:   entity.TagNone,
	}
	catalogUC.EXPECT().Search(mock.Anything, want).Return(&usecase.SearchResult{
		Entries:           []*entity.CatalogEntry{hondaCity()},
		State:             want,
		Total:             12,
		ActiveFilterCount: 2,
		ResetState:        entity.DefaultFilterState(),
	})

	require.NoError(t, h.Search(c))

	var got SearchResponse
	decode(t, rec, &got)
	assert.Equal(t, http.StatusOK, rec.Code)
	require.Len(t, got.Cars, 1)
	assert.Equal(t, "Honda City", got.Cars[0].Name)
	assert.Equal(t, int64(1_050_000), got.Cars[0].EffectivePrice)
	assert.Equal(t, 12, got.Total)
	assert.Equal(t, 1, got.Matched)
	assert.Equal(t, 2, got.ActiveFilterCount)
	assert.Equal(t, "All", got.ResetState.Category)
}

func TestCarHandler_Search_UnknownLabels(t *testing.T) {
	for _, query := range []string{"category=Truck", "price=cheap", "tag=Boats"} {
		t.Run(query, func(t *testing.T) {
			h := NewCarHandler(CarHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t)})
			c, _ := newTestContext(http.MethodGet, "/api/v1/cars?"+query, "")

			err := h.Search(c)

			assert.ErrorIs(t, err, domainerrors.ErrInvalidFilter)
		})
	}
}

func TestCarHandler_SelectTag(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCarHandler(CarHandlerParams{CatalogUC: catalogUC})
	c, rec := newTestContext(http.MethodPost, "/api/v1/cars/tags/select",
		`{"state":{"search":"","category":"SUV"},"tag":"Top Deals"}`)

	current := entity.FilterState{Category: entity.CategorySUV, PriceBucket: entity.PriceBucketAll}
	next := entity.FilterState{Category: entity.CategoryAll, PriceBucket: entity.PriceBucketAll, ActiveTag: entity.TagTopDeals}
	catalogUC.EXPECT().SelectTag(mock.Anything, current, entity.TagTopDeals).
		Return(&usecase.SearchResult{State: next, Empty: true, ResetState: entity.DefaultFilterState()})

	require.NoError(t, h.SelectTag(c))

	var got SearchResponse
	decode(t, rec, &got)
	assert.Equal(t, "Top Deals", got.State.Tag)
	assert.True(t, got.Empty)
	assert.Empty(t, got.Cars)
}

func TestCarHandler_SelectTag_MissingTag(t *testing.T) {
	h := NewCarHandler(CarHandlerParams{CatalogUC: mockUsecase.NewMockCatalogUsecase(t)})
	c, _ := newTestContext(http.MethodPost, "/api/v1/cars/tags/select", `{"state":{}}`)

	var vErr *domainerrors.ValidationError
	require.ErrorAs(t, h.SelectTag(c), &vErr)
	assert.Equal(t, "tag", vErr.Field)
}

func TestCarHandler_Get(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCarHandler(CarHandlerParams{CatalogUC: catalogUC})

	catalogUC.EXPECT().Get(mock.Anything, 1).Return(hondaCity(), nil)
	catalogUC.EXPECT().Get(mock.Anything, 99).Return(nil, errors.WithStack(domainerrors.ErrCarNotFound))

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("1")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	c, rec = newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("99")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	env := decode(t, rec, nil)
	assert.Equal(t, "CAR_NOT_FOUND", env.Error.Code)

	c, rec = newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("abc")
	require.NoError(t, h.Get(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCarHandler_ShareQR(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCarHandler(CarHandlerParams{CatalogUC: catalogUC})
	png := []byte{0x89, 'P', 'N', 'G'}

	catalogUC.EXPECT().ShareQR(mock.Anything, 1).
		Return(&usecase.ListingQR{URL: "https://yelocar.in/features/1", PNG: png}, nil)

	c, rec := newTestContext(http.MethodGet, "/", "")
	c.SetParamNames("id")
	c.SetParamValues("1")

	require.NoError(t, h.ShareQR(c))
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, "https://yelocar.in/features/1", rec.Header().Get(headerListingURL))
	assert.Equal(t, png, rec.Body.Bytes())
}

func TestCarHandler_Facets(t *testing.T) {
	catalogUC := mockUsecase.NewMockCatalogUsecase(t)
	h := NewCarHandler(CarHandlerParams{CatalogUC: catalogUC})
	c, rec := newTestContext(http.MethodGet, "/api/v1/cars/facets", "")

	catalogUC.EXPECT().Facets(mock.Anything).Return(&usecase.Facets{
		Categories:   []entity.Category{entity.CategoryAll, entity.CategorySedan},
		PriceBuckets: []entity.PriceBucket{entity.PriceBucketAll},
		TrendingTags: []entity.Tag{entity.TagTopDeals},
	})

	require.NoError(t, h.Facets(c))

	var got FacetsResponse
	decode(t, rec, &got)
	assert.Equal(t, []entity.Category{entity.CategoryAll, entity.CategorySedan}, got.Categories)
}
