// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "yelocar/internal/delivery/context"
	"yelocar/internal/domain/entity"
	domainerrors "yelocar/internal/domain/errors"
	"yelocar/internal/domain/repository"
	"yelocar/internal/domain/service"
	"yelocar/internal/errors"
	"yelocar/internal/usecase"
)

// catalogService implements the CatalogUsecase interface.
type catalogService struct {
	catalog repository.CatalogRepository
	qrcode  service.QRCodeService
	logger  *slog.Logger
}

// NewCatalogService is the constructor for catalogService.
func NewCatalogService(
	catalog repository.CatalogRepository,
	qrcode service.QRCodeService,
	logger *slog.Logger,
) usecase.CatalogUsecase {
	return &catalogService{
		catalog: catalog,
		qrcode:  qrcode,
		logger:  logger,
	}
}

func (srv *catalogService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Search evaluates state against the whole catalog. It holds no state between calls.
func (srv *catalogService) Search(ctx context.Context, state entity.FilterState) *usecase.SearchResult {
	state = state.Normalized()
	all := srv.catalog.All()
	visible := entity.FilterEntries(all, state)

	srv.log(ctx).Debug("Catalog search",
		slog.String("search_term", state.SearchTerm),
		slog.String("category", string(state.Category)),
		slog.String("price_bucket", string(state.PriceBucket)),
		slog.String("tag", string(state.ActiveTag)),
		slog.Int("visible", len(visible)),
	)

	return &usecase.SearchResult{
		Entries:           visible,
		State:             state,
		Total:             len(all),
		ActiveFilterCount: state.ActiveFilterCount(),
		Empty:             len(visible) == 0,
		ResetState:        entity.DefaultFilterState(),
	}
}

// SelectTag applies a trending tag click to current and searches with the result.
func (srv *catalogService) SelectTag(ctx context.Context, current entity.FilterState, tag entity.Tag) *usecase.SearchResult {
	return srv.Search(ctx, current.Normalized().SelectTag(tag))
}

func (srv *catalogService) Get(ctx context.Context, id int) (*entity.CatalogEntry, error) {
	entry, err := srv.catalog.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrCatalogEntryNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrCarNotFound, "car %d", id)
		}

		return nil, errors.Wrap(err, "failed to find car")
	}

	return entry, nil
}

func (srv *catalogService) Facets(_ context.Context) *usecase.Facets {
	return &usecase.Facets{
		Categories:   append([]entity.Category{entity.CategoryAll}, entity.Categories...),
		PriceBuckets: append([]entity.PriceBucket{entity.PriceBucketAll}, entity.PriceBuckets...),
		TrendingTags: append([]entity.Tag(nil), entity.TrendingTags...),
	}
}

// ShareQR renders a QR code linking to the listing page.
func (srv *catalogService) ShareQR(ctx context.Context, id int) (*usecase.ListingQR, error) {
	if _, err := srv.Get(ctx, id); err != nil {
		return nil, err
	}

	png, err := srv.qrcode.GenerateListingQR(id)
	if err != nil {
		srv.log(ctx).Error("Failed to generate listing QR code", slog.Int("car_id", id), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrInternalError, err.Error())
	}

	return &usecase.ListingQR{
		URL: srv.qrcode.ListingURL(id),
		PNG: png,
	}, nil
}
