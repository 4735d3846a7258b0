// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"yelocar/internal/domain/entity"
)

// SearchResult is one evaluation of a filter state against the catalog.
type SearchResult struct {
	Entries           []*entity.CatalogEntry
	State             entity.FilterState
	Total             int // catalog size
	ActiveFilterCount int

	// Empty marks the "no results" outcome. ResetState is what the client
	// applies to clear every filter in one step.
	Empty      bool
	ResetState entity.FilterState
}

// Facets lists the values the filter controls offer.
type Facets struct {
	Categories   []entity.Category
	PriceBuckets []entity.PriceBucket
	TrendingTags []entity.Tag
}

// ListingQR is a share code for one listing.
type ListingQR struct {
	URL string
	PNG []byte
}

// CatalogUsecase defines the read-only catalog operations.
type CatalogUsecase interface {
	Search(ctx context.Context, state entity.FilterState) *SearchResult
	SelectTag(ctx context.Context, current entity.FilterState, tag entity.Tag) *SearchResult
	Get(ctx context.Context, id int) (*entity.CatalogEntry, error)
	Facets(ctx context.Context) *Facets
	ShareQR(ctx context.Context, id int) (*ListingQR, error)
}
