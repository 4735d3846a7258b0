package memory

import (
	"testing"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalogRepository_SeedIsValid(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	entries := repo.All()
	require.Len(t, entries, 20)
	for i, e := range entries {
		assert.Equal(t, i+1, e.ID)
		assert.GreaterOrEqual(t, e.EffectivePrice(), int64(0))
	}
}

func TestNewCatalogRepository_RejectsBrokenSeed(t *testing.T) {
	_, err := newCatalogRepository([]entity.CatalogEntry{
		{ID: 1, Name: "Broken", Price: 100, Discount: 200, Category: entity.CategorySedan},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, entity.ErrInvalidCatalogEntry))

	_, err = newCatalogRepository([]entity.CatalogEntry{
		{ID: 1, Name: "A", Price: 100, Category: entity.CategorySedan},
		{ID: 1, Name: "B", Price: 100, Category: entity.CategorySedan},
	})
	require.Error(t, err)
}

func TestCatalogRepository_FindByID(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	entry, err := repo.FindByID(2)
	require.NoError(t, err)
	assert.Equal(t, "Honda City", entry.Name)

	_, err = repo.FindByID(99)
	assert.True(t, errors.Is(err, repository.ErrCatalogEntryNotFound))
}

func TestCatalog_SearchHondaCity(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	state := entity.DefaultFilterState()
	state.SearchTerm = "honda"

	visible := entity.FilterEntries(repo.All(), state)

	require.Len(t, visible, 1)
	assert.Equal(t, 2, visible[0].ID)
	assert.Equal(t, int64(1_150_000), visible[0].EffectivePrice())
}

func TestCatalog_HondaCityNotUnder5L(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	state := entity.DefaultFilterState()
	state.SearchTerm = "honda"
	state.PriceBucket = entity.PriceBucketUnder5L

	assert.Empty(t, entity.FilterEntries(repo.All(), state))
	assert.True(t, entity.PriceBucket10To25L.Contains(1_150_000))
}

func TestCatalog_Under5LTagSelectsKwid(t *testing.T) {
	repo, err := NewCatalogRepository()
	require.NoError(t, err)

	visible := entity.FilterEntries(repo.All(), entity.DefaultFilterState().SelectTag(entity.TagUnder5L))

	require.Len(t, visible, 1)
	assert.Equal(t, "Renault Kwid", visible[0].Name)
}
