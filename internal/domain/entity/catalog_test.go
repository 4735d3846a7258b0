package entity

import (
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogEntry_EffectivePrice(t *testing.T) {
	e := &CatalogEntry{Price: 1_200_000, Discount: 50_000}

	assert.Equal(t, int64(1_150_000), e.EffectivePrice())
	assert.True(t, e.HasDiscount())

	e.Discount = 0
	assert.Equal(t, e.Price, e.EffectivePrice())
	assert.False(t, e.HasDiscount())
}

func TestCatalogEntry_Validate(t *testing.T) {
	valid := CatalogEntry{
		ID:       1,
		Name:     "Honda City",
		Price:    1_200_000,
		Discount: 50_000,
		Category: CategorySedan,
		Features: []Feature{{Label: "Automatic", Icon: IconSettings}},
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(e *CatalogEntry)
	}{
		{"discount above price", func(e *CatalogEntry) { e.Discount = e.Price + 1 }},
		{"negative discount", func(e *CatalogEntry) { e.Discount = -1 }},
		{"negative price", func(e *CatalogEntry) { e.Price = -1; e.Discount = 0 }},
		{"unknown category", func(e *CatalogEntry) { e.Category = "Pickup" }},
		{"all is not a category", func(e *CatalogEntry) { e.Category = CategoryAll }},
		{"unknown icon", func(e *CatalogEntry) { e.Features = []Feature{{Label: "x", Icon: "rocket"}} }},
		{"empty name", func(e *CatalogEntry) { e.Name = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)

			err := e.Validate()
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidCatalogEntry))
		})
	}
}

func TestParseCategory(t *testing.T) {
	c, ok := ParseCategory("")
	require.True(t, ok)
	assert.Equal(t, CategoryAll, c)

	c, ok = ParseCategory("SUV")
	require.True(t, ok)
	assert.Equal(t, CategorySUV, c)

	_, ok = ParseCategory("suv")
	assert.False(t, ok)
}

func TestUserProfile_Merge(t *testing.T) {
	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	now := created.Add(time.Hour)
	name := "Asha Rao"

	p := &UserProfile{UID: "u1", Email: "a@example.com", PhoneNumber: "9876543210", CreatedAt: created}
	merged := p.Merge(ProfileUpdate{FullName: &name}, now)

	assert.Equal(t, "Asha Rao", merged.FullName)
	assert.Equal(t, "9876543210", merged.PhoneNumber)
	assert.Equal(t, created, merged.CreatedAt)
	assert.Equal(t, now, merged.UpdatedAt)
	assert.Empty(t, p.FullName, "merge must not mutate the receiver")
}

func TestUserProfile_MergeStampsCreatedAtOnPlaceholder(t *testing.T) {
	now := time.Now().UTC()
	p := NewPlaceholderProfile(Identity{UID: "u1", Email: "a@example.com"})

	merged := p.Merge(ProfileUpdate{}, now)

	assert.Equal(t, now, merged.CreatedAt)
	assert.Equal(t, "a@example.com", merged.Email)
}

func TestDisposer_IsIdempotent(t *testing.T) {
	calls := 0
	d := NewDisposer(func() { calls++ })

	d.Dispose()
	d.Dispose()
	d.Dispose()

	assert.Equal(t, 1, calls)

	var nilDisposer *Disposer
	assert.NotPanics(t, nilDisposer.Dispose)
}
