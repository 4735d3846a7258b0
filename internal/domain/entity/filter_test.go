package entity

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEntries() []*CatalogEntry {
	return []*CatalogEntry{
		{ID: 1, Name: "Ferrari 488 GTB", Price: 36_000_000, Discount: 1_000_000, Category: CategorySports},
		{ID: 2, Name: "Honda City", Price: 1_200_000, Discount: 50_000, Category: CategorySedan},
		{ID: 3, Name: "Tata Nexon EV", Price: 1_500_000, Category: CategoryElectric},
		{ID: 4, Name: "Renault Kwid", Price: 500_000, Discount: 10_000, Category: CategoryHatchback},
		{ID: 5, Name: "Maruti Suzuki Swift", Price: 800_000, Discount: 20_000, Category: CategoryHatchback},
		{ID: 6, Name: "Toyota Innova Crysta", Price: 2_500_000, Category: CategorySedan},
		{ID: 7, Name: "Nissan Magnite", Price: 510_000, Discount: 15_000, Category: CategoryCompact},
	}
}

func ids(entries []*CatalogEntry) []int {
	out := make([]int, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}

	return out
}

func TestFilterEntries_DefaultStateReturnsCatalogInOrder(t *testing.T) {
	entries := testEntries()

	visible := FilterEntries(entries, DefaultFilterState())

	assert.Equal(t, ids(entries), ids(visible))
}

func TestFilterEntries_ZeroValueStateActsAsDefault(t *testing.T) {
	entries := testEntries()

	visible := FilterEntries(entries, FilterState{})

	assert.Len(t, visible, len(entries))
}

func TestFilterEntries_SearchIsCaseInsensitiveSubstring(t *testing.T) {
	state := DefaultFilterState()
	state.SearchTerm = "hOnDa"

	visible := FilterEntries(testEntries(), state)

	assert.Equal(t, []int{2}, ids(visible))
}

func TestFilterEntries_SearchMatchesExactlyTheMatchingNames(t *testing.T) {
	entries := testEntries()
	state := DefaultFilterState()
	state.SearchTerm = "TA"

	visible := FilterEntries(entries, state)

	for _, e := range visible {
		assert.Contains(t, strings.ToLower(e.Name), "ta")
	}
	// Tata Nexon EV, Toyota Innova Crysta
	assert.Equal(t, []int{3, 6}, ids(visible))
}

func TestFilterEntries_ClearingBucketRestoresPreviousResult(t *testing.T) {
	entries := testEntries()
	state := DefaultFilterState()
	state.SearchTerm = "a"
	state.Category = CategoryHatchback

	before := FilterEntries(entries, state)
	require.Equal(t, []int{4, 5}, ids(before))

	state.PriceBucket = PriceBucketUnder5L
	assert.Equal(t, []int{4}, ids(FilterEntries(entries, state)))

	state.PriceBucket = PriceBucketAll
	assert.Equal(t, ids(before), ids(FilterEntries(entries, state)))
}

func TestFilterEntries_ClearingCategoryRewidens(t *testing.T) {
	entries := testEntries()
	state := DefaultFilterState()
	state.SearchTerm = "a"
	state.Category = CategorySedan
	state.PriceBucket = PriceBucket10To25L

	narrow := FilterEntries(entries, state)
	assert.Equal(t, []int{2, 6}, ids(narrow))

	state.Category = CategoryAll
	wide := FilterEntries(entries, state)

	assert.Equal(t, []int{2, 3, 6}, ids(wide))
	for _, e := range narrow {
		assert.Contains(t, wide, e)
	}
}

func TestFilterEntries_CategoryAndBucketCombine(t *testing.T) {
	state := DefaultFilterState()
	state.Category = CategorySedan
	state.PriceBucket = PriceBucket10To25L

	visible := FilterEntries(testEntries(), state)

	assert.Equal(t, []int{2, 6}, ids(visible))
}

func TestFilterEntries_BucketUsesEffectivePrice(t *testing.T) {
	state := DefaultFilterState()
	state.PriceBucket = PriceBucketUnder5L

	visible := FilterEntries(testEntries(), state)

	// Nissan Magnite lists at 5.1L but sells at 4.95L.
	assert.Equal(t, []int{4, 7}, ids(visible))
}

func TestFilterEntries_ScenarioHondaCityExcludedUnder5L(t *testing.T) {
	state := DefaultFilterState()
	state.SearchTerm = "honda"
	state.PriceBucket = PriceBucketUnder5L

	visible := FilterEntries(testEntries(), state)

	assert.Empty(t, visible)
}

func TestFilterEntries_TagPredicateCombinesWithLaterDropdown(t *testing.T) {
	state := DefaultFilterState().SelectTag(TagTopDeals)
	state.Category = CategoryHatchback

	visible := FilterEntries(testEntries(), state)

	assert.Equal(t, []int{4, 5}, ids(visible))
}

func TestFilterEntries_EMIOptionsMatchesEverything(t *testing.T) {
	entries := testEntries()

	visible := FilterEntries(entries, DefaultFilterState().SelectTag(TagEMI))

	assert.Len(t, visible, len(entries))
}

func TestPriceBucket_EveryPriceFallsInExactlyOneBucket(t *testing.T) {
	prices := []int64{0, 1, 499_999, 500_000, 500_001, 1_000_000, 1_000_001, 2_500_000, 2_500_001, 5_000_000, 5_000_001, 100_000_000}

	for _, price := range prices {
		matched := 0
		for _, bucket := range PriceBuckets {
			if bucket.Contains(price) {
				matched++
			}
		}
		assert.Equal(t, 1, matched, "price %d", price)
	}
}

func TestPriceBucket_Boundaries(t *testing.T) {
	tests := []struct {
		bucket PriceBucket
		price  int64
		want   bool
	}{
		{PriceBucketUnder5L, 500_000, true},
		{PriceBucketUnder5L, 500_001, false},
		{PriceBucket5To10L, 500_000, false},
		{PriceBucket5To10L, 1_000_000, true},
		{PriceBucket10To25L, 2_500_000, true},
		{PriceBucket25To50L, 5_000_000, true},
		{PriceBucketOver50L, 5_000_000, false},
		{PriceBucketOver50L, 5_000_001, true},
		{PriceBucketAll, 42, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.bucket), func(t *testing.T) {
			assert.Equal(t, tt.want, tt.bucket.Contains(tt.price))
		})
	}
}

func TestParsePriceBucket_RoundTrip(t *testing.T) {
	for _, bucket := range append([]PriceBucket{PriceBucketAll}, PriceBuckets...) {
		parsed, ok := ParsePriceBucket(string(bucket))
		require.True(t, ok)
		assert.Equal(t, bucket, parsed)
	}

	_, ok := ParsePriceBucket("Under 1L")
	assert.False(t, ok)
}

func TestFilterState_SelectTagResetsOtherFilters(t *testing.T) {
	state := FilterState{
		SearchTerm:  "kwid",
		Category:    CategorySedan,
		PriceBucket: PriceBucketOver50L,
	}

	next := state.SelectTag(TagSUVs)

	assert.Equal(t, FilterState{
		Category:    CategorySUV,
		PriceBucket: PriceBucketAll,
		ActiveTag:   TagSUVs,
	}, next)
}

func TestFilterState_SelectTagSideEffects(t *testing.T) {
	tests := []struct {
		tag          Tag
		wantCategory Category
		wantBucket   PriceBucket
	}{
		{TagTopDeals, CategoryAll, PriceBucketAll},
		{TagUnder5L, CategoryAll, PriceBucketUnder5L},
		{TagElectric, CategoryElectric, PriceBucketAll},
		{TagEMI, CategoryAll, PriceBucketAll},
		{TagSUVs, CategorySUV, PriceBucketAll},
		{TagSedans, CategorySedan, PriceBucketAll},
		{TagHatchback, CategoryHatchback, PriceBucketAll},
		{TagLuxury, CategoryLuxury, PriceBucketAll},
		{TagVintage, CategoryVintage, PriceBucketAll},
	}

	for _, tt := range tests {
		t.Run(string(tt.tag), func(t *testing.T) {
			next := DefaultFilterState().SelectTag(tt.tag)

			assert.Equal(t, tt.tag, next.ActiveTag)
			assert.Equal(t, tt.wantCategory, next.Category)
			assert.Equal(t, tt.wantBucket, next.PriceBucket)
			assert.Empty(t, next.SearchTerm)
		})
	}
}

func TestFilterState_SelectingActiveTagClearsIt(t *testing.T) {
	state := DefaultFilterState().SelectTag(TagLuxury)

	next := state.SelectTag(TagLuxury)

	assert.Equal(t, DefaultFilterState(), next)
	assert.True(t, next.IsDefault())
}

func TestFilterState_TagThenTagEqualsSecondTagFromDefault(t *testing.T) {
	for _, a := range TrendingTags {
		for _, b := range TrendingTags {
			if a == b {
				continue
			}
			got := DefaultFilterState().SelectTag(a).SelectTag(b)
			want := DefaultFilterState().SelectTag(b)
			assert.Equal(t, want, got, "%s then %s", a, b)
		}
	}
}

func TestFilterState_ActiveFilterCount(t *testing.T) {
	assert.Equal(t, 0, DefaultFilterState().ActiveFilterCount())
	assert.Equal(t, 2, DefaultFilterState().SelectTag(TagUnder5L).ActiveFilterCount())
	assert.Equal(t, 1, DefaultFilterState().SelectTag(TagTopDeals).ActiveFilterCount())

	state := FilterState{SearchTerm: "bmw", Category: CategoryLuxury, PriceBucket: PriceBucketOver50L}
	assert.Equal(t, 3, state.ActiveFilterCount())
}

func TestParseTag(t *testing.T) {
	tag, ok := ParseTag("Under ₹5L")
	require.True(t, ok)
	assert.Equal(t, TagUnder5L, tag)

	tag, ok = ParseTag("")
	require.True(t, ok)
	assert.Equal(t, TagNone, tag)

	_, ok = ParseTag("Convertibles")
	assert.False(t, ok)
}
