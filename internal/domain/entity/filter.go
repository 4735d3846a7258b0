package entity

import "strings"

// PriceBucket is a named effective-price range. Lower bounds are exclusive,
// upper bounds inclusive.
type PriceBucket string

const (
	PriceBucketAll     PriceBucket = "All"
	PriceBucketUnder5L PriceBucket = "Under 5L"
	PriceBucket5To10L  PriceBucket = "5L-10L"
	PriceBucket10To25L PriceBucket = "10L-25L"
	PriceBucket25To50L PriceBucket = "25L-50L"
	PriceBucketOver50L PriceBucket = "Over 50L"
)

// PriceBuckets lists the selectable buckets in dropdown order.
var PriceBuckets = []PriceBucket{
	PriceBucketUnder5L,
	PriceBucket5To10L,
	PriceBucket10To25L,
	PriceBucket25To50L,
	PriceBucketOver50L,
}

const (
	lakh5  = 500_000
	lakh10 = 1_000_000
	lakh25 = 2_500_000
	lakh50 = 5_000_000
)

// ParsePriceBucket accepts "All", an empty string or one of PriceBuckets.
func ParsePriceBucket(s string) (PriceBucket, bool) {
	if s == "" || s == string(PriceBucketAll) {
		return PriceBucketAll, true
	}
	for _, b := range PriceBuckets {
		if string(b) == s {
			return b, true
		}
	}

	return "", false
}

// Contains reports whether price falls inside the bucket. PriceBucketAll
// contains every price.
func (b PriceBucket) Contains(price int64) bool {
	switch b {
	case PriceBucketAll:
		return true
	case PriceBucketUnder5L:
		return price <= lakh5
	case PriceBucket5To10L:
		return price > lakh5 && price <= lakh10
	case PriceBucket10To25L:
		return price > lakh10 && price <= lakh25
	case PriceBucket25To50L:
		return price > lakh25 && price <= lakh50
	case PriceBucketOver50L:
		return price > lakh50
	default:
		return false
	}
}

// Tag is a one-click trending filter.
type Tag string

const (
	TagNone      Tag = ""
	TagTopDeals  Tag = "Top Deals"
	TagUnder5L   Tag = "Under ₹5L"
	TagElectric  Tag = "Electric Cars"
	TagEMI       Tag = "EMI Options"
	TagSUVs      Tag = "SUVs"
	TagSedans    Tag = "Sedans"
	TagHatchback Tag = "Hatchbacks"
	TagLuxury    Tag = "Luxury Cars"
	TagVintage   Tag = "Vintage"
)

// TrendingTags lists the tags in display order.
var TrendingTags = []Tag{
	TagTopDeals,
	TagUnder5L,
	TagElectric,
	TagEMI,
	TagSUVs,
	TagSedans,
	TagHatchback,
	TagLuxury,
	TagVintage,
}

// tagCategories maps category-named tags to the category they select.
var tagCategories = map[Tag]Category{
	TagElectric:  CategoryElectric,
	TagSUVs:      CategorySUV,
	TagSedans:    CategorySedan,
	TagHatchback: CategoryHatchback,
	TagLuxury:    CategoryLuxury,
	TagVintage:   CategoryVintage,
}

// ParseTag accepts an empty string (no tag) or one of TrendingTags.
func ParseTag(s string) (Tag, bool) {
	if s == "" {
		return TagNone, true
	}
	for _, t := range TrendingTags {
		if string(t) == s {
			return t, true
		}
	}

	return "", false
}

// Matches reports whether the entry satisfies the tag's own predicate.
// EMI Options matches everything since financing is not modelled.
func (t Tag) Matches(e *CatalogEntry) bool {
	switch t {
	case TagNone, TagEMI:
		return true
	case TagTopDeals:
		return e.HasDiscount()
	case TagUnder5L:
		return e.EffectivePrice() <= lakh5
	}

	if c, ok := tagCategories[t]; ok {
		return e.Category == c
	}

	return false
}

// FilterState is the caller-owned search state for the catalog.
type FilterState struct {
	SearchTerm  string
	Category    Category
	PriceBucket PriceBucket
	ActiveTag   Tag
}

// DefaultFilterState matches the whole catalog.
func DefaultFilterState() FilterState {
	return FilterState{
		Category:    CategoryAll,
		PriceBucket: PriceBucketAll,
		ActiveTag:   TagNone,
	}
}

// IsDefault reports whether no filter is active.
func (s FilterState) IsDefault() bool {
	return s.Normalized() == DefaultFilterState()
}

// SelectTag returns the state after clicking tag. Every other filter is reset
// first; clicking the active tag again clears it.
func (s FilterState) SelectTag(tag Tag) FilterState {
	next := DefaultFilterState()
	if tag == TagNone || tag == s.ActiveTag {
		return next
	}

	next.ActiveTag = tag
	switch tag {
	case TagUnder5L:
		next.PriceBucket = PriceBucketUnder5L
	default:
		if c, ok := tagCategories[tag]; ok {
			next.Category = c
		}
	}

	return next
}

// ActiveFilterCount counts the filters that narrow the result.
func (s FilterState) ActiveFilterCount() int {
	s = s.Normalized()

	count := 0
	if s.SearchTerm != "" {
		count++
	}
	if s.Category != CategoryAll {
		count++
	}
	if s.PriceBucket != PriceBucketAll {
		count++
	}
	if s.ActiveTag != TagNone {
		count++
	}

	return count
}

// Matches reports whether every active predicate holds for e.
func (s FilterState) Matches(e *CatalogEntry) bool {
	s = s.Normalized()

	if s.SearchTerm != "" &&
		!strings.Contains(strings.ToLower(e.Name), strings.ToLower(s.SearchTerm)) {
		return false
	}
	if s.Category != CategoryAll && e.Category != s.Category {
		return false
	}
	if !s.PriceBucket.Contains(e.EffectivePrice()) {
		return false
	}

	return s.ActiveTag.Matches(e)
}

// Normalized fills zero-valued dropdowns with "All".
func (s FilterState) Normalized() FilterState {
	if s.Category == "" {
		s.Category = CategoryAll
	}
	if s.PriceBucket == "" {
		s.PriceBucket = PriceBucketAll
	}

	return s
}

// FilterEntries returns the entries matching state, in catalog order.
func FilterEntries(entries []*CatalogEntry, state FilterState) []*CatalogEntry {
	visible := make([]*CatalogEntry, 0, len(entries))
	for _, e := range entries {
		if state.Matches(e) {
			visible = append(visible, e)
		}
	}

	return visible
}
