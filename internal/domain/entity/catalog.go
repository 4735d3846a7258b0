// Package entity contains the core business objects of the marketplace.
package entity

import (
	"yelocar/internal/errors"
)

// ErrInvalidCatalogEntry is returned when a seeded entry breaks a catalog invariant.
var ErrInvalidCatalogEntry = errors.New("invalid catalog entry")

// Category is the body style a listing is filed under.
type Category string

const (
	CategoryAll       Category = "All"
	CategorySedan     Category = "Sedan"
	CategorySUV       Category = "SUV"
	CategoryHatchback Category = "Hatchback"
	CategorySports    Category = "Sports"
	CategoryElectric  Category = "Electric"
	CategoryVintage   Category = "Vintage"
	CategoryLuxury    Category = "Luxury"
	CategoryCompact   Category = "Compact"
)

// Categories lists the selectable categories in dropdown order.
var Categories = []Category{
	CategorySedan,
	CategorySUV,
	CategoryHatchback,
	CategorySports,
	CategoryElectric,
	CategoryVintage,
	CategoryLuxury,
	CategoryCompact,
}

// ParseCategory accepts "All", an empty string or one of Categories.
func ParseCategory(s string) (Category, bool) {
	if s == "" || s == string(CategoryAll) {
		return CategoryAll, true
	}
	for _, c := range Categories {
		if string(c) == s {
			return c, true
		}
	}

	return "", false
}

// Valid reports whether c is a concrete listing category.
func (c Category) Valid() bool {
	if c == CategoryAll {
		return false
	}
	parsed, ok := ParseCategory(string(c))

	return ok && parsed == c
}

// Icon identifies the glyph drawn next to a listing feature.
type Icon string

const (
	IconSettings        Icon = "settings"
	IconCar             Icon = "car"
	IconCheckCircle     Icon = "check-circle"
	IconDollarSign      Icon = "dollar-sign"
	IconLayoutDashboard Icon = "layout-dashboard"
)

// Valid reports whether i is a known icon.
func (i Icon) Valid() bool {
	switch i {
	case IconSettings, IconCar, IconCheckCircle, IconDollarSign, IconLayoutDashboard:
		return true
	default:
		return false
	}
}

// Feature is one highlighted attribute on a listing card.
type Feature struct {
	Label string
	Icon  Icon
}

// CatalogEntry is an immutable car listing. Prices are whole rupees.
type CatalogEntry struct {
	ID           int
	Name         string
	Description  string
	Price        int64
	Discount     int64 // 0 means no discount
	Category     Category
	Features     []Feature
	ImageSrc     string
	ImageAlt     string
	FuelType     string
	Mileage      string
	Transmission string
}

// EffectivePrice is the list price less any discount.
func (e *CatalogEntry) EffectivePrice() int64 {
	return e.Price - e.Discount
}

// HasDiscount reports whether the listing is on offer.
func (e *CatalogEntry) HasDiscount() bool {
	return e.Discount > 0
}

// Validate checks the price and category invariants of a seeded entry.
func (e *CatalogEntry) Validate() error {
	if e.Name == "" {
		return errors.Wrapf(ErrInvalidCatalogEntry, "entry %d: empty name", e.ID)
	}
	if e.Price < 0 {
		return errors.Wrapf(ErrInvalidCatalogEntry, "entry %d: negative price %d", e.ID, e.Price)
	}
	if e.Discount < 0 || e.Discount > e.Price {
		return errors.Wrapf(ErrInvalidCatalogEntry, "entry %d: discount %d outside [0, %d]", e.ID, e.Discount, e.Price)
	}
	if !e.Category.Valid() {
		return errors.Wrapf(ErrInvalidCatalogEntry, "entry %d: unknown category %q", e.ID, e.Category)
	}
	for _, f := range e.Features {
		if !f.Icon.Valid() {
			return errors.Wrapf(ErrInvalidCatalogEntry, "entry %d: unknown icon %q", e.ID, f.Icon)
		}
	}

	return nil
}
