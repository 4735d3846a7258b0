// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"yelocar/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrCatalogEntryNotFound is returned when no listing has the requested id.
var ErrCatalogEntryNotFound = errors.New("catalog entry not found")

// CatalogRepository serves the read-only listing catalog.
type CatalogRepository interface {
	// All returns every entry in catalog order. Callers must not modify the entries.
	All() []*entity.CatalogEntry

	// FindByID returns the entry with the given id.
	FindByID(id int) (*entity.CatalogEntry, error)
}
