// Package memory holds the in-process listing catalog.
package memory

import (
	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/errors"
)

type catalogRepository struct {
	entries []*entity.CatalogEntry
	byID    map[int]*entity.CatalogEntry
}

// NewCatalogRepository builds the catalog from the seed table. A table that
// breaks a catalog invariant fails start-up.
func NewCatalogRepository() (repository.CatalogRepository, error) {
	return newCatalogRepository(seedEntries())
}

func newCatalogRepository(seed []entity.CatalogEntry) (*catalogRepository, error) {
	repo := &catalogRepository{
		entries: make([]*entity.CatalogEntry, 0, len(seed)),
		byID:    make(map[int]*entity.CatalogEntry, len(seed)),
	}

	for i := range seed {
		entry := seed[i]
		if err := entry.Validate(); err != nil {
			return nil, err
		}
		if _, dup := repo.byID[entry.ID]; dup {
			return nil, errors.Wrapf(entity.ErrInvalidCatalogEntry, "duplicate entry id %d", entry.ID)
		}
		repo.entries = append(repo.entries, &entry)
		repo.byID[entry.ID] = &entry
	}

	return repo, nil
}

// All returns the entries in catalog order. Callers must not modify them.
func (r *catalogRepository) All() []*entity.CatalogEntry {
	return r.entries
}

func (r *catalogRepository) FindByID(id int) (*entity.CatalogEntry, error) {
	entry, ok := r.byID[id]
	if !ok {
		return nil, errors.Wrapf(repository.ErrCatalogEntryNotFound, "id %d", id)
	}

	return entry, nil
}
