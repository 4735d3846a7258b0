package repository

import (
	"context"

	"yelocar/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for profile persistence.
var (
	// ErrProfileNotFound is returned when a store holds no record for the uid.
	ErrProfileNotFound = errors.New("profile not found")
	// ErrStoreUnavailable is returned when a store cannot be reached.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// ProfileCache is the low-latency key-value copy of user profiles.
type ProfileCache interface {
	// Get returns ErrProfileNotFound when the uid has no record.
	Get(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Save replaces the record for profile.UID.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// Delete removes the record. Deleting an absent record succeeds.
	Delete(ctx context.Context, uid string) error
}

// ProfileStore is the document store copy of user profiles.
type ProfileStore interface {
	// Get returns ErrProfileNotFound when the uid has no document.
	Get(ctx context.Context, uid string) (*entity.UserProfile, error)

	// Save merges profile into the document for profile.UID, creating it if needed.
	Save(ctx context.Context, profile *entity.UserProfile) error

	// Delete removes the document. Deleting an absent document succeeds.
	Delete(ctx context.Context, uid string) error
}
