package usecase

import (
	"context"

	"yelocar/internal/domain/entity"
)

// ProfileResult carries a profile together with the notices the operation raised.
type ProfileResult struct {
	Profile *entity.UserProfile
	Notices []entity.Notice
}

// UpdateProfileInput defines the fields a user may change. Nil fields are kept.
type UpdateProfileInput struct {
	FullName    *string `json:"fullName,omitempty" validate:"omitempty,notblank,min=2,max=100"`
	PhoneNumber *string `json:"phoneNumber,omitempty" validate:"omitempty,phone10"`
}

// ProfileUsecase coordinates the key-value and document profile stores.
type ProfileUsecase interface {
	// LoadProfile runs the read path and establishes a Ready session. It never fails.
	LoadProfile(ctx context.Context, identity entity.Identity) *ProfileResult

	// CurrentProfile returns the Ready session profile, loading it when there is none.
	CurrentProfile(ctx context.Context, identity entity.Identity) *ProfileResult

	// RefreshProfile re-enters Loading and reloads.
	RefreshProfile(ctx context.Context, identity entity.Identity) *ProfileResult

	UpdateProfile(ctx context.Context, identity entity.Identity, input *UpdateProfileInput) (*ProfileResult, error)

	// DeleteAccount removes both store records and the credential.
	DeleteAccount(ctx context.Context, identity entity.Identity) ([]entity.Notice, error)
}
