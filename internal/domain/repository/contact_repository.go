package repository

import (
	"context"

	"yelocar/internal/domain/entity"
)

// ContactRepository appends contact form submissions.
type ContactRepository interface {
	// Add stores msg, assigning its ID and CreatedAt.
	Add(ctx context.Context, msg *entity.ContactMessage) error
}
