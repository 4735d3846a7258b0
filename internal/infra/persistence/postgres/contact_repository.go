package postgres

import (
	"context"
	"time"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type contactRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewContactRepository is the constructor for contactRepository.
func NewContactRepository(db *gorm.DB) repository.ContactRepository {
	return &contactRepository{db: db, now: time.Now}
}

// Add inserts msg with a generated id and the current UTC time.
func (r *contactRepository) Add(ctx context.Context, msg *entity.ContactMessage) error {
	m := &model.ContactMessageModel{
		ID:        uuid.New(),
		Name:      msg.Name,
		Phone:     msg.Phone,
		Email:     msg.Email,
		Message:   msg.Message,
		CreatedAt: r.now().UTC(),
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return wrapStoreError(err, "failed to add contact message")
	}

	msg.ID = m.ID.String()
	msg.CreatedAt = m.CreatedAt

	return nil
}
