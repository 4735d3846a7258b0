package firestoredb

import (
	"context"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

type contactRepository struct {
	client *firestore.Client
}

// NewContactRepository appends submissions to the contacts collection.
func NewContactRepository(client *firestore.Client) repository.ContactRepository {
	return &contactRepository{client: client}
}

// Add writes msg under a generated id. createdAt is the server's commit time.
func (r *contactRepository) Add(ctx context.Context, msg *entity.ContactMessage) error {
	ref := r.client.Collection(contactsCollection).NewDoc()
	result, err := ref.Create(ctx, map[string]any{
		"name":      msg.Name,
		"phone":     msg.Phone,
		"email":     msg.Email,
		"message":   msg.Message,
		"createdAt": firestore.ServerTimestamp,
	})
	if err != nil {
		return wrapError(err, "failed to add contact message")
	}

	msg.ID = ref.ID
	msg.CreatedAt = result.UpdateTime

	return nil
}
