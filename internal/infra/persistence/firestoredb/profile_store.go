// Package firestoredb keeps profiles and contact messages in Cloud Firestore.
package firestoredb

import (
	"context"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	usersCollection    = "users"
	contactsCollection = "contacts"
)

type profileStore struct {
	client *firestore.Client
}

// NewProfileStore stores profiles as users/{uid} documents.
func NewProfileStore(client *firestore.Client) repository.ProfileStore {
	return &profileStore{client: client}
}

func (s *profileStore) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	snap, err := s.client.Collection(usersCollection).Doc(uid).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, repository.ErrProfileNotFound
		}

		return nil, wrapError(err, "failed to get profile")
	}

	var profile entity.UserProfile
	if err := snap.DataTo(&profile); err != nil {
		return nil, errors.Wrap(err, "failed to decode profile")
	}
	profile.UID = uid

	return &profile, nil
}

// Save merges the profile into the document, creating it if needed.
func (s *profileStore) Save(ctx context.Context, profile *entity.UserProfile) error {
	_, err := s.client.Collection(usersCollection).Doc(profile.UID).Set(ctx, profileFields(profile), firestore.MergeAll)
	if err != nil {
		return wrapError(err, "failed to save profile")
	}

	return nil
}

// Delete succeeds for a missing document.
func (s *profileStore) Delete(ctx context.Context, uid string) error {
	if _, err := s.client.Collection(usersCollection).Doc(uid).Delete(ctx); err != nil {
		return wrapError(err, "failed to delete profile")
	}

	return nil
}

func wrapError(err error, msg string) error {
	if isUnavailable(err) {
		return errors.Wrap(errors.Join(repository.ErrStoreUnavailable, err), msg)
	}

	return errors.Wrap(err, msg)
}

func isUnavailable(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return true
	default:
		return false
	}
}

// profileFields is the merge payload. Empty strings are never valid field
// values, so they are left out rather than overwriting what is stored.
func profileFields(profile *entity.UserProfile) map[string]any {
	data := map[string]any{
		"uid":       profile.UID,
		"updatedAt": profile.UpdatedAt,
	}
	if profile.Email != "" {
		data["email"] = profile.Email
	}
	if profile.FullName != "" {
		data["fullName"] = profile.FullName
	}
	if profile.PhoneNumber != "" {
		data["phoneNumber"] = profile.PhoneNumber
	}
	if !profile.CreatedAt.IsZero() {
		data["createdAt"] = profile.CreatedAt
	}

	return data
}
