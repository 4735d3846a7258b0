// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/errors"
	"yelocar/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// profileStore implements repository.ProfileStore on the user_profiles table.
type profileStore struct {
	db *gorm.DB
}

// NewProfileStore is the constructor for profileStore.
func NewProfileStore(db *gorm.DB) repository.ProfileStore {
	return &profileStore{db: db}
}

func (s *profileStore) Get(ctx context.Context, uid string) (*entity.UserProfile, error) {
	var m model.ProfileModel
	err := s.db.WithContext(ctx).Where("uid = ?", uid).First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, wrapStoreError(err, "failed to get profile")
	}

	return toProfileDomain(&m), nil
}

// Save upserts the profile. created_at is only written on insert, and empty
// fields never overwrite stored ones.
func (s *profileStore) Save(ctx context.Context, profile *entity.UserProfile) error {
	m := fromProfileDomain(profile)
	err := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "uid"}},
		DoUpdates: clause.AssignmentColumns(updateColumns(profile)),
	}).Create(m).Error
	if err != nil {
		return wrapStoreError(err, "failed to save profile")
	}

	return nil
}

func (s *profileStore) Delete(ctx context.Context, uid string) error {
	err := s.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.ProfileModel{}).Error
	if err != nil {
		return wrapStoreError(err, "failed to delete profile")
	}

	return nil
}

func toProfileDomain(m *model.ProfileModel) *entity.UserProfile {
	return &entity.UserProfile{
		UID:         m.UID,
		Email:       m.Email,
		FullName:    m.FullName,
		PhoneNumber: m.PhoneNumber,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func fromProfileDomain(p *entity.UserProfile) *model.ProfileModel {
	return &model.ProfileModel{
		UID:         p.UID,
		Email:       p.Email,
		FullName:    p.FullName,
		PhoneNumber: p.PhoneNumber,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func updateColumns(profile *entity.UserProfile) []string {
	columns := []string{"updated_at"}
	if profile.Email != "" {
		columns = append(columns, "email")
	}
	if profile.FullName != "" {
		columns = append(columns, "full_name")
	}
	if profile.PhoneNumber != "" {
		columns = append(columns, "phone_number")
	}

	return columns
}
