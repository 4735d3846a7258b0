package postgres

import (
	"context"
	"time"

	"yelocar/internal/domain/entity"
	"yelocar/internal/domain/repository"
	"yelocar/internal/errors"
	"yelocar/internal/infra/persistence/model"

	"gorm.io/gorm"
)

// accountRepository implements repository.AccountRepository using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

func (r *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	m := fromAccountDomain(account)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateAccount
		}

		return wrapStoreError(err, "failed to create account")
	}
	account.CreatedAt = m.CreatedAt

	return nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *accountRepository) FindByUID(ctx context.Context, uid string) (*entity.Account, error) {
	return r.findOne(ctx, "uid = ?", uid)
}

func (r *accountRepository) findOne(ctx context.Context, query string, arg any) (*entity.Account, error) {
	var m model.AccountModel
	if err := r.db.WithContext(ctx).Where(query, arg).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, wrapStoreError(err, "failed to find account")
	}

	return toAccountDomain(&m), nil
}

func (r *accountRepository) TouchSignIn(ctx context.Context, uid string, at time.Time) error {
	return r.update(ctx, uid, "last_sign_in_at", at)
}

func (r *accountRepository) RevokeTokens(ctx context.Context, uid string, at time.Time) error {
	return r.update(ctx, uid, "tokens_valid_after", at)
}

func (r *accountRepository) update(ctx context.Context, uid, column string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&model.AccountModel{}).Where("uid = ?", uid).Update(column, at)
	if res.Error != nil {
		return wrapStoreError(res.Error, "failed to update account")
	}
	if res.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func (r *accountRepository) Delete(ctx context.Context, uid string) error {
	res := r.db.WithContext(ctx).Where("uid = ?", uid).Delete(&model.AccountModel{})
	if res.Error != nil {
		return wrapStoreError(res.Error, "failed to delete account")
	}
	if res.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

func toAccountDomain(m *model.AccountModel) *entity.Account {
	a := &entity.Account{
		UID:          m.UID,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
	if m.LastSignInAt != nil {
		a.LastSignInAt = *m.LastSignInAt
	}
	if m.TokensValidAfter != nil {
		a.TokensValidAfter = *m.TokensValidAfter
	}

	return a
}

func fromAccountDomain(a *entity.Account) *model.AccountModel {
	m := &model.AccountModel{
		UID:          a.UID,
		Email:        a.Email,
		PasswordHash: a.PasswordHash,
		CreatedAt:    a.CreatedAt,
	}
	if !a.LastSignInAt.IsZero() {
		t := a.LastSignInAt
		m.LastSignInAt = &t
	}
	if !a.TokensValidAfter.IsZero() {
		t := a.TokensValidAfter
		m.TokensValidAfter = &t
	}

	return m
}
