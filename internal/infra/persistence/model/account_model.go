package model

import (
	"time"
)

// AccountModel mirrors the 'accounts' table used by the built-in identity provider.
type AccountModel struct {
	UID              string `gorm:"type:varchar(128);primaryKey"`
	Email            string `gorm:"type:varchar(255);unique;not null"`
	PasswordHash     string `gorm:"type:varchar(255);not null"`
	CreatedAt        time.Time
	LastSignInAt     *time.Time
	TokensValidAfter *time.Time
}

// TableName explicitly sets the table name for GORM.
func (AccountModel) TableName() string {
	return "accounts"
}
