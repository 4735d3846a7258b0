package model

import (
	"time"
)

// ProfileModel mirrors the 'user_profiles' table. UID is the identity provider's user id.
type ProfileModel struct {
	UID         string `gorm:"type:varchar(128);primaryKey"`
	Email       string `gorm:"type:varchar(255)"`
	FullName    string `gorm:"type:varchar(100)"`
	PhoneNumber string `gorm:"type:varchar(20)"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "user_profiles"
}
