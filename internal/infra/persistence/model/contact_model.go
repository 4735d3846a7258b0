package model

import (
	"time"

	"github.com/google/uuid"
)

// ContactMessageModel mirrors the append-only 'contact_messages' table.
type ContactMessageModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null"`
	Phone     string    `gorm:"type:varchar(20);not null"`
	Email     string    `gorm:"type:varchar(255);not null"`
	Message   string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"not null;index"`
}

// TableName explicitly sets the table name for GORM.
func (ContactMessageModel) TableName() string {
	return "contact_messages"
}
