package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UUIDBase 所有实体共用的主键与时间戳
// swagger:model
type UUIDBase struct {
	ID        string         `gorm:"primaryKey;type:varchar(36)" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (b *UUIDBase) BeforeCreate(tx *gorm.DB) error {
	b.ensureID()
	return nil
}

// Touch fills the id and creation time if unset and bumps UpdatedAt.
// Stores that bypass gorm hooks call it on every write.
func (b *UUIDBase) Touch(now time.Time) {
	b.ensureID()
	if b.CreatedAt.IsZero() {
		b.CreatedAt = now
	}
	b.UpdatedAt = now
}

func (b *UUIDBase) ensureID() {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
}
