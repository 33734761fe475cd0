package entities

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"swea-cms.backend/pkg/utils"
)

// Base carries the columns shared by every persisted record. Soft deletes go
// through gorm.DeletedAt: standard queries exclude flagged rows, Unscoped
// reaches them for restore and permanent delete.
type Base struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"deletedAt,omitempty"`
}

// BeforeCreate assigns a UUIDv7 primary key when none was set.
func (b *Base) BeforeCreate(tx *gorm.DB) error {
	if b.ID == uuid.Nil {
		b.ID = utils.GenerateUUIDv7()
	}
	return nil
}
