package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Resume is an uploaded resume file. The binary lives in S3 under StorageKey;
// ParsedData is whatever the parsing pipeline extracted and is stored opaque.
// At most one resume per user carries IsActive; uploads and activations clear
// the flag on the others.
type Resume struct {
	ID         uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID     uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Filename   string         `gorm:"not null" json:"filename"`
	Size       int64          `json:"size"`
	StorageKey string         `gorm:"not null" json:"-"`
	IsActive   bool           `gorm:"default:false" json:"is_active"`
	ParsedData JSONBMap       `gorm:"type:jsonb" json:"parsed_data,omitempty"`
	UploadedAt time.Time      `json:"uploaded_at"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`
}
