package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Supported content generation providers.
const (
	ProviderOpenAI    = "openai"
	ProviderAnthropic = "anthropic"
)

// Kinds of generated content.
const (
	ContentKindCoverLetter     = "cover_letter"
	ContentKindResumeSummary   = "resume_summary"
	ContentKindLinkedInMessage = "linkedin_message"
)

// AIPreference is a user's saved provider and model choice, one row per user.
type AIPreference struct {
	ID        uuid.UUID `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID `gorm:"type:varchar(36);not null;uniqueIndex" json:"user_id"`
	Provider  string    `gorm:"not null;default:'openai'" json:"provider"`
	Model     string    `gorm:"not null" json:"model"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GeneratedContent is one saved generation result, kept for history.
type GeneratedContent struct {
	ID        uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID    uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	JobID     uuid.UUID      `gorm:"type:varchar(36);index" json:"job_id"`
	Kind      string         `gorm:"not null;index" json:"kind"`
	Provider  string         `gorm:"not null" json:"provider"`
	Model     string         `gorm:"not null" json:"model"`
	Content   string         `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
