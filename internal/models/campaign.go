package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Campaign statuses. Completed is terminal: a completed campaign can no
// longer be toggled between active and paused.
const (
	CampaignStatusActive    = "active"
	CampaignStatusPaused    = "paused"
	CampaignStatusCompleted = "completed"
)

// Campaign is a saved job search: the keywords, companies and locations the
// monitor watches, plus rollup counters maintained by the application
// pipeline. The counters are read-only from the API surface.
type Campaign struct {
	ID                    uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID                uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"user_id"`
	Name                  string           `gorm:"not null" json:"name"`
	Status                string           `gorm:"not null;default:'active';index" json:"status"`
	Keywords              JSONBStringArray `gorm:"type:jsonb" json:"keywords"`
	Companies             JSONBStringArray `gorm:"type:jsonb" json:"companies"`
	Locations             JSONBStringArray `gorm:"type:jsonb" json:"locations"`
	ApplicationsSubmitted int              `gorm:"default:0" json:"applications_submitted"`
	Responses             int              `gorm:"default:0" json:"responses"`
	Interviews            int              `gorm:"default:0" json:"interviews"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	DeletedAt             gorm.DeletedAt   `gorm:"index" json:"-"`
	LastActivity          *time.Time       `json:"last_activity,omitempty"`
}

// IsActive reports whether the campaign should feed job monitoring.
func (c *Campaign) IsActive() bool {
	return c.Status == CampaignStatusActive
}
