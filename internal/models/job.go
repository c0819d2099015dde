package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Job statuses follow the posting through its short LinkedIn lifetime.
const (
	JobStatusMonitoring       = "monitoring"
	JobStatusCustomizing      = "customizing"
	JobStatusApplied          = "applied"
	JobStatusResponseReceived = "response_received"
	JobStatusExpired          = "expired"
)

// Urgency levels derived from time remaining before the application deadline.
const (
	UrgencyLow      = "low"
	UrgencyMedium   = "medium"
	UrgencyHigh     = "high"
	UrgencyCritical = "critical"
	UrgencyExpired  = "expired"
)

// ApplicationWindow is how long a discovered posting stays applicable.
// Deadlines are set to posted_at plus this window.
const ApplicationWindow = 3 * time.Hour

// Job is a discovered posting tied to the campaign that matched it.
type Job struct {
	ID                  uuid.UUID        `gorm:"type:varchar(36);primarykey" json:"id"`
	CampaignID          uuid.UUID        `gorm:"type:varchar(36);not null;index" json:"campaign_id"`
	Title               string           `gorm:"not null" json:"title"`
	Company             string           `gorm:"not null" json:"company"`
	Location            string           `json:"location"`
	Salary              string           `json:"salary,omitempty"`
	Description         string           `gorm:"type:text" json:"description"`
	Requirements        JSONBStringArray `gorm:"type:jsonb" json:"requirements"`
	PostedAt            time.Time        `json:"posted_at"`
	ApplicationDeadline time.Time        `gorm:"index" json:"application_deadline"`
	Status              string           `gorm:"not null;default:'monitoring';index" json:"status"`
	MatchScore          int              `gorm:"default:0" json:"match_score"`
	Urgency             string           `gorm:"default:'medium'" json:"urgency"`
	LinkedInJobID       string           `json:"linkedin_job_id,omitempty"`
	LinkedInURL         string           `json:"linkedin_url,omitempty"`
	CreatedAt           time.Time        `json:"created_at"`
	UpdatedAt           time.Time        `json:"updated_at"`
	DeletedAt           gorm.DeletedAt   `gorm:"index" json:"-"`
}
