package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Application statuses. "response", "interview" and "offer" all count as
// responses for analytics purposes; only "interview" counts as an interview.
const (
	ApplicationStatusSubmitted = "submitted"
	ApplicationStatusResponse  = "response"
	ApplicationStatusInterview = "interview"
	ApplicationStatusRejected  = "rejected"
	ApplicationStatusOffer     = "offer"
)

// Application records one submission. JobID and CampaignID are fixed at
// creation and never reassigned; JobTitle and Company are denormalized so
// listings survive job expiry and deletion.
type Application struct {
	ID                   uuid.UUID      `gorm:"type:varchar(36);primarykey" json:"id"`
	UserID               uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"user_id"`
	JobID                uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"job_id"`
	CampaignID           uuid.UUID      `gorm:"type:varchar(36);not null;index" json:"campaign_id"`
	JobTitle             string         `gorm:"not null" json:"job_title"`
	Company              string         `gorm:"not null" json:"company"`
	Status               string         `gorm:"not null;default:'submitted';index" json:"status"`
	AppliedDate          time.Time      `gorm:"index" json:"applied_date"`
	SubmittedAt          time.Time      `json:"submitted_at"`
	ResponseReceivedAt   *time.Time     `json:"response_received_at,omitempty"`
	Source               string         `gorm:"default:'linkedin'" json:"source"`
	Salary               string         `json:"salary,omitempty"`
	Notes                string         `gorm:"type:text" json:"notes,omitempty"`
	CoverLetterGenerated bool           `gorm:"default:false" json:"cover_letter_generated"`
	ResumeCustomized     bool           `gorm:"default:false" json:"resume_customized"`
	CreatedAt            time.Time      `json:"created_at"`
	UpdatedAt            time.Time      `json:"updated_at"`
	DeletedAt            gorm.DeletedAt `gorm:"index" json:"-"`
}

// CountsAsResponse reports whether the application reached the employer's
// attention in any form.
func (a *Application) CountsAsResponse() bool {
	switch a.Status {
	case ApplicationStatusResponse, ApplicationStatusInterview, ApplicationStatusOffer:
		return true
	}
	return false
}
