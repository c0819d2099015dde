package types

import "github.com/aniketphatak/jobbot/backend/internal/models"

// RegisterRequest is the body for user registration
type RegisterRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

// LoginRequest is the body for user login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest updates top-level profile fields. Nested documents
// replace the stored ones wholesale when present.
type UpdateProfileRequest struct {
	PersonalInfo   *models.PersonalInfo    `json:"personal_info,omitempty"`
	Experience     *models.ExperienceList  `json:"experience,omitempty"`
	Education      *models.EducationList   `json:"education,omitempty"`
	Skills         *[]string               `json:"skills,omitempty"`
	Certifications *[]string               `json:"certifications,omitempty"`
	Preferences    *models.UserPreferences `json:"preferences,omitempty"`
}

// CreateCampaignRequest carries the campaign form. Keywords, companies and
// locations arrive as free text, comma separated.
type CreateCampaignRequest struct {
	Name      string `json:"name"`
	Keywords  string `json:"keywords"`
	Companies string `json:"companies"`
	Locations string `json:"locations"`
}

// UpdateCampaignRequest updates mutable campaign fields
type UpdateCampaignRequest struct {
	Name      *string   `json:"name,omitempty"`
	Status    *string   `json:"status,omitempty"`
	Keywords  *[]string `json:"keywords,omitempty"`
	Companies *[]string `json:"companies,omitempty"`
	Locations *[]string `json:"locations,omitempty"`
}

// CreateJobRequest is the body for recording a discovered posting
type CreateJobRequest struct {
	CampaignID    string   `json:"campaign_id" binding:"required"`
	Title         string   `json:"title" binding:"required"`
	Company       string   `json:"company" binding:"required"`
	Location      string   `json:"location"`
	Salary        string   `json:"salary"`
	Description   string   `json:"description"`
	Requirements  []string `json:"requirements"`
	PostedAt      string   `json:"posted_at"`
	LinkedInJobID string   `json:"linkedin_job_id"`
	LinkedInURL   string   `json:"linkedin_url"`
}

// UpdateJobRequest updates mutable job fields
type UpdateJobRequest struct {
	Status     *string `json:"status,omitempty"`
	MatchScore *int    `json:"match_score,omitempty"`
	Urgency    *string `json:"urgency,omitempty"`
}

// CreateApplicationRequest records a submission against a job
type CreateApplicationRequest struct {
	JobID                string `json:"job_id" binding:"required"`
	CampaignID           string `json:"campaign_id" binding:"required"`
	JobTitle             string `json:"job_title" binding:"required"`
	Company              string `json:"company" binding:"required"`
	Salary               string `json:"salary"`
	Notes                string `json:"notes"`
	CoverLetterGenerated bool   `json:"cover_letter_generated"`
	ResumeCustomized     bool   `json:"resume_customized"`
}

// UpdateApplicationRequest updates application status and notes
type UpdateApplicationRequest struct {
	Status *string `json:"status,omitempty"`
	Notes  *string `json:"notes,omitempty"`
	Salary *string `json:"salary,omitempty"`
}

// AIPreferenceRequest saves a provider and model choice
type AIPreferenceRequest struct {
	Provider string `json:"provider" binding:"required,oneof=openai anthropic"`
	Model    string `json:"model" binding:"required"`
}

// GenerateRequest is the shared body for content generation endpoints
type GenerateRequest struct {
	JobID    string `json:"job_id"`
	Provider string `json:"provider"`
	Model    string `json:"model"`
}
