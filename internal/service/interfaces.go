package service

import (
	"context"
	"mime/multipart"

	"github.com/google/uuid"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// IAuthService defines the interface for authentication operations
type IAuthService interface {
	Register(ctx context.Context, name, email, password string) (*models.User, string, error)
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	ValidateToken(token string) (*types.TokenClaims, error)
}

// IProfileService defines the interface for jobseeker profile operations
type IProfileService interface {
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error)
}

// ICampaignService defines the interface for campaign lifecycle operations
type ICampaignService interface {
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateCampaignRequest) (*models.Campaign, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Campaign, error)
	ListActive(ctx context.Context, userID uuid.UUID) ([]*models.Campaign, error)
	Update(ctx context.Context, id uuid.UUID, req *types.UpdateCampaignRequest) (*models.Campaign, error)
	ToggleStatus(ctx context.Context, id uuid.UUID) (*models.Campaign, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IJobService defines the interface for discovered posting operations
type IJobService interface {
	Create(ctx context.Context, req *types.CreateJobRequest) (*models.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*models.Job, error)
	ListActive(ctx context.Context, campaignIDs []uuid.UUID) ([]*models.Job, error)
	Update(ctx context.Context, id uuid.UUID, req *types.UpdateJobRequest) (*models.Job, error)
	MarkApplied(ctx context.Context, id uuid.UUID) (*models.Job, error)
	ExpireOldJobs(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IApplicationService defines the interface for application tracking
type IApplicationService interface {
	Create(ctx context.Context, userID uuid.UUID, req *types.CreateApplicationRequest) (*models.Application, error)
	Get(ctx context.Context, id uuid.UUID) (*models.Application, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Application, error)
	ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*models.Application, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Application, error)
	Update(ctx context.Context, id uuid.UUID, req *types.UpdateApplicationRequest) (*models.Application, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// IAnalyticsService defines the interface for the metrics engine
type IAnalyticsService interface {
	DashboardStats(ctx context.Context, userID uuid.UUID) (*types.DashboardStats, error)
	UserAnalytics(ctx context.Context, userID uuid.UUID) (*types.UserAnalytics, error)
}

// IAIService defines the interface for content generation
type IAIService interface {
	Models() []ProviderModels
	GetPreference(ctx context.Context, userID uuid.UUID) (*models.AIPreference, error)
	SavePreference(ctx context.Context, userID uuid.UUID, provider, model string) (*models.AIPreference, error)
	GenerateCoverLetter(ctx context.Context, userID uuid.UUID, req *types.GenerateRequest) (*CoverLetterResult, error)
	GenerateResumeSummary(ctx context.Context, userID uuid.UUID, req *types.GenerateRequest) (*ResumeSummaryResult, error)
	GenerateLinkedInMessage(ctx context.Context, userID uuid.UUID, req *types.GenerateRequest) (*LinkedInMessageResult, error)
	History(ctx context.Context, userID uuid.UUID, limit int) (map[string][]*models.GeneratedContent, error)
}

// IResumeService defines the interface for resume file management
type IResumeService interface {
	Upload(ctx context.Context, userID uuid.UUID, file multipart.File, header *multipart.FileHeader) (*models.Resume, error)
	List(ctx context.Context, userID uuid.UUID) ([]*models.Resume, error)
	Active(ctx context.Context, userID uuid.UUID) (*models.Resume, error)
	Activate(ctx context.Context, userID, resumeID uuid.UUID) (*models.Resume, error)
	Delete(ctx context.Context, userID, resumeID uuid.UUID) error
	DownloadURL(ctx context.Context, userID, resumeID uuid.UUID) (string, error)
}

// ILinkedInService defines the interface for the LinkedIn integration surface
type ILinkedInService interface {
	AuthURL(state string) string
	RateLimitStatus(ctx context.Context) (*RateLimitStatus, error)
	RecordCall(ctx context.Context) error
}
