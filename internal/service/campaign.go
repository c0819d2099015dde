package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// CampaignService manages the campaign lifecycle. Campaign rollup counters
// (applications_submitted, responses, interviews) are maintained by the
// application pipeline and never written through this service.
type CampaignService struct {
	db *gorm.DB
}

var _ ICampaignService = (*CampaignService)(nil)

func NewCampaignService(db *gorm.DB) *CampaignService {
	return &CampaignService{db: db}
}

// SplitTerms turns a comma separated form field into a clean list. Order is
// preserved and duplicates are kept; only surrounding whitespace and empty
// entries are dropped.
func SplitTerms(raw string) []string {
	parts := strings.Split(raw, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		t := strings.TrimSpace(p)
		if t == "" {
			continue
		}
		terms = append(terms, t)
	}
	return terms
}

// Create validates the campaign form and stores a new active campaign.
func (s *CampaignService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateCampaignRequest) (*models.Campaign, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, NewValidationError("Campaign name is required")
	}

	campaign := models.Campaign{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      strings.TrimSpace(req.Name),
		Status:    models.CampaignStatusActive,
		Keywords:  SplitTerms(req.Keywords),
		Companies: SplitTerms(req.Companies),
		Locations: SplitTerms(req.Locations),
	}

	if err := s.db.WithContext(ctx).Create(&campaign).Error; err != nil {
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) Get(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	var campaign models.Campaign
	if err := s.db.WithContext(ctx).First(&campaign, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "campaign", ID: id.String()}
		}
		return nil, err
	}
	return &campaign, nil
}

func (s *CampaignService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// ListActive returns the campaigns feeding job monitoring.
func (s *CampaignService) ListActive(ctx context.Context, userID uuid.UUID) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND status = ?", userID, models.CampaignStatusActive).
		Order("created_at DESC").
		Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Update applies mutable campaign fields. Status changes through here must
// still respect the terminal completed state.
func (s *CampaignService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateCampaignRequest) (*models.Campaign, error) {
	campaign, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, NewValidationError("Campaign name is required")
		}
		campaign.Name = strings.TrimSpace(*req.Name)
	}
	if req.Status != nil {
		switch *req.Status {
		case models.CampaignStatusActive, models.CampaignStatusPaused, models.CampaignStatusCompleted:
		default:
			return nil, NewValidationError("invalid campaign status: %s", *req.Status)
		}
		if campaign.Status == models.CampaignStatusCompleted && *req.Status != models.CampaignStatusCompleted {
			return nil, NewValidationError("completed campaigns cannot be reactivated")
		}
		campaign.Status = *req.Status
	}
	if req.Keywords != nil {
		campaign.Keywords = models.JSONBStringArray(*req.Keywords)
	}
	if req.Companies != nil {
		campaign.Companies = models.JSONBStringArray(*req.Companies)
	}
	if req.Locations != nil {
		campaign.Locations = models.JSONBStringArray(*req.Locations)
	}

	now := time.Now().UTC()
	campaign.LastActivity = &now

	if err := s.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

// ToggleStatus flips a campaign between active and paused. Completed is
// terminal.
func (s *CampaignService) ToggleStatus(ctx context.Context, id uuid.UUID) (*models.Campaign, error) {
	campaign, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	switch campaign.Status {
	case models.CampaignStatusActive:
		campaign.Status = models.CampaignStatusPaused
	case models.CampaignStatusPaused:
		campaign.Status = models.CampaignStatusActive
	default:
		return nil, NewValidationError("campaign is completed and cannot be toggled")
	}

	now := time.Now().UTC()
	campaign.LastActivity = &now

	if err := s.db.WithContext(ctx).Save(campaign).Error; err != nil {
		return nil, err
	}
	return campaign, nil
}

func (s *CampaignService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Campaign{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "campaign", ID: id.String()}
	}
	return nil
}
