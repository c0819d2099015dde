package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// ProfileService handles jobseeker profile operations
type ProfileService struct {
	db *gorm.DB
}

// Ensure ProfileService implements IProfileService
var _ IProfileService = (*ProfileService)(nil)

// NewProfileService creates a new ProfileService instance
func NewProfileService(db *gorm.DB) *ProfileService {
	return &ProfileService{
		db: db,
	}
}

// GetProfile retrieves a user's profile
func (s *ProfileService) GetProfile(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	var profile models.UserProfile
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "profile", ID: userID.String()}
		}
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile applies a shallow merge of the provided top-level fields.
// Nested documents replace the stored ones wholesale.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uuid.UUID, req *types.UpdateProfileRequest) (*models.UserProfile, error) {
	profile, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.PersonalInfo != nil {
		profile.PersonalInfo = *req.PersonalInfo
	}
	if req.Experience != nil {
		profile.Experience = *req.Experience
	}
	if req.Education != nil {
		profile.Education = *req.Education
	}
	if req.Skills != nil {
		profile.Skills = models.JSONBStringArray(*req.Skills)
	}
	if req.Certifications != nil {
		profile.Certifications = models.JSONBStringArray(*req.Certifications)
	}
	if req.Preferences != nil {
		prefs := *req.Preferences
		if prefs.WorkArrangement == "" {
			prefs.WorkArrangement = models.DefaultWorkArrangement
		}
		profile.Preferences = prefs
	}

	if err := s.db.WithContext(ctx).Save(profile).Error; err != nil {
		return nil, err
	}

	return profile, nil
}
