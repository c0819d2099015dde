package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// ApplicationService tracks submissions. Job and campaign references are
// fixed at creation; the rollup counters on the parent campaign are bumped
// here as applications are created and progress.
type ApplicationService struct {
	db *gorm.DB
}

var _ IApplicationService = (*ApplicationService)(nil)

func NewApplicationService(db *gorm.DB) *ApplicationService {
	return &ApplicationService{db: db}
}

// FilterApplications applies the tracker's search box and status dropdown.
// The search term matches case-insensitively against job title or company;
// the status filter is exact, with "all" passing everything. Both predicates
// must hold.
func FilterApplications(apps []*models.Application, search, statusFilter string) []*models.Application {
	needle := strings.ToLower(search)
	out := make([]*models.Application, 0, len(apps))
	for _, a := range apps {
		if needle != "" &&
			!strings.Contains(strings.ToLower(a.JobTitle), needle) &&
			!strings.Contains(strings.ToLower(a.Company), needle) {
			continue
		}
		if statusFilter != "all" && statusFilter != "" && a.Status != statusFilter {
			continue
		}
		out = append(out, a)
	}
	return out
}

// SortApplications orders a list by the given key without mutating the
// input. Company names compare under locale-aware collation so that accented
// names land where a person would expect them.
func SortApplications(apps []*models.Application, key string) []*models.Application {
	out := make([]*models.Application, len(apps))
	copy(out, apps)

	switch key {
	case "oldest":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AppliedDate.Before(out[j].AppliedDate)
		})
	case "company":
		c := collate.New(language.English, collate.IgnoreCase)
		sort.SliceStable(out, func(i, j int) bool {
			return c.CompareString(out[i].Company, out[j].Company) < 0
		})
	case "status":
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].Status < out[j].Status
		})
	default: // newest
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].AppliedDate.After(out[j].AppliedDate)
		})
	}
	return out
}

// Create records a submission and bumps the campaign's submitted counter.
func (s *ApplicationService) Create(ctx context.Context, userID uuid.UUID, req *types.CreateApplicationRequest) (*models.Application, error) {
	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		return nil, NewValidationError("invalid job_id")
	}
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return nil, NewValidationError("invalid campaign_id")
	}

	now := time.Now().UTC()
	app := models.Application{
		ID:                   uuid.New(),
		UserID:               userID,
		JobID:                jobID,
		CampaignID:           campaignID,
		JobTitle:             req.JobTitle,
		Company:              req.Company,
		Status:               models.ApplicationStatusSubmitted,
		AppliedDate:          now,
		SubmittedAt:          now,
		Source:               "linkedin",
		Salary:               req.Salary,
		Notes:                req.Notes,
		CoverLetterGenerated: req.CoverLetterGenerated,
		ResumeCustomized:     req.ResumeCustomized,
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&app).Error; err != nil {
			return err
		}
		return tx.Model(&models.Campaign{}).
			Where("id = ?", campaignID).
			Updates(map[string]interface{}{
				"applications_submitted": gorm.Expr("applications_submitted + 1"),
				"last_activity":          now,
			}).Error
	})
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) Get(ctx context.Context, id uuid.UUID) (*models.Application, error) {
	var app models.Application
	if err := s.db.WithContext(ctx).First(&app, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "application", ID: id.String()}
		}
		return nil, err
	}
	return &app, nil
}

func (s *ApplicationService) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Application, error) {
	var apps []*models.Application
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_date DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*models.Application, error) {
	var apps []*models.Application
	if err := s.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("applied_date DESC").
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *ApplicationService) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Application, error) {
	if limit <= 0 {
		limit = 10
	}
	var apps []*models.Application
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("applied_date DESC").
		Limit(limit).
		Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

// Update applies status and note changes. Moving into a responded state for
// the first time stamps response_received_at and bumps the campaign's
// response or interview counter.
func (s *ApplicationService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateApplicationRequest) (*models.Application, error) {
	app, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	counterUpdates := map[string]interface{}{}
	if req.Status != nil {
		switch *req.Status {
		case models.ApplicationStatusSubmitted, models.ApplicationStatusResponse,
			models.ApplicationStatusInterview, models.ApplicationStatusRejected,
			models.ApplicationStatusOffer:
		default:
			return nil, NewValidationError("invalid application status: %s", *req.Status)
		}

		wasResponse := app.CountsAsResponse()
		wasInterview := app.Status == models.ApplicationStatusInterview
		app.Status = *req.Status
		if app.CountsAsResponse() && app.ResponseReceivedAt == nil {
			now := time.Now().UTC()
			app.ResponseReceivedAt = &now
		}
		if app.CountsAsResponse() && !wasResponse {
			counterUpdates["responses"] = gorm.Expr("responses + 1")
		}
		if app.Status == models.ApplicationStatusInterview && !wasInterview {
			counterUpdates["interviews"] = gorm.Expr("interviews + 1")
		}
	}
	if req.Notes != nil {
		app.Notes = *req.Notes
	}
	if req.Salary != nil {
		app.Salary = *req.Salary
	}

	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(app).Error; err != nil {
			return err
		}
		if len(counterUpdates) > 0 {
			counterUpdates["last_activity"] = time.Now().UTC()
			return tx.Model(&models.Campaign{}).
				Where("id = ?", app.CampaignID).
				Updates(counterUpdates).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return app, nil
}

func (s *ApplicationService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Application{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "application", ID: id.String()}
	}
	return nil
}
