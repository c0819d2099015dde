package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// JobService manages discovered postings and their short application window.
type JobService struct {
	db *gorm.DB
}

var _ IJobService = (*JobService)(nil)

func NewJobService(db *gorm.DB) *JobService {
	return &JobService{db: db}
}

// TimeUntilDeadline renders the countdown shown next to a posting. Once the
// deadline passes the label collapses to "Expired" regardless of how long ago.
func TimeUntilDeadline(deadline, now time.Time) string {
	diff := deadline.Sub(now)
	if diff <= 0 {
		return "Expired"
	}
	hours := int(diff / time.Hour)
	minutes := int((diff % time.Hour) / time.Minute)
	if hours == 0 {
		return fmt.Sprintf("%dm left", minutes)
	}
	return fmt.Sprintf("%dh %dm left", hours, minutes)
}

// UrgencyFor buckets a posting by time remaining before its deadline.
func UrgencyFor(deadline, now time.Time) string {
	diff := deadline.Sub(now)
	switch {
	case diff <= 0:
		return models.UrgencyExpired
	case diff <= time.Hour:
		return models.UrgencyCritical
	case diff <= 2*time.Hour:
		return models.UrgencyHigh
	default:
		return models.UrgencyMedium
	}
}

// MatchScore estimates posting fit on a 0 to 100 scale. The base of 75
// reflects that campaign keywords already matched; salary transparency,
// flexible arrangements and richer requirement lists push it up.
func MatchScore(job *models.Job) int {
	score := 75
	if job.Salary != "" {
		score += 5
	}
	desc := strings.ToLower(job.Description)
	if strings.Contains(desc, "remote") || strings.Contains(desc, "hybrid") || strings.Contains(desc, "flexible") {
		score += 10
	}
	reqBonus := 2 * len(job.Requirements)
	if reqBonus > 10 {
		reqBonus = 10
	}
	score += reqBonus
	if score > 100 {
		score = 100
	}
	return score
}

// FilterJobs narrows a posting list by the board's quick filters. "all"
// passes everything, "critical" matches urgency, "applied" matches status.
// Unknown filters pass everything through.
func FilterJobs(jobs []*models.Job, filter string) []*models.Job {
	switch filter {
	case "critical":
		out := make([]*models.Job, 0, len(jobs))
		for _, j := range jobs {
			if j.Urgency == models.UrgencyCritical {
				out = append(out, j)
			}
		}
		return out
	case "applied":
		out := make([]*models.Job, 0, len(jobs))
		for _, j := range jobs {
			if j.Status == models.JobStatusApplied {
				out = append(out, j)
			}
		}
		return out
	default:
		return jobs
	}
}

// Create records a discovered posting. The application deadline is derived
// from the posting time, and urgency and match score are computed up front.
func (s *JobService) Create(ctx context.Context, req *types.CreateJobRequest) (*models.Job, error) {
	campaignID, err := uuid.Parse(req.CampaignID)
	if err != nil {
		return nil, NewValidationError("invalid campaign_id")
	}

	var campaign models.Campaign
	if err := s.db.WithContext(ctx).First(&campaign, "id = ?", campaignID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "campaign", ID: req.CampaignID}
		}
		return nil, err
	}

	postedAt := time.Now().UTC()
	if req.PostedAt != "" {
		t, err := time.Parse(time.RFC3339, req.PostedAt)
		if err != nil {
			return nil, NewValidationError("posted_at must be RFC3339")
		}
		postedAt = t.UTC()
	}

	job := models.Job{
		ID:                  uuid.New(),
		CampaignID:          campaignID,
		Title:               req.Title,
		Company:             req.Company,
		Location:            req.Location,
		Salary:              req.Salary,
		Description:         req.Description,
		Requirements:        models.JSONBStringArray(req.Requirements),
		PostedAt:            postedAt,
		ApplicationDeadline: postedAt.Add(models.ApplicationWindow),
		Status:              models.JobStatusMonitoring,
		LinkedInJobID:       req.LinkedInJobID,
		LinkedInURL:         req.LinkedInURL,
	}
	job.MatchScore = MatchScore(&job)
	job.Urgency = UrgencyFor(job.ApplicationDeadline, time.Now().UTC())

	if err := s.db.WithContext(ctx).Create(&job).Error; err != nil {
		return nil, err
	}
	return &job, nil
}

func (s *JobService) Get(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	var job models.Job
	if err := s.db.WithContext(ctx).First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Entity: "job", ID: id.String()}
		}
		return nil, err
	}
	return &job, nil
}

func (s *JobService) ListByCampaign(ctx context.Context, campaignID uuid.UUID) ([]*models.Job, error) {
	var jobs []*models.Job
	if err := s.db.WithContext(ctx).
		Where("campaign_id = ?", campaignID).
		Order("application_deadline ASC").
		Find(&jobs).Error; err != nil {
		return nil, err
	}
	return jobs, nil
}

// ListActive returns postings still worth acting on: monitoring status,
// deadline in the future, soonest deadline first.
func (s *JobService) ListActive(ctx context.Context, campaignIDs []uuid.UUID) ([]*models.Job, error) {
	var jobs []*models.Job
	q := s.db.WithContext(ctx).
		Where("status = ? AND application_deadline > ?", models.JobStatusMonitoring, time.Now().UTC()).
		Order("application_deadline ASC")
	if len(campaignIDs) > 0 {
		q = q.Where("campaign_id IN ?", campaignIDs)
	}
	if err := q.Find(&jobs).Error; err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	for _, j := range jobs {
		j.Urgency = UrgencyFor(j.ApplicationDeadline, now)
	}
	return jobs, nil
}

func (s *JobService) Update(ctx context.Context, id uuid.UUID, req *types.UpdateJobRequest) (*models.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Status != nil {
		switch *req.Status {
		case models.JobStatusMonitoring, models.JobStatusCustomizing, models.JobStatusApplied,
			models.JobStatusResponseReceived, models.JobStatusExpired:
		default:
			return nil, NewValidationError("invalid job status: %s", *req.Status)
		}
		job.Status = *req.Status
	}
	if req.MatchScore != nil {
		if *req.MatchScore < 0 || *req.MatchScore > 100 {
			return nil, NewValidationError("match_score must be between 0 and 100")
		}
		job.MatchScore = *req.MatchScore
	}
	if req.Urgency != nil {
		job.Urgency = *req.Urgency
	}

	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// MarkApplied transitions a posting to applied. Expired postings cannot be
// applied to.
func (s *JobService) MarkApplied(ctx context.Context, id uuid.UUID) (*models.Job, error) {
	job, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if job.Status == models.JobStatusExpired {
		return nil, NewValidationError("job has expired")
	}
	if !job.ApplicationDeadline.After(time.Now().UTC()) {
		return nil, NewValidationError("application deadline has passed")
	}

	job.Status = models.JobStatusApplied
	if err := s.db.WithContext(ctx).Save(job).Error; err != nil {
		return nil, err
	}
	return job, nil
}

// ExpireOldJobs sweeps monitoring postings whose deadline has passed and
// returns how many were expired.
func (s *JobService) ExpireOldJobs(ctx context.Context) (int64, error) {
	result := s.db.WithContext(ctx).
		Model(&models.Job{}).
		Where("status = ? AND application_deadline <= ?", models.JobStatusMonitoring, time.Now().UTC()).
		Updates(map[string]interface{}{
			"status":  models.JobStatusExpired,
			"urgency": models.UrgencyExpired,
		})
	return result.RowsAffected, result.Error
}

func (s *JobService) Delete(ctx context.Context, id uuid.UUID) error {
	result := s.db.WithContext(ctx).Delete(&models.Job{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return &NotFoundError{Entity: "job", ID: id.String()}
	}
	return nil
}
