package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

func TestTimeUntilDeadline(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		deadline time.Time
		want     string
	}{
		{"hours and minutes", now.Add(2*time.Hour + 5*time.Minute), "2h 5m left"},
		{"under an hour", now.Add(45 * time.Minute), "45m left"},
		{"exactly at deadline", now, "Expired"},
		{"past deadline", now.Add(-3 * time.Hour), "Expired"},
		{"under a minute", now.Add(30 * time.Second), "0m left"},
		{"exact hours", now.Add(3 * time.Hour), "3h 0m left"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TimeUntilDeadline(tt.deadline, now))
		})
	}
}

func TestUrgencyFor(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, models.UrgencyExpired, UrgencyFor(now, now))
	assert.Equal(t, models.UrgencyExpired, UrgencyFor(now.Add(-time.Minute), now))
	assert.Equal(t, models.UrgencyCritical, UrgencyFor(now.Add(30*time.Minute), now))
	assert.Equal(t, models.UrgencyCritical, UrgencyFor(now.Add(time.Hour), now))
	assert.Equal(t, models.UrgencyHigh, UrgencyFor(now.Add(90*time.Minute), now))
	assert.Equal(t, models.UrgencyHigh, UrgencyFor(now.Add(2*time.Hour), now))
	assert.Equal(t, models.UrgencyMedium, UrgencyFor(now.Add(2*time.Hour+time.Minute), now))
}

// Urgency never decreases as the deadline approaches.
func TestUrgencyMonotonic(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	deadline := now.Add(3 * time.Hour)

	rank := map[string]int{
		models.UrgencyMedium:   0,
		models.UrgencyHigh:     1,
		models.UrgencyCritical: 2,
		models.UrgencyExpired:  3,
	}

	prev := -1
	for elapsed := time.Duration(0); elapsed <= 4*time.Hour; elapsed += 5 * time.Minute {
		u := UrgencyFor(deadline, now.Add(elapsed))
		r, ok := rank[u]
		require.True(t, ok, "unexpected urgency %q", u)
		assert.GreaterOrEqual(t, r, prev, "urgency went backwards at %v", elapsed)
		prev = r
	}
}

func TestMatchScore(t *testing.T) {
	base := &models.Job{Description: "Build things"}
	assert.Equal(t, 75, MatchScore(base))

	withSalary := &models.Job{Salary: "$100k", Description: "Build things"}
	assert.Equal(t, 80, MatchScore(withSalary))

	remote := &models.Job{Description: "Fully remote role"}
	assert.Equal(t, 85, MatchScore(remote))

	reqs := &models.Job{
		Description:  "Build things",
		Requirements: models.JSONBStringArray{"a", "b", "c"},
	}
	assert.Equal(t, 81, MatchScore(reqs))

	// Requirements bonus caps at 10
	manyReqs := &models.Job{
		Description:  "Build things",
		Requirements: models.JSONBStringArray{"a", "b", "c", "d", "e", "f", "g"},
	}
	assert.Equal(t, 85, MatchScore(manyReqs))

	maxed := &models.Job{
		Salary:       "$200k",
		Description:  "Hybrid, flexible hours",
		Requirements: models.JSONBStringArray{"a", "b", "c", "d", "e", "f"},
	}
	assert.Equal(t, 100, MatchScore(maxed))
}

func TestFilterJobs(t *testing.T) {
	jobs := []*models.Job{
		{Urgency: models.UrgencyCritical, Status: models.JobStatusMonitoring},
		{Urgency: models.UrgencyMedium, Status: models.JobStatusApplied},
		{Urgency: models.UrgencyHigh, Status: models.JobStatusMonitoring},
	}

	assert.Len(t, FilterJobs(jobs, "all"), 3)
	assert.Len(t, FilterJobs(jobs, "critical"), 1)
	assert.Len(t, FilterJobs(jobs, "applied"), 1)
	// Unknown filters pass everything through
	assert.Len(t, FilterJobs(jobs, "bogus"), 3)
}

func TestJobCreateSetsDeadlineAndScore(t *testing.T) {
	db := setupTestDB(t)
	campaigns := NewCampaignService(db)
	jobs := NewJobService(db)
	ctx := context.Background()

	campaign, err := campaigns.Create(ctx, uuid.New(), &types.CreateCampaignRequest{Name: "PM Search"})
	require.NoError(t, err)

	posted := time.Now().UTC().Add(-time.Hour).Truncate(time.Second)
	job, err := jobs.Create(ctx, &types.CreateJobRequest{
		CampaignID:   campaign.ID.String(),
		Title:        "Senior PM",
		Company:      "Acme",
		Salary:       "$150k",
		Description:  "Hybrid role",
		Requirements: []string{"5+ years"},
		PostedAt:     posted.Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.Equal(t, posted.Add(3*time.Hour), job.ApplicationDeadline.UTC())
	assert.Equal(t, models.JobStatusMonitoring, job.Status)
	assert.Equal(t, 92, job.MatchScore)
	assert.Equal(t, models.UrgencyHigh, job.Urgency)
}

func TestJobCreateUnknownCampaign(t *testing.T) {
	db := setupTestDB(t)
	jobs := NewJobService(db)

	_, err := jobs.Create(context.Background(), &types.CreateJobRequest{
		CampaignID: uuid.New().String(),
		Title:      "Senior PM",
		Company:    "Acme",
	})
	assert.True(t, IsNotFound(err))
}

func TestExpireOldJobs(t *testing.T) {
	db := setupTestDB(t)
	jobs := NewJobService(db)
	ctx := context.Background()

	campaignID := uuid.New()
	now := time.Now().UTC()

	stale := models.Job{
		ID: uuid.New(), CampaignID: campaignID, Title: "Old", Company: "Acme",
		Status: models.JobStatusMonitoring, PostedAt: now.Add(-5 * time.Hour),
		ApplicationDeadline: now.Add(-2 * time.Hour),
	}
	fresh := models.Job{
		ID: uuid.New(), CampaignID: campaignID, Title: "New", Company: "Acme",
		Status: models.JobStatusMonitoring, PostedAt: now,
		ApplicationDeadline: now.Add(3 * time.Hour),
	}
	applied := models.Job{
		ID: uuid.New(), CampaignID: campaignID, Title: "Done", Company: "Acme",
		Status: models.JobStatusApplied, PostedAt: now.Add(-5 * time.Hour),
		ApplicationDeadline: now.Add(-2 * time.Hour),
	}
	require.NoError(t, db.Create(&stale).Error)
	require.NoError(t, db.Create(&fresh).Error)
	require.NoError(t, db.Create(&applied).Error)

	count, err := jobs.ExpireOldJobs(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err := jobs.Get(ctx, stale.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusExpired, got.Status)

	got, err = jobs.Get(ctx, fresh.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusMonitoring, got.Status)

	// Applied jobs are left alone even past the deadline
	got, err = jobs.Get(ctx, applied.ID)
	require.NoError(t, err)
	assert.Equal(t, models.JobStatusApplied, got.Status)
}

func TestMarkAppliedExpiredJob(t *testing.T) {
	db := setupTestDB(t)
	jobs := NewJobService(db)
	ctx := context.Background()

	now := time.Now().UTC()
	job := models.Job{
		ID: uuid.New(), CampaignID: uuid.New(), Title: "Old", Company: "Acme",
		Status: models.JobStatusMonitoring, PostedAt: now.Add(-5 * time.Hour),
		ApplicationDeadline: now.Add(-2 * time.Hour),
	}
	require.NoError(t, db.Create(&job).Error)

	_, err := jobs.MarkApplied(ctx, job.ID)
	assert.True(t, IsValidation(err))
}
