package service

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// AnalyticsService derives dashboard and per-campaign metrics from the
// stored applications and campaign counters.
type AnalyticsService struct {
	db *gorm.DB
}

var _ IAnalyticsService = (*AnalyticsService)(nil)

func NewAnalyticsService(db *gorm.DB) *AnalyticsService {
	return &AnalyticsService{db: db}
}

// Rate converts a count over a total into a percentage rounded to one
// decimal place. A zero total yields 0 rather than NaN.
func Rate(n, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(float64(n)/float64(total)*1000) / 10
}

// CampaignRates derives the analytics view of one campaign from its rollup
// counters.
func CampaignRates(c *models.Campaign) types.CampaignStats {
	return types.CampaignStats{
		CampaignID:            c.ID,
		Name:                  c.Name,
		Status:                c.Status,
		ApplicationsSubmitted: c.ApplicationsSubmitted,
		Responses:             c.Responses,
		Interviews:            c.Interviews,
		ResponseRate:          Rate(c.Responses, c.ApplicationsSubmitted),
		InterviewRate:         Rate(c.Interviews, c.ApplicationsSubmitted),
	}
}

// DashboardStats assembles the dashboard overview for one user.
func (s *AnalyticsService) DashboardStats(ctx context.Context, userID uuid.UUID) (*types.DashboardStats, error) {
	apps, err := s.loadApplications(ctx, userID)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	total := len(apps)
	responses := 0
	interviews := 0
	for _, a := range apps {
		if a.CountsAsResponse() {
			responses++
		}
		if a.Status == models.ApplicationStatusInterview {
			interviews++
		}
	}

	series := dailySeries(apps, now, 30)

	campaigns, err := s.loadCampaigns(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &types.DashboardStats{
		TotalApplications:     total,
		ResponseRate:          Rate(responses, total),
		InterviewRate:         Rate(interviews, total),
		AvgResponseTime:       avgResponseDays(apps),
		WeekChangePercent:     weekChange(apps, now),
		ApplicationsByDay:     series[len(series)-7:],
		TopPerformingKeywords: topKeywords(campaigns, 5),
	}, nil
}

// UserAnalytics assembles the aggregate analytics payload for one user.
func (s *AnalyticsService) UserAnalytics(ctx context.Context, userID uuid.UUID) (*types.UserAnalytics, error) {
	campaigns, err := s.loadCampaigns(ctx, userID)
	if err != nil {
		return nil, err
	}
	apps, err := s.loadApplications(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := len(apps)
	responses := 0
	interviews := 0
	for _, a := range apps {
		if a.CountsAsResponse() {
			responses++
		}
		if a.Status == models.ApplicationStatusInterview {
			interviews++
		}
	}

	active := 0
	submitted := 0
	counterInterviews := 0
	stats := make([]types.CampaignStats, 0, len(campaigns))
	for _, c := range campaigns {
		if c.IsActive() {
			active++
		}
		submitted += c.ApplicationsSubmitted
		counterInterviews += c.Interviews
		stats = append(stats, CampaignRates(c))
	}

	return &types.UserAnalytics{
		TotalCampaigns:             len(campaigns),
		ActiveCampaigns:            active,
		TotalApplications:          total,
		TotalApplicationsSubmitted: submitted,
		TotalInterviews:            counterInterviews,
		ResponseRate:               Rate(responses, total),
		InterviewRate:              Rate(interviews, total),
		Campaigns:                  stats,
		ApplicationsByDay:          dailySeries(apps, time.Now().UTC(), 30),
	}, nil
}

func (s *AnalyticsService) loadApplications(ctx context.Context, userID uuid.UUID) ([]*models.Application, error) {
	var apps []*models.Application
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&apps).Error; err != nil {
		return nil, err
	}
	return apps, nil
}

func (s *AnalyticsService) loadCampaigns(ctx context.Context, userID uuid.UUID) ([]*models.Campaign, error) {
	var campaigns []*models.Campaign
	if err := s.db.WithContext(ctx).Where("user_id = ?", userID).Find(&campaigns).Error; err != nil {
		return nil, err
	}
	return campaigns, nil
}

// avgResponseDays is the mean days between submission and first response,
// over applications that received one.
func avgResponseDays(apps []*models.Application) float64 {
	var totalDays float64
	n := 0
	for _, a := range apps {
		if a.ResponseReceivedAt == nil {
			continue
		}
		totalDays += a.ResponseReceivedAt.Sub(a.SubmittedAt).Hours() / 24
		n++
	}
	if n == 0 {
		return 0
	}
	return math.Round(totalDays/float64(n)*10) / 10
}

// weekChange compares submissions in the last 7 days against the 7 days
// before that, as a percentage change.
func weekChange(apps []*models.Application, now time.Time) float64 {
	weekAgo := now.AddDate(0, 0, -7)
	twoWeeksAgo := now.AddDate(0, 0, -14)

	thisWeek := 0
	lastWeek := 0
	for _, a := range apps {
		switch {
		case a.AppliedDate.After(weekAgo):
			thisWeek++
		case a.AppliedDate.After(twoWeeksAgo):
			lastWeek++
		}
	}

	if lastWeek == 0 {
		if thisWeek == 0 {
			return 0
		}
		return 100
	}
	return math.Round(float64(thisWeek-lastWeek)/float64(lastWeek)*1000) / 10
}

// dailySeries buckets applications and responses per calendar day over the
// trailing window, oldest day first.
func dailySeries(apps []*models.Application, now time.Time, days int) []types.DailyStat {
	byDay := make(map[string]*types.DailyStat, days)
	series := make([]types.DailyStat, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i).Format("2006-01-02")
		series = append(series, types.DailyStat{Date: day})
		byDay[day] = &series[len(series)-1]
	}

	for _, a := range apps {
		if stat, ok := byDay[a.AppliedDate.UTC().Format("2006-01-02")]; ok {
			stat.Applications++
		}
		if a.ResponseReceivedAt != nil {
			if stat, ok := byDay[a.ResponseReceivedAt.UTC().Format("2006-01-02")]; ok {
				stat.Responses++
			}
		}
	}
	return series
}

// topKeywords ranks keywords by the mean response rate of the campaigns
// carrying them and returns the best n.
func topKeywords(campaigns []*models.Campaign, n int) []types.KeywordStat {
	type acc struct {
		sum   float64
		count int
	}
	byKeyword := make(map[string]*acc)
	order := make([]string, 0)

	for _, c := range campaigns {
		rate := Rate(c.Responses, c.ApplicationsSubmitted)
		for _, k := range c.Keywords {
			a, ok := byKeyword[k]
			if !ok {
				a = &acc{}
				byKeyword[k] = a
				order = append(order, k)
			}
			a.sum += rate
			a.count++
		}
	}

	stats := make([]types.KeywordStat, 0, len(order))
	for _, k := range order {
		a := byKeyword[k]
		stats = append(stats, types.KeywordStat{
			Keyword:      k,
			ResponseRate: math.Round(a.sum/float64(a.count)*10) / 10,
			Campaigns:    a.count,
		})
	}

	sort.SliceStable(stats, func(i, j int) bool {
		return stats[i].ResponseRate > stats[j].ResponseRate
	})
	if len(stats) > n {
		stats = stats[:n]
	}
	return stats
}
