package types

import "github.com/google/uuid"

// DailyStat is one day in the applications-by-day series
type DailyStat struct {
	Date         string `json:"date"`
	Applications int    `json:"applications"`
	Responses    int    `json:"responses"`
}

// KeywordStat ranks a keyword by the mean response rate of the campaigns
// that carry it
type KeywordStat struct {
	Keyword      string  `json:"keyword"`
	ResponseRate float64 `json:"response_rate"`
	Campaigns    int     `json:"campaigns"`
}

// DashboardStats is the payload behind the dashboard overview
type DashboardStats struct {
	TotalApplications     int           `json:"total_applications"`
	ResponseRate          float64       `json:"response_rate"`
	InterviewRate         float64       `json:"interview_rate"`
	AvgResponseTime       float64       `json:"avg_response_time"`
	WeekChangePercent     float64       `json:"week_change_percent"`
	ApplicationsByDay     []DailyStat   `json:"applications_by_day"`
	TopPerformingKeywords []KeywordStat `json:"top_performing_keywords"`
}

// CampaignStats is the per-campaign analytics view derived from the
// campaign's rollup counters
type CampaignStats struct {
	CampaignID            uuid.UUID `json:"campaign_id"`
	Name                  string    `json:"name"`
	Status                string    `json:"status"`
	ApplicationsSubmitted int       `json:"applications_submitted"`
	Responses             int       `json:"responses"`
	Interviews            int       `json:"interviews"`
	ResponseRate          float64   `json:"response_rate"`
	InterviewRate         float64   `json:"interview_rate"`
}

// UserAnalytics is the aggregate analytics payload for one user. The
// submitted/interview totals sum the campaign rollup counters, which can
// differ from the tracked Application rows.
type UserAnalytics struct {
	TotalCampaigns             int             `json:"total_campaigns"`
	ActiveCampaigns            int             `json:"active_campaigns"`
	TotalApplications          int             `json:"total_applications"`
	TotalApplicationsSubmitted int             `json:"total_applications_submitted"`
	TotalInterviews            int             `json:"total_interviews"`
	ResponseRate               float64         `json:"response_rate"`
	InterviewRate              float64         `json:"interview_rate"`
	Campaigns                  []CampaignStats `json:"campaigns"`
	ApplicationsByDay          []DailyStat     `json:"applications_by_day"`
}
