package service

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/aniketphatak/jobbot/backend/config"
)

// RateLimitStatus reports how much of the LinkedIn daily call budget is left.
type RateLimitStatus struct {
	CallsMadeToday int    `json:"calls_made_today"`
	DailyLimit     int    `json:"daily_limit"`
	CallsRemaining int    `json:"calls_remaining"`
	ResetsAt       string `json:"resets_at"`
}

// LinkedInService exposes the OAuth authorize URL and tracks the daily API
// call budget in redis. The counter resets at midnight UTC. Without a redis
// client the counter is not tracked and the budget reads as unused.
type LinkedInService struct {
	redis       *redis.Client
	clientID    string
	redirectURI string
	dailyLimit  int
}

var _ ILinkedInService = (*LinkedInService)(nil)

func NewLinkedInService(redisClient *redis.Client, cfg *config.Config) *LinkedInService {
	return &LinkedInService{
		redis:       redisClient,
		clientID:    cfg.LinkedInClientID,
		redirectURI: cfg.LinkedInRedirectURI,
		dailyLimit:  cfg.LinkedInDailyLimit,
	}
}

// AuthURL builds the LinkedIn OAuth authorize URL, carrying the optional
// state through for CSRF protection.
func (s *LinkedInService) AuthURL(state string) string {
	q := url.Values{}
	q.Set("response_type", "code")
	q.Set("client_id", s.clientID)
	q.Set("redirect_uri", s.redirectURI)
	q.Set("scope", "openid profile email")
	if state != "" {
		q.Set("state", state)
	}
	return "https://www.linkedin.com/oauth/v2/authorization?" + q.Encode()
}

func (s *LinkedInService) counterKey(now time.Time) string {
	return fmt.Sprintf("linkedin:calls:%s", now.UTC().Format("2006-01-02"))
}

// RateLimitStatus reads today's call count without incrementing it.
func (s *LinkedInService) RateLimitStatus(ctx context.Context) (*RateLimitStatus, error) {
	count := 0
	if s.redis != nil {
		n, err := s.redis.Get(ctx, s.counterKey(time.Now())).Int()
		if err != nil && err != redis.Nil {
			return nil, err
		}
		count = n
	}

	remaining := s.dailyLimit - count
	if remaining < 0 {
		remaining = 0
	}

	return &RateLimitStatus{
		CallsMadeToday: count,
		DailyLimit:     s.dailyLimit,
		CallsRemaining: remaining,
		ResetsAt:       "00:00 UTC",
	}, nil
}

// RecordCall increments today's counter, expiring the key at midnight UTC.
func (s *LinkedInService) RecordCall(ctx context.Context) error {
	if s.redis == nil {
		return nil
	}
	now := time.Now().UTC()
	key := s.counterKey(now)
	midnight := now.Truncate(24 * time.Hour).Add(24 * time.Hour)

	pipe := s.redis.Pipeline()
	pipe.Incr(ctx, key)
	pipe.ExpireAt(ctx, key, midnight)
	_, err := pipe.Exec(ctx)
	return err
}
