package server

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/aniketphatak/jobbot/backend/config"
	"github.com/aniketphatak/jobbot/backend/internal/api"
	"github.com/aniketphatak/jobbot/backend/internal/database"
	"github.com/aniketphatak/jobbot/backend/internal/middleware"
	"github.com/aniketphatak/jobbot/backend/internal/router"
	"github.com/aniketphatak/jobbot/backend/internal/service"
)

// Server owns the HTTP lifecycle and the wiring of services to handlers.
type Server struct {
	cfg  *config.Config
	http *http.Server
}

// New builds the full service graph and returns a ready-to-start server.
func New(cfg *config.Config) (*Server, error) {
	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	redisClient, err := database.NewRedisClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("redis: %w", err)
	}

	s3Config, err := config.NewS3Config(context.Background())
	if err != nil {
		return nil, fmt.Errorf("s3: %w", err)
	}

	engine, err := buildRouter(cfg, db, redisClient, s3Config)
	if err != nil {
		return nil, err
	}

	return &Server{
		cfg: cfg,
		http: &http.Server{
			Addr:    fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
			Handler: engine,
		},
	}, nil
}

func buildRouter(cfg *config.Config, db *gorm.DB, redisClient *redis.Client, s3Config *config.S3Config) (http.Handler, error) {
	authService := service.NewAuthService(db, cfg.JWTSecret)
	profileService := service.NewProfileService(db)
	campaignService := service.NewCampaignService(db)
	jobService := service.NewJobService(db)
	applicationService := service.NewApplicationService(db)
	analyticsService := service.NewAnalyticsService(db)
	aiService := service.NewAIService(db,
		service.NewOpenAIClient(cfg.OpenAIAPIKey),
		service.NewAnthropicClient(cfg.AnthropicAPIKey))
	resumeService := service.NewResumeService(db, s3Config)
	linkedInService := service.NewLinkedInService(redisClient, cfg)

	generationLimiter := middleware.NewGenerationRateLimiter(redisClient)

	handlers := router.Handlers{
		Auth:        api.NewAuthHandler(authService),
		Profile:     api.NewProfileHandler(profileService),
		Campaign:    api.NewCampaignHandler(campaignService, applicationService),
		Job:         api.NewJobHandler(jobService, campaignService),
		Application: api.NewApplicationHandler(applicationService),
		Dashboard:   api.NewDashboardHandler(analyticsService),
		AI:          api.NewAIHandler(aiService, generationLimiter),
		Resume:      api.NewResumeHandler(resumeService),
		LinkedIn:    api.NewLinkedInHandler(linkedInService),
	}

	return router.SetupRouter(handlers, authService), nil
}

// Start runs the HTTP server until it is shut down.
func (s *Server) Start() error {
	log.Printf("[Server] Listening on %s", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
