package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/aniketphatak/jobbot/backend/config"
	"github.com/aniketphatak/jobbot/backend/internal/middleware"
	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/service"
)

// stubCompleter satisfies service.Completer with a canned reply.
type stubCompleter struct {
	reply string
	err   error
}

func (s *stubCompleter) Complete(_ context.Context, _, _, _ string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

// testEnv bundles the in-memory database, the wired router and the services
// the handler tests need direct access to.
type testEnv struct {
	DB     *gorm.DB
	Router *gin.Engine
	Auth   *service.AuthService
}

// setupTestEnv wires the full handler stack over an in-memory database, with
// the same route layout the real router uses. Redis and S3 get nil clients:
// the rate limiters and the LinkedIn counter degrade to unlimited budgets,
// and resume upload/download stop at validation and ownership checks.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.UserProfile{},
		&models.Campaign{},
		&models.Job{},
		&models.Application{},
		&models.Resume{},
		&models.AIPreference{},
		&models.GeneratedContent{},
	))

	authService := service.NewAuthService(db, "test-secret")
	campaignService := service.NewCampaignService(db)
	applicationService := service.NewApplicationService(db)
	aiService := service.NewAIService(db,
		&stubCompleter{reply: "generated content"},
		&stubCompleter{reply: "generated content"},
	)
	linkedInService := service.NewLinkedInService(nil, &config.Config{
		LinkedInClientID:    "client-123",
		LinkedInRedirectURI: "http://localhost:3000/linkedin/callback",
		LinkedInDailyLimit:  100,
	})

	r := gin.New()
	v1 := r.Group("/api/v1")
	NewAuthHandler(authService).RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	NewProfileHandler(service.NewProfileService(db)).RegisterRoutes(protected)
	NewCampaignHandler(campaignService, applicationService).RegisterRoutes(protected)
	NewJobHandler(service.NewJobService(db), campaignService).RegisterRoutes(protected)
	NewApplicationHandler(applicationService).RegisterRoutes(protected)
	NewDashboardHandler(service.NewAnalyticsService(db)).RegisterRoutes(protected)
	NewAIHandler(aiService, middleware.NewGenerationRateLimiter(nil)).RegisterRoutes(protected)
	NewResumeHandler(service.NewResumeService(db, nil)).RegisterRoutes(protected)
	NewLinkedInHandler(linkedInService).RegisterRoutes(protected)

	return &testEnv{DB: db, Router: r, Auth: authService}
}

// registerUser creates an account through the API and returns its token.
func (e *testEnv) registerUser(t *testing.T, name, email, password string) string {
	t.Helper()
	w := e.perform(t, http.MethodPost, "/api/v1/auth/register", "", gin.H{
		"name":     name,
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

// perform issues a request against the test router. A non-nil body is JSON
// encoded; a non-empty token goes out as a bearer header.
func (e *testEnv) perform(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(encoded)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest), w.Body.String())
}
