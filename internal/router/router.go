package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/aniketphatak/jobbot/backend/internal/api"
	"github.com/aniketphatak/jobbot/backend/internal/middleware"
	"github.com/aniketphatak/jobbot/backend/internal/service"
)

// Handlers bundles the API handlers wired into the router.
type Handlers struct {
	Auth        *api.AuthHandler
	Profile     *api.ProfileHandler
	Campaign    *api.CampaignHandler
	Job         *api.JobHandler
	Application *api.ApplicationHandler
	Dashboard   *api.DashboardHandler
	AI          *api.AIHandler
	Resume      *api.ResumeHandler
	LinkedIn    *api.LinkedInHandler
}

// SetupRouter configures the application routes. Everything except auth and
// the health check sits behind the JWT middleware.
func SetupRouter(h Handlers, authService service.IAuthService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authService))
	{
		h.Profile.RegisterRoutes(protected)
		h.Campaign.RegisterRoutes(protected)
		h.Job.RegisterRoutes(protected)
		h.Application.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)
		h.AI.RegisterRoutes(protected)
		h.Resume.RegisterRoutes(protected)
		h.LinkedIn.RegisterRoutes(protected)
	}

	return r
}
