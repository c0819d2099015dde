package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniketphatak/jobbot/backend/internal/service"
)

// DashboardHandler serves the dashboard overview and aggregate analytics
type DashboardHandler struct {
	analyticsService service.IAnalyticsService
}

func NewDashboardHandler(analyticsService service.IAnalyticsService) *DashboardHandler {
	return &DashboardHandler{analyticsService: analyticsService}
}

func (h *DashboardHandler) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/dashboard", h.GetDashboard)
	router.GET("/analytics", h.GetAnalytics)
}

func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	stats, err := h.analyticsService.DashboardStats(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *DashboardHandler) GetAnalytics(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	analytics, err := h.analyticsService.UserAnalytics(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, analytics)
}
