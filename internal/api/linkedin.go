package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniketphatak/jobbot/backend/internal/service"
)

// LinkedInHandler exposes the LinkedIn integration surface
type LinkedInHandler struct {
	linkedInService service.ILinkedInService
}

func NewLinkedInHandler(linkedInService service.ILinkedInService) *LinkedInHandler {
	return &LinkedInHandler{linkedInService: linkedInService}
}

func (h *LinkedInHandler) RegisterRoutes(router *gin.RouterGroup) {
	linkedin := router.Group("/linkedin")
	{
		linkedin.GET("/auth-url", h.AuthURL)
		linkedin.GET("/rate-limit", h.RateLimit)
		linkedin.POST("/record-call", h.RecordCall)
	}
}

func (h *LinkedInHandler) AuthURL(c *gin.Context) {
	url := h.linkedInService.AuthURL(c.Query("state"))
	c.JSON(http.StatusOK, gin.H{"auth_url": url})
}

func (h *LinkedInHandler) RateLimit(c *gin.Context) {
	status, err := h.linkedInService.RateLimitStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}

// RecordCall bumps today's counter after the client makes a LinkedIn API
// call, and returns the updated budget.
func (h *LinkedInHandler) RecordCall(c *gin.Context) {
	if err := h.linkedInService.RecordCall(c.Request.Context()); err != nil {
		respondError(c, err)
		return
	}

	status, err := h.linkedInService.RateLimitStatus(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, status)
}
