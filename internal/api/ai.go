package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aniketphatak/jobbot/backend/internal/middleware"
	"github.com/aniketphatak/jobbot/backend/internal/service"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// AIHandler handles content generation requests
type AIHandler struct {
	aiService   service.IAIService
	rateLimiter *middleware.RateLimiter
}

func NewAIHandler(aiService service.IAIService, rateLimiter *middleware.RateLimiter) *AIHandler {
	return &AIHandler{aiService: aiService, rateLimiter: rateLimiter}
}

func (h *AIHandler) RegisterRoutes(router *gin.RouterGroup) {
	ai := router.Group("/ai")
	{
		ai.GET("/models", h.Models)
		ai.GET("/preferences", h.GetPreference)
		ai.POST("/preferences", h.SavePreference)
		ai.GET("/history", h.History)

		generate := ai.Group("")
		if h.rateLimiter != nil {
			ai.GET("/rate-limit", h.RateLimit)
			generate.Use(h.rateLimiter.RateLimitMiddleware())
		}
		generate.POST("/generate-cover-letter", h.GenerateCoverLetter)
		generate.POST("/generate-resume-summary", h.GenerateResumeSummary)
		generate.POST("/generate-linkedin-message", h.GenerateLinkedInMessage)
	}
}

func (h *AIHandler) Models(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"providers": h.aiService.Models()})
}

func (h *AIHandler) GetPreference(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	pref, err := h.aiService.GetPreference(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pref)
}

func (h *AIHandler) SavePreference(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.AIPreferenceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	pref, err := h.aiService.SavePreference(c.Request.Context(), userID, req.Provider, req.Model)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, pref)
}

func (h *AIHandler) GenerateCoverLetter(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.aiService.GenerateCoverLetter(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AIHandler) GenerateResumeSummary(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.aiService.GenerateResumeSummary(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AIHandler) GenerateLinkedInMessage(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.aiService.GenerateLinkedInMessage(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// RateLimit reports the caller's remaining generation budget without
// consuming any of it.
func (h *AIHandler) RateLimit(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	remaining, resetTime, err := h.rateLimiter.GetRemainingRequests(c.Request.Context(), userID.String())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to check rate limit"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"limit":     h.rateLimiter.Limit(),
		"remaining": remaining,
		"reset_at":  resetTime.Unix(),
	})
}

func (h *AIHandler) History(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	history, err := h.aiService.History(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}
