package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniketphatak/jobbot/backend/internal/service"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// CampaignHandler handles campaign lifecycle requests
type CampaignHandler struct {
	campaignService    service.ICampaignService
	applicationService service.IApplicationService
}

func NewCampaignHandler(campaignService service.ICampaignService, applicationService service.IApplicationService) *CampaignHandler {
	return &CampaignHandler{
		campaignService:    campaignService,
		applicationService: applicationService,
	}
}

func (h *CampaignHandler) RegisterRoutes(router *gin.RouterGroup) {
	campaigns := router.Group("/campaigns")
	{
		campaigns.POST("", h.Create)
		campaigns.GET("", h.List)
		campaigns.GET("/active", h.ListActive)
		campaigns.GET("/:id", h.Get)
		campaigns.PUT("/:id", h.Update)
		campaigns.POST("/:id/toggle", h.Toggle)
		campaigns.DELETE("/:id", h.Delete)
		campaigns.GET("/:id/applications", h.ListApplications)
	}
}

func (h *CampaignHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	campaign, err := h.campaignService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, campaign)
}

func (h *CampaignHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	campaigns, err := h.campaignService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) ListActive(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	campaigns, err := h.campaignService.ListActive(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaigns)
}

func (h *CampaignHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateCampaignRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	campaign, err := h.campaignService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) Toggle(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	campaign, err := h.campaignService.ToggleStatus(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, campaign)
}

func (h *CampaignHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.campaignService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "campaign deleted"})
}

func (h *CampaignHandler) ListApplications(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}
