package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/aniketphatak/jobbot/backend/internal/service"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// ApplicationHandler handles application tracker requests
type ApplicationHandler struct {
	applicationService service.IApplicationService
}

func NewApplicationHandler(applicationService service.IApplicationService) *ApplicationHandler {
	return &ApplicationHandler{applicationService: applicationService}
}

func (h *ApplicationHandler) RegisterRoutes(router *gin.RouterGroup) {
	apps := router.Group("/applications")
	{
		apps.POST("", h.Create)
		apps.GET("", h.List)
		apps.GET("/recent", h.ListRecent)
		apps.GET("/:id", h.Get)
		apps.PUT("/:id", h.Update)
		apps.DELETE("/:id", h.Delete)
	}
}

func (h *ApplicationHandler) Create(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req types.CreateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	app, err := h.applicationService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

// List returns the user's applications, filtered by the search and status
// query params and ordered by the sort param (newest, oldest, company,
// status).
func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	apps, err := h.applicationService.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	search := c.Query("search")
	status := c.DefaultQuery("status", "all")
	if search != "" || status != "all" {
		apps = service.FilterApplications(apps, search, status)
	}
	apps = service.SortApplications(apps, c.DefaultQuery("sort", "newest"))

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListRecent(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))
	apps, err := h.applicationService.ListRecent(c.Request.Context(), userID, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	app, err := h.applicationService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	app, err := h.applicationService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, app)
}

func (h *ApplicationHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.applicationService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "application deleted"})
}
