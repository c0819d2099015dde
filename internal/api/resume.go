package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aniketphatak/jobbot/backend/internal/service"
)

// ResumeHandler handles resume upload and management requests
type ResumeHandler struct {
	resumeService service.IResumeService
}

func NewResumeHandler(resumeService service.IResumeService) *ResumeHandler {
	return &ResumeHandler{resumeService: resumeService}
}

func (h *ResumeHandler) RegisterRoutes(router *gin.RouterGroup) {
	resumes := router.Group("/resumes")
	{
		resumes.POST("", h.Upload)
		resumes.GET("", h.List)
		resumes.GET("/active", h.Active)
		resumes.GET("/:id/download", h.Download)
		resumes.POST("/:id/activate", h.Activate)
		resumes.DELETE("/:id", h.Delete)
	}
}

func (h *ResumeHandler) Upload(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}
	defer file.Close()

	resume, err := h.resumeService.Upload(c.Request.Context(), userID, file, header)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resume)
}

func (h *ResumeHandler) List(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resumes, err := h.resumeService.List(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resumes)
}

func (h *ResumeHandler) Active(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	resume, err := h.resumeService.Active(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

// Download hands out a short-lived presigned URL instead of streaming the
// file through the API.
func (h *ResumeHandler) Download(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	resumeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	url, err := h.resumeService.DownloadURL(c.Request.Context(), userID, resumeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"download_url": url})
}

func (h *ResumeHandler) Activate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	resumeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	resume, err := h.resumeService.Activate(c.Request.Context(), userID, resumeID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resume)
}

func (h *ResumeHandler) Delete(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	resumeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.resumeService.Delete(c.Request.Context(), userID, resumeID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "resume deleted"})
}
