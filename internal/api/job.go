package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/aniketphatak/jobbot/backend/internal/models"
	"github.com/aniketphatak/jobbot/backend/internal/service"
	"github.com/aniketphatak/jobbot/backend/internal/types"
)

// JobHandler handles discovered posting requests
type JobHandler struct {
	jobService      service.IJobService
	campaignService service.ICampaignService
}

func NewJobHandler(jobService service.IJobService, campaignService service.ICampaignService) *JobHandler {
	return &JobHandler{
		jobService:      jobService,
		campaignService: campaignService,
	}
}

func (h *JobHandler) RegisterRoutes(router *gin.RouterGroup) {
	jobs := router.Group("/jobs")
	{
		jobs.POST("", h.Create)
		jobs.GET("/active", h.ListActive)
		jobs.POST("/expire", h.Expire)
		jobs.GET("/:id", h.Get)
		jobs.PUT("/:id", h.Update)
		jobs.POST("/:id/apply", h.Apply)
		jobs.DELETE("/:id", h.Delete)
	}
	router.GET("/campaigns/:id/jobs", h.ListByCampaign)
}

// jobView decorates a job with its live countdown label.
type jobView struct {
	*models.Job
	TimeRemaining string `json:"time_remaining"`
}

func viewJob(j *models.Job, now time.Time) jobView {
	return jobView{
		Job:           j,
		TimeRemaining: service.TimeUntilDeadline(j.ApplicationDeadline, now),
	}
}

func viewJobs(jobs []*models.Job) []jobView {
	now := time.Now().UTC()
	out := make([]jobView, len(jobs))
	for i, j := range jobs {
		out[i] = viewJob(j, now)
	}
	return out
}

func (h *JobHandler) Create(c *gin.Context) {
	var req types.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := h.jobService.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, viewJob(job, time.Now().UTC()))
}

// ListActive returns monitoring postings across the user's active campaigns,
// soonest deadline first. A filter query narrows the list the way the job
// board's quick filters do.
func (h *JobHandler) ListActive(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	campaigns, err := h.campaignService.ListActive(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	campaignIDs := make([]uuid.UUID, len(campaigns))
	for i, cp := range campaigns {
		campaignIDs[i] = cp.ID
	}

	jobs, err := h.jobService.ListActive(c.Request.Context(), campaignIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	if filter := c.Query("filter"); filter != "" {
		jobs = service.FilterJobs(jobs, filter)
	}

	c.JSON(http.StatusOK, viewJobs(jobs))
}

func (h *JobHandler) ListByCampaign(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	jobs, err := h.jobService.ListByCampaign(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewJobs(jobs))
}

func (h *JobHandler) Get(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.Get(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewJob(job, time.Now().UTC()))
}

func (h *JobHandler) Update(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	var req types.UpdateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	job, err := h.jobService.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewJob(job, time.Now().UTC()))
}

func (h *JobHandler) Apply(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	job, err := h.jobService.MarkApplied(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, viewJob(job, time.Now().UTC()))
}

// Expire sweeps monitoring postings past their deadline.
func (h *JobHandler) Expire(c *gin.Context) {
	count, err := h.jobService.ExpireOldJobs(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"expired": count})
}

func (h *JobHandler) Delete(c *gin.Context) {
	id, ok := pathUUID(c, "id")
	if !ok {
		return
	}

	if err := h.jobService.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "job deleted"})
}
