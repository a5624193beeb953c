package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/models/dto"
	"github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/middleware"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
)

// JobController serves /api/jobs
type JobController struct {
	jobService *services.JobService
}

// NewJobController creates a new JobController
func NewJobController(jobService *services.JobService) *JobController {
	return &JobController{
		jobService: jobService,
	}
}

// ListJobs retrieves all jobs
// @Summary List jobs
// @Tags jobs
// @Produce json
// @Success 200 {object} dto.JobListResponse
// @Router /api/jobs [get]
func (c *JobController) ListJobs(ctx *gin.Context) {
	jobs, err := c.jobService.List(ctx.Request.Context())
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobListResponse{Jobs: jobs})
}

// GetJob retrieves a job by ID
// @Summary Get job by ID
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /api/jobs/{id} [get]
func (c *JobController) GetJob(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrJobNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	job, err := c.jobService.Get(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobResponse{Job: job})
}

// CreateJob creates a job; every field is required with its exact JSON type
// @Summary Create a job
// @Tags jobs
// @Accept json
// @Produce json
// @Success 201 {object} dto.JobCreatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid job data"
// @Router /api/jobs [post]
func (c *JobController) CreateJob(ctx *gin.Context) {
	job, err := c.jobService.Create(ctx.Request.Context(), middleware.JSONPayload(ctx))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.JobCreatedResponse{ID: job.ID, Job: job})
}

// UpdateJob applies the fields present in the body
// @Summary Update a job
// @Tags jobs
// @Accept json
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.JobUpdatedResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid job data"
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /api/jobs/{id} [put]
func (c *JobController) UpdateJob(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrJobNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	job, err := c.jobService.Update(ctx.Request.Context(), nil, id, middleware.JSONPayload(ctx), services.PartialUpdate)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.JobUpdatedResponse{Success: "Job updated", Job: job})
}

// DeleteJob deletes a job
// @Summary Delete a job
// @Tags jobs
// @Produce json
// @Param id path int true "Job ID"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} dto.ErrorResponse "Job not found"
// @Router /api/jobs/{id} [delete]
func (c *JobController) DeleteJob(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrJobNotFound)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	if err := c.jobService.Delete(ctx.Request.Context(), nil, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.SuccessResponse{Success: "Job deleted"})
}
