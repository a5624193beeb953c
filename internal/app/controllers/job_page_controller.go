package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/middleware"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

const jobFormTemplate = "job_form.html"

// JobRow is one line of the job list
type JobRow struct {
	Job        *models.Job
	LeaderName string
	Category   *models.Category
}

// JobPageController serves the job pages
type JobPageController struct {
	jobService      *services.JobService
	userService     *services.UserService
	categoryService *services.CategoryService
}

// NewJobPageController creates a new JobPageController
func NewJobPageController(jobService *services.JobService, userService *services.UserService, categoryService *services.CategoryService) *JobPageController {
	return &JobPageController{
		jobService:      jobService,
		userService:     userService,
		categoryService: categoryService,
	}
}

// Index lists every job
func (c *JobPageController) Index(ctx *gin.Context) {
	reqCtx := ctx.Request.Context()

	jobs, err := c.jobService.List(reqCtx)
	if err != nil {
		renderError(ctx, err)
		return
	}
	users, err := c.userService.List(reqCtx)
	if err != nil {
		renderError(ctx, err)
		return
	}
	categories, err := c.categoryService.List(reqCtx)
	if err != nil {
		renderError(ctx, err)
		return
	}

	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName()
	}
	byID := make(map[int64]*models.Category, len(categories))
	for _, cat := range categories {
		byID[cat.ID] = cat
	}

	rows := make([]JobRow, 0, len(jobs))
	for _, job := range jobs {
		row := JobRow{Job: job, LeaderName: names[job.OwnerID()]}
		if job.HazardCategoryID != nil {
			row.Category = byID[*job.HazardCategoryID]
		}
		rows = append(rows, row)
	}

	render(ctx, http.StatusOK, "index.html", gin.H{
		"Title": "Works log",
		"Jobs":  rows,
	})
}

// AddJobPage shows an empty job form
func (c *JobPageController) AddJobPage(ctx *gin.Context) {
	c.renderForm(ctx, http.StatusOK, "Add a job", "/addjob", newFormState(nil))
}

// AddJob creates a job from the form
func (c *JobPageController) AddJob(ctx *gin.Context) {
	values := postedForm(ctx)
	_, err := c.jobService.Create(ctx.Request.Context(), validation.NewFormPayload(values, "is_finished"))
	if err != nil {
		c.formError(ctx, "Add a job", "/addjob", values, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// EditJobPage shows the job form filled with the stored job
func (c *JobPageController) EditJobPage(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrJobNotFound)
	if err != nil {
		renderError(ctx, err)
		return
	}

	job, err := c.jobService.Editable(ctx.Request.Context(), middleware.CurrentIdentity(ctx), id)
	if err != nil {
		renderError(ctx, err)
		return
	}

	state := newFormState(nil)
	state.Values = map[string]string{
		"job_title":          job.JobTitle,
		"team_leader_id":     optionalID(job.TeamLeaderID),
		"work_size":          strconv.Itoa(job.WorkSize),
		"collaborators":      job.Collaborators,
		"hazard_category_id": optionalID(job.HazardCategoryID),
	}
	if job.IsFinished {
		state.Values["is_finished"] = "y"
	}
	c.renderForm(ctx, http.StatusOK, "Edit job", ctx.Request.URL.Path, state)
}

// EditJob saves the job form
func (c *JobPageController) EditJob(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrJobNotFound)
	if err != nil {
		renderError(ctx, err)
		return
	}

	values := postedForm(ctx)
	payload := validation.NewFormPayload(values, "is_finished")
	_, err = c.jobService.Update(ctx.Request.Context(), middleware.CurrentIdentity(ctx), id, payload, services.FullUpdate)
	if err != nil {
		c.formError(ctx, "Edit job", ctx.Request.URL.Path, values, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

// DeleteJob removes a job
func (c *JobPageController) DeleteJob(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrJobNotFound)
	if err != nil {
		renderError(ctx, err)
		return
	}

	if err := c.jobService.Delete(ctx.Request.Context(), middleware.CurrentIdentity(ctx), id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/")
}

func (c *JobPageController) formError(ctx *gin.Context, title, action string, values url.Values, err error) {
	state, status, ok := formFailure(values, err)
	if !ok {
		renderError(ctx, err)
		return
	}
	c.renderForm(ctx, status, title, action, state)
}

func (c *JobPageController) renderForm(ctx *gin.Context, status int, title, action string, state formState) {
	categories, err := c.categoryService.List(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	render(ctx, status, jobFormTemplate, gin.H{
		"Title":      title,
		"Action":     action,
		"Form":       state,
		"Categories": categories,
	})
}

func optionalID(id *int64) string {
	if id == nil {
		return ""
	}
	return strconv.FormatInt(*id, 10)
}
