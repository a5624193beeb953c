package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/models"
	"github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/middleware"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

const departmentFormTemplate = "department_form.html"

// DepartmentRow is one line of the department list
type DepartmentRow struct {
	Department *models.Department
	ChiefName  string
}

// DepartmentController handles the department pages
type DepartmentController struct {
	departmentService *services.DepartmentService
	userService       *services.UserService
}

// NewDepartmentController creates a new DepartmentController
func NewDepartmentController(departmentService *services.DepartmentService, userService *services.UserService) *DepartmentController {
	return &DepartmentController{
		departmentService: departmentService,
		userService:       userService,
	}
}

// ListDepartments shows every department
func (c *DepartmentController) ListDepartments(ctx *gin.Context) {
	departments, err := c.departmentService.List(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}
	users, err := c.userService.List(ctx.Request.Context())
	if err != nil {
		renderError(ctx, err)
		return
	}

	names := make(map[int64]string, len(users))
	for _, u := range users {
		names[u.ID] = u.FullName()
	}

	rows := make([]DepartmentRow, 0, len(departments))
	for _, d := range departments {
		rows = append(rows, DepartmentRow{Department: d, ChiefName: names[d.OwnerID()]})
	}

	render(ctx, http.StatusOK, "departments.html", gin.H{
		"Title":       "List of Departments",
		"Departments": rows,
	})
}

// AddDepartmentPage shows an empty department form
func (c *DepartmentController) AddDepartmentPage(ctx *gin.Context) {
	render(ctx, http.StatusOK, departmentFormTemplate, gin.H{
		"Title":  "Add a department",
		"Action": "/departments/add",
		"Form":   newFormState(nil),
	})
}

// AddDepartment creates a department from the form
func (c *DepartmentController) AddDepartment(ctx *gin.Context) {
	values := postedForm(ctx)
	if _, err := c.departmentService.Create(ctx.Request.Context(), validation.NewFormPayload(values)); err != nil {
		c.formError(ctx, "Add a department", "/departments/add", values, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/departments")
}

// EditDepartmentPage shows the form filled with the stored department
func (c *DepartmentController) EditDepartmentPage(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrDepartmentNotFound)
	if err != nil {
		renderError(ctx, err)
		return
	}

	department, err := c.departmentService.Editable(ctx.Request.Context(), middleware.CurrentIdentity(ctx), id)
	if err != nil {
		renderError(ctx, err)
		return
	}

	state := newFormState(nil)
	state.Values = map[string]string{
		"title":    department.Title,
		"chief_id": optionalID(department.ChiefID),
		"members":  department.Members,
		"email":    department.Email,
	}
	render(ctx, http.StatusOK, departmentFormTemplate, gin.H{
		"Title":  "Edit department",
		"Action": ctx.Request.URL.Path,
		"Form":   state,
	})
}

// EditDepartment saves the department form
func (c *DepartmentController) EditDepartment(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrDepartmentNotFound)
	if err != nil {
		renderError(ctx, err)
		return
	}

	values := postedForm(ctx)
	_, err = c.departmentService.Update(ctx.Request.Context(), middleware.CurrentIdentity(ctx), id, validation.NewFormPayload(values), services.FullUpdate)
	if err != nil {
		c.formError(ctx, "Edit department", ctx.Request.URL.Path, values, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/departments")
}

// DeleteDepartment removes a department
func (c *DepartmentController) DeleteDepartment(ctx *gin.Context) {
	id, err := pathID(ctx, apperrors.ErrDepartmentNotFound)
	if err != nil {
		renderError(ctx, err)
		return
	}

	if err := c.departmentService.Delete(ctx.Request.Context(), middleware.CurrentIdentity(ctx), id); err != nil {
		renderError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/departments")
}

func (c *DepartmentController) formError(ctx *gin.Context, title, action string, values url.Values, err error) {
	state, status, ok := formFailure(values, err)
	if !ok {
		renderError(ctx, err)
		return
	}
	render(ctx, status, departmentFormTemplate, gin.H{
		"Title":  title,
		"Action": action,
		"Form":   state,
	})
}
