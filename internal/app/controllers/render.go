package controllers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/middleware"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/logger"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// render executes a page template with the current user available as .CurrentUser
func render(ctx *gin.Context, status int, name string, data gin.H) {
	if data == nil {
		data = gin.H{}
	}
	data["CurrentUser"] = middleware.CurrentIdentity(ctx)
	ctx.HTML(status, name, data)
}

// renderError renders the error page with the status err maps to
func renderError(ctx *gin.Context, err error) {
	status, _, msg := middleware.ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("path", ctx.Request.URL.Path).Msg("Page failed")
	}
	render(ctx, status, "error.html", gin.H{
		"Title":   http.StatusText(status),
		"Status":  status,
		"Message": msg,
	})
	ctx.Abort()
}

// pathID parses the :id parameter. Anything but a positive integer is
// reported as notFound, so /jobs/abc behaves like a missing job.
func pathID(ctx *gin.Context, notFound error) (int64, error) {
	raw := ctx.Param("id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperrors.NotFoundf(notFound, "%s %q not found", entityName(notFound), raw)
	}
	return id, nil
}

func entityName(notFound error) string {
	switch notFound {
	case apperrors.ErrJobNotFound:
		return "Job"
	case apperrors.ErrUserNotFound:
		return "User"
	case apperrors.ErrDepartmentNotFound:
		return "Department"
	default:
		return "Resource"
	}
}

// postedForm parses the request form; a malformed body yields an empty form
func postedForm(ctx *gin.Context) url.Values {
	if err := ctx.Request.ParseForm(); err != nil {
		logger.Warn().Err(err).Msg("Failed to parse form")
		return url.Values{}
	}
	return ctx.Request.PostForm
}

// formState is the data every form template receives
type formState struct {
	Values  map[string]string
	Errors  map[string]string
	Message string
}

func newFormState(values url.Values) formState {
	state := formState{Values: map[string]string{}, Errors: map[string]string{}}
	for key := range values {
		state.Values[key] = values.Get(key)
	}
	return state
}

// formFailure turns a service error into form state. ok is false when err is
// not something the form can display.
func formFailure(values url.Values, err error) (formState, int, bool) {
	state := newFormState(values)
	if errs, isValidation := validation.AsErrors(err); isValidation {
		state.Errors = errs.ByField()
		return state, http.StatusBadRequest, true
	}
	if apperrors.Is(err, apperrors.ErrResourceAlreadyExists) {
		_, _, state.Message = middleware.ErrorStatus(err)
		return state, http.StatusBadRequest, true
	}
	return state, 0, false
}
