package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/middleware"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/helpers"
	"github.com/yigit/jobtracker/internal/pkg/logger"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// AuthController handles login, registration and logout pages
type AuthController struct {
	authService *services.AuthService
	cookie      middleware.SessionCookie
}

// NewAuthController creates a new AuthController
func NewAuthController(authService *services.AuthService, cookie middleware.SessionCookie) *AuthController {
	return &AuthController{
		authService: authService,
		cookie:      cookie,
	}
}

// LoginPage shows the login form
func (c *AuthController) LoginPage(ctx *gin.Context) {
	render(ctx, http.StatusOK, "login.html", gin.H{
		"Title": "Authorization",
		"Form":  newFormState(nil),
	})
}

// Login checks the credentials and sets the session cookie
func (c *AuthController) Login(ctx *gin.Context) {
	values := postedForm(ctx)
	session, err := c.authService.Login(ctx.Request.Context(), validation.NewFormPayload(values, "remember_me"))
	if err != nil {
		state := newFormState(values)
		delete(state.Values, "password")

		status := http.StatusOK
		var errs validation.Errors
		switch {
		case errors.Is(err, apperrors.ErrInvalidCredentials):
			state.Message = err.Error()
		case errors.As(err, &errs):
			state.Errors = errs.ByField()
			status = http.StatusBadRequest
		default:
			renderError(ctx, err)
			return
		}
		render(ctx, status, "login.html", gin.H{"Title": "Authorization", "Form": state})
		return
	}

	// Without remember_me the cookie lasts for the browser session only
	var lifetime time.Duration
	if session.Remember {
		lifetime = helpers.Remaining(session.ExpiresAt, time.Now())
	}
	c.cookie.Set(ctx, session.Token, lifetime)
	ctx.Redirect(http.StatusFound, "/")
}

// RegisterPage shows the registration form
func (c *AuthController) RegisterPage(ctx *gin.Context) {
	render(ctx, http.StatusOK, "register.html", gin.H{
		"Title": "Registration",
		"Form":  newFormState(nil),
	})
}

// Register creates an account and sends the user to the login page
func (c *AuthController) Register(ctx *gin.Context) {
	values := postedForm(ctx)
	if _, err := c.authService.Register(ctx.Request.Context(), validation.NewFormPayload(values)); err != nil {
		state, status, ok := formFailure(values, err)
		if !ok {
			renderError(ctx, err)
			return
		}
		delete(state.Values, "password")
		delete(state.Values, "password_again")
		if msg := state.Errors["password_again"]; msg != "" && state.Message == "" {
			state.Message = msg
		}
		render(ctx, status, "register.html", gin.H{"Title": "Registration", "Form": state})
		return
	}
	ctx.Redirect(http.StatusSeeOther, "/login")
}

// Logout revokes the session and clears the cookie
func (c *AuthController) Logout(ctx *gin.Context) {
	if err := c.authService.Logout(ctx.Request.Context(), middleware.CurrentIdentity(ctx)); err != nil {
		logger.Warn().Err(err).Msg("Logout could not revoke the session")
	}
	c.cookie.Clear(ctx)
	ctx.Redirect(http.StatusFound, "/")
}
