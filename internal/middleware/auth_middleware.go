package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/logger"
)

// Authenticator resolves a session token into an identity
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*auth.Identity, error)
}

// SessionCookie manages the session cookie
type SessionCookie struct {
	Name   string
	Secure bool
}

// Set stores token in the cookie. A zero lifetime makes it a browser-session cookie.
func (sc SessionCookie) Set(c *gin.Context, token string, lifetime time.Duration) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, int(lifetime.Seconds()), "/", "", sc.Secure, true)
}

// Clear removes the cookie
func (sc SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

// Token returns the cookie value, or ""
func (sc SessionCookie) Token(c *gin.Context) string {
	token, err := c.Cookie(sc.Name)
	if err != nil {
		return ""
	}
	return token
}

// AuthMiddleware loads the session identity for UI requests
type AuthMiddleware struct {
	authenticator Authenticator
	cookie        SessionCookie
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(authenticator Authenticator, cookie SessionCookie) *AuthMiddleware {
	return &AuthMiddleware{
		authenticator: authenticator,
		cookie:        cookie,
	}
}

// LoadSession resolves the session cookie; invalid or revoked sessions are
// cleared and the request continues anonymously
func (m *AuthMiddleware) LoadSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := m.cookie.Token(c)
		if token == "" {
			c.Next()
			return
		}

		identity, err := m.authenticator.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug().Err(err).Msg("Discarding session cookie")
			m.cookie.Clear(c)
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(auth.WithIdentity(c.Request.Context(), identity))
		c.Next()
	}
}

// LoginRequired redirects anonymous clients to loginPath
func (m *AuthMiddleware) LoginRequired(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentIdentity(c) == nil {
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentIdentity returns the identity LoadSession stored in the request context, or nil
func CurrentIdentity(c *gin.Context) *auth.Identity {
	return auth.IdentityFrom(c.Request.Context())
}
