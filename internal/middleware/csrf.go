package middleware

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
)

// CSRFConfig holds configuration for CSRF protection middleware
type CSRFConfig struct {
	// AllowedOrigins lists the origins allowed to submit forms besides the
	// application's own host. An empty list disables the check.
	AllowedOrigins []string
}

// CSRF validates Origin/Referer on state-changing requests. Form posts
// authenticate with the session cookie, which browsers send cross-site.
func CSRF(config CSRFConfig) gin.HandlerFunc {
	allowedSet := make(map[string]bool)
	for _, origin := range config.AllowedOrigins {
		allowedSet[normalizeOrigin(origin)] = true
	}

	return func(c *gin.Context) {
		method := c.Request.Method
		if len(allowedSet) == 0 || method == http.MethodGet || method == http.MethodHead || method == http.MethodOptions {
			c.Next()
			return
		}

		source := c.GetHeader("Origin")
		kind := "origin"
		if source == "" {
			if referer := c.GetHeader("Referer"); referer != "" {
				source = extractOrigin(referer)
				kind = "referer"
			}
		}
		if source == "" {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "CSRF validation failed: missing origin",
			})
			return
		}

		if !allowedSet[normalizeOrigin(source)] && !sameHost(source, c.Request.Host) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "CSRF validation failed: invalid " + kind,
			})
			return
		}
		c.Next()
	}
}

func normalizeOrigin(origin string) string {
	return strings.TrimSuffix(strings.ToLower(origin), "/")
}

// extractOrigin extracts scheme://host[:port] from a URL
func extractOrigin(rawURL string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return ""
	}
	return parsed.Scheme + "://" + parsed.Host
}

func sameHost(origin, host string) bool {
	parsed, err := url.Parse(origin)
	if err != nil {
		return false
	}
	return host != "" && strings.EqualFold(parsed.Host, host)
}
