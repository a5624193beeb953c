package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCSRF(t *testing.T) {
	config := CSRFConfig{
		AllowedOrigins: []string{"https://colony.example.com/"},
	}

	tests := []struct {
		name       string
		method     string
		origin     string
		referer    string
		wantStatus int
	}{
		{"GET passes without headers", http.MethodGet, "", "", http.StatusOK},
		{"POST with allowed origin", http.MethodPost, "https://colony.example.com", "", http.StatusOK},
		{"POST with allowed origin in another case", http.MethodPost, "HTTPS://Colony.Example.com", "", http.StatusOK},
		{"POST from own host", http.MethodPost, "http://example.com", "", http.StatusOK},
		{"POST with allowed referer", http.MethodPost, "", "https://colony.example.com/addjob", http.StatusOK},
		{"POST with foreign origin", http.MethodPost, "https://evil.example.org", "", http.StatusForbidden},
		{"POST with foreign referer", http.MethodPost, "", "https://evil.example.org/form", http.StatusForbidden},
		{"POST without headers", http.MethodPost, "", "", http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router := gin.New()
			router.Use(CSRF(config))
			router.Handle(tt.method, "/", func(c *gin.Context) {
				c.Status(http.StatusOK)
			})

			req := httptest.NewRequest(tt.method, "/", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.referer != "" {
				req.Header.Set("Referer", tt.referer)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestCSRFDisabledWithoutOrigins(t *testing.T) {
	router := gin.New()
	router.Use(CSRF(CSRFConfig{}))
	router.POST("/", func(c *gin.Context) { c.Status(http.StatusOK) })

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}
