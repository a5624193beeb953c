package metrics

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMiddlewareCountsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := New("jobtracker")

	router := gin.New()
	router.Use(m.Middleware())
	router.GET("/api/jobs/:id", func(c *gin.Context) { c.Status(http.StatusNotFound) })
	router.GET("/metrics", gin.WrapH(m.Handler()))

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/jobs/42", nil))
		require.Equal(t, http.StatusNotFound, w.Code)
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.requests.WithLabelValues("GET", "/api/jobs/:id", "404")))

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `jobtracker_http_requests_total{method="GET",route="/api/jobs/:id",status="404"} 2`)
}

func TestObserveExternal(t *testing.T) {
	m := New("jobtracker")
	m.ObserveExternal("geocoder", nil)
	m.ObserveExternal("geocoder", errors.New("down"))
	m.ObserveExternal("geocoder", errors.New("down"))

	assert.Equal(t, 1.0, testutil.ToFloat64(m.external.WithLabelValues("geocoder", OutcomeSuccess)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.external.WithLabelValues("geocoder", OutcomeFailure)))

	var nilMetrics *Metrics
	assert.NotPanics(t, func() { nilMetrics.ObserveExternal("geocoder", nil) })
}
