package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/jobtracker/internal/app/models/dto"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestErrorStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		msg    string
	}{
		{"validation", validation.Errors{{Field: "work_size", Message: "Field work_size must be of type int"}}, 400, "Field work_size must be of type int"},
		{"duplicate email", apperrors.ErrEmailAlreadyExists, 400, "User with this email already exists"},
		{"empty body", validation.ErrEmptyRequest, 400, "Empty request"},
		{"not found", fmt.Errorf("lookup: %w", apperrors.ErrJobNotFound), 404, "job not found"},
		{"forbidden", apperrors.NewForbiddenError("nope"), 403, "nope"},
		{"credentials", apperrors.ErrInvalidCredentials, 401, "Invalid credentials"},
		{"geocoding", apperrors.ErrGeocodingFailed, 400, "could not get coordinates for the address"},
		{"map fetch", fmt.Errorf("%w: 503", apperrors.ErrMapFetchFailed), 500, "could not fetch static map"},
		{"file delete", apperrors.ErrFileDelete, 500, "Error deleting file"},
		{"unknown", errors.New("boom"), 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, _, msg := ErrorStatus(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.msg, msg)
		})
	}
}

func TestHandleAPIErrorIncludesFields(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/api/jobs", nil)

	HandleAPIError(c, validation.Errors{
		{Field: "work_size", Message: "Field work_size must be of type int"},
		{Field: "job_title", Message: "Missing field: job_title"},
	})

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, dto.ErrorCodeValidationFailed, body.Code)
	assert.Equal(t, "work_size", body.Field)
	assert.Equal(t, "Field work_size must be of type int; Missing field: job_title", body.Error)
	assert.Len(t, body.Fields, 2)
}

func TestRequireJSONPayload(t *testing.T) {
	router := gin.New()
	router.POST("/", RequireJSONPayload(), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"keys": len(JSONPayload(c))})
	})

	tests := []struct {
		body   string
		status int
	}{
		{`{"a":1,"b":"x"}`, http.StatusOK},
		{``, http.StatusBadRequest},
		{`{}`, http.StatusBadRequest},
		{`{"a":`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", stringsReader(tt.body)))
		assert.Equal(t, tt.status, w.Code, tt.body)
	}
}
