package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/app/models/dto"
	"github.com/yigit/jobtracker/internal/pkg/apperrors"
	"github.com/yigit/jobtracker/internal/pkg/logger"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

// ErrorStatus maps an application error to its HTTP status, error code and
// client-facing message
func ErrorStatus(err error) (int, dto.ErrorCode, string) {
	var custom *apperrors.CustomError
	message := func(fallback string) string {
		if errors.As(err, &custom) && custom.Message != "" {
			return custom.Message
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.ErrorCodeValidationFailed, err.Error()
	case errors.Is(err, apperrors.ErrResourceAlreadyExists):
		return http.StatusBadRequest, dto.ErrorCodeResourceAlreadyExists, message("Resource already exists")
	case errors.Is(err, apperrors.ErrBadRequest):
		return http.StatusBadRequest, dto.ErrorCodeBadRequest, message("Bad request")
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.ErrorCodeResourceNotFound, message("Not found")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.ErrorCodeForbidden, message("Permission denied")
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, message("Invalid credentials")
	case errors.Is(err, apperrors.ErrSessionInvalid), errors.Is(err, apperrors.ErrSessionRevoked):
		return http.StatusUnauthorized, dto.ErrorCodeUnauthorized, "Authentication required"
	case errors.Is(err, apperrors.ErrGeocodingFailed):
		return http.StatusBadRequest, dto.ErrorCodeExternalServiceError, apperrors.ErrGeocodingFailed.Error()
	case errors.Is(err, apperrors.ErrMapFetchFailed):
		return http.StatusInternalServerError, dto.ErrorCodeExternalServiceError, apperrors.ErrMapFetchFailed.Error()
	case errors.Is(err, apperrors.ErrFileDelete):
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Error deleting file"
	default:
		return http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error"
	}
}

// HandleAPIError writes err as a JSON error response
func HandleAPIError(c *gin.Context, err error) {
	status, code, msg := ErrorStatus(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Msg("Request failed")
	}

	response := dto.NewErrorResponse(code, msg)
	if errs, ok := validation.AsErrors(err); ok {
		issues := make([]dto.FieldIssue, len(errs))
		for i, fe := range errs {
			issues[i] = dto.FieldIssue{Field: fe.Field, Message: fe.Message}
		}
		response = response.WithField(errs[0].Field).WithFields(issues)
	}

	c.AbortWithStatusJSON(status, response)
}
