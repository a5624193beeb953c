package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/yigit/jobtracker/internal/pkg/validation"
)

const payloadContextKey = "validatedBody"

// RequireJSONPayload decodes the request body into a JSON object and rejects
// empty or malformed bodies with 400 before the handler runs
func RequireJSONPayload() gin.HandlerFunc {
	return func(c *gin.Context) {
		payload, err := validation.ParseJSONPayload(c.Request.Body)
		if err != nil {
			HandleAPIError(c, err)
			return
		}

		c.Set(payloadContextKey, payload)
		c.Next()
	}
}

// JSONPayload returns the body decoded by RequireJSONPayload
func JSONPayload(c *gin.Context) validation.JSONPayload {
	value, exists := c.Get(payloadContextKey)
	if !exists {
		return nil
	}
	payload, _ := value.(validation.JSONPayload)
	return payload
}
