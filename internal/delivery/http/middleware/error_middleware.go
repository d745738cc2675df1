package middleware

import (
	"errors"
	"net/http"

	"skill-extraction-backend/internal/delivery/http/response"
	"skill-extraction-backend/pkg/apperror"
	"skill-extraction-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					// Log the wrapped cause server-side; the client only
					// sees the message, never internal paths or secrets.
					logger.Log.Error("request failed", "error", appErr.Err, "message", appErr.Message)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("unexpected error", "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
