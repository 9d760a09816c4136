package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			if appErr.Code >= http.StatusInternalServerError {
				logger.Log.Error("Request failed",
					"request_id", response.RequestID(c),
					"method", c.Request.Method,
					"path", c.FullPath(),
					"error", errString(appErr.Err),
					"stack", appErr.Stack(),
				)
			}
			response.Error(c, appErr.Code, appErr.Message, appErr.Details)
			return
		}

		// Never expose internal error details to clients.
		logger.Log.Error("Unhandled error",
			"request_id", response.RequestID(c),
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err.Error(),
		)
		response.Error(c, http.StatusInternalServerError, "Server error", nil)
	}
}

func errString(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
