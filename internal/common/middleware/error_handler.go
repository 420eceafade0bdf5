package middleware

import (
	"strconv"

	"github.com/burcum/burcum-api/internal/common/errors"
	"github.com/burcum/burcum-api/pkg/logger"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ErrorHandler middleware catches panics and converts them to proper error responses
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Error("panic recovered",
					zap.Any("panic", r),
					zap.String("path", c.Request.URL.Path),
				)
				appErr := errors.Internal("internal server error", "")
				c.AbortWithStatusJSON(appErr.Status, gin.H{
					"success": false,
					"error":   appErr,
				})
			}
		}()
		c.Next()
	}
}

// JSONErrorResponse wraps errors in consistent JSON format. Rate-limit
// denials additionally carry a Retry-After header.
func JSONErrorResponse(c *gin.Context, err error) {
	appErr, ok := err.(*errors.AppError)
	if !ok {
		appErr = errors.Internal("internal server error", err.Error())
	}

	if appErr.RetryAfter > 0 {
		c.Header("Retry-After", strconv.Itoa(appErr.RetryAfter))
	}

	c.JSON(appErr.Status, gin.H{
		"success": false,
		"error":   appErr,
	})
}
