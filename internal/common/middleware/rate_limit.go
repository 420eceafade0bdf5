package middleware

import (
	"strconv"

	"github.com/burcum/burcum-api/internal/common/errors"
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/burcum/burcum-api/internal/common/ratelimit"
	"github.com/gin-gonic/gin"
)

// RateLimit applies a fixed-window limit per client IP. Denials answer
// 429 with a Retry-After header; allowed requests expose the remaining
// quota.
func RateLimit(limiter *ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := limiter.Check(c.ClientIP())

		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))

		if !result.Allowed {
			c.Header("Retry-After", strconv.Itoa(result.RetryAfter))
			appErr := errors.TooManyRequests(messages.Get(messages.KeyTooManyRequests), result.RetryAfter)
			c.AbortWithStatusJSON(appErr.Status, gin.H{
				"success": false,
				"error":   appErr,
			})
			return
		}

		c.Next()
	}
}
