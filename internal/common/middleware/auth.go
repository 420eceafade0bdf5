package middleware

import (
	authmodels "github.com/burcum/burcum-api/internal/auth/models"
	"github.com/burcum/burcum-api/internal/common/errors"
	"github.com/burcum/burcum-api/internal/common/messages"
	"github.com/gin-gonic/gin"
)

// SessionCookie is the name of the session cookie.
const SessionCookie = "burcum_session"

// Context keys set by SessionUser.
const (
	ContextUser      = "user"
	ContextSessionID = "session_id"
)

// SessionResolver turns a session token into a user. Unknown, expired
// or malformed tokens resolve to nil without error.
type SessionResolver interface {
	CurrentUser(sessionID string) (*authmodels.User, error)
}

// SessionUser resolves the session cookie into a user and stores it in
// the request context. It never aborts; handlers that need a login use
// AuthRequired on top.
func SessionUser(resolver SessionResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err == nil && token != "" {
			user, resolveErr := resolver.CurrentUser(token)
			if resolveErr == nil && user != nil {
				c.Set(ContextUser, user)
				c.Set(ContextSessionID, token)
			}
		}
		c.Next()
	}
}

// AuthRequired rejects requests that carry no resolved user.
func AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, exists := c.Get(ContextUser); !exists {
			appErr := errors.Unauthorized(messages.Get(messages.KeyLoginRequired))
			c.AbortWithStatusJSON(appErr.Status, gin.H{
				"success": false,
				"error":   appErr,
			})
			return
		}
		c.Next()
	}
}

// UserFromContext returns the logged-in user, or nil for anonymous
// requests.
func UserFromContext(c *gin.Context) *authmodels.User {
	value, exists := c.Get(ContextUser)
	if !exists {
		return nil
	}
	user, ok := value.(*authmodels.User)
	if !ok {
		return nil
	}
	return user
}
