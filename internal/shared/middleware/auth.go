package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/shared/response"
)

// UserIDHeader identifies the caller on every protected route.
const UserIDHeader = "X-User-Id"

// ContextUserIDKey is where RequireUser stores the caller ID in the gin
// context.
const ContextUserIDKey = "user_id"

// RequireUser rejects requests that do not carry a non-empty X-User-Id
// header and exposes the caller ID to downstream handlers. There is no
// credential check: callers are trusted to identify themselves.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetHeader(UserIDHeader)
		if strings.TrimSpace(userID) == "" {
			response.Unauthorized(c, "Missing or empty "+UserIDHeader+" header")
			c.Abort()
			return
		}

		c.Set(ContextUserIDKey, userID)
		c.Next()
	}
}

// UserID extracts the caller ID placed in the context by RequireUser.
func UserID(c *gin.Context) (string, bool) {
	userID := c.GetString(ContextUserIDKey)
	return userID, userID != ""
}
