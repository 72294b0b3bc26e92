package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session ensures every request carries a session cookie and exposes its ID
// through the request context. The cookie is the only session identity the
// search flow needs; it works without authentication.
func Session(cookieName string, ttl time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := c.Cookie(cookieName)
		if err != nil || id == "" {
			id = uuid.NewString()
			c.SetCookie(cookieName, id, int(ttl.Seconds()), "/", "", false, true)
		}
		c.Set(sessionContextKey, id)
		c.Next()
	}
}

// SessionID returns the request's session identifier.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
