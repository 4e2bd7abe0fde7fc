package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const sessionContextKey = "session_id"

// Session ensures every request carries a session ID cookie. The cookie
// has no Max-Age, so its scope is one browsing session.
func Session(cookieName string, secure bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		sid, err := c.Cookie(cookieName)
		if err != nil || sid == "" {
			sid = uuid.NewString()
			c.SetCookie(cookieName, sid, 0, "/", "", secure, true)
		}

		c.Set(sessionContextKey, sid)
		c.Next()
	}
}

// SessionID returns the session ID assigned by the Session middleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionContextKey)
}
