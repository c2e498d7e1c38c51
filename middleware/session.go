package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHeader carries the opaque session id that scopes cart state and the
// address book. Authentication proper lives in a separate service; this core
// only needs a stable identifier per client session.
const SessionHeader = "X-Session-ID"

const sessionKey = "sessionID"

// SessionMiddleware ensures every request carries a session id, minting one
// for first-contact clients and echoing it back so the client can persist it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.GetHeader(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}
		c.Set(sessionKey, sessionID)
		c.Header(SessionHeader, sessionID)
		c.Next()
	}
}

// SessionID returns the request's session id as resolved by SessionMiddleware.
func SessionID(c *gin.Context) string {
	return c.GetString(sessionKey)
}
