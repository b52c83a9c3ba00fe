package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	// SessionHeader identifies the browsing session that scopes the
	// booking intent handoff slot.
	SessionHeader     = "X-Session-ID"
	sessionContextKey = "session_id"
)

// SessionMiddleware reads the session ID from the request header, minting
// a fresh one when it is missing or malformed, and echoes it back so the
// client can keep using it.
func SessionMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID, err := uuid.Parse(c.GetHeader(SessionHeader))
		if err != nil {
			sessionID = uuid.New()
		}
		c.Set(sessionContextKey, sessionID)
		c.Header(SessionHeader, sessionID.String())
		c.Next()
	}
}

func GetSessionID(c *gin.Context) (uuid.UUID, bool) {
	v, exists := c.Get(sessionContextKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := v.(uuid.UUID)
	return id, ok
}
