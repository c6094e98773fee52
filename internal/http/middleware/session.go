package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Zacharyfstthomas/SnapRxCapstoneProject/domain"
)

// SessionMW gates user-scoped routes on a valid session for the addressed
// user. The Authorization header carries the bare token, no scheme prefix.
type SessionMW struct {
	sessionSvc domain.SessionService
}

// NewSessionMW creates new session middleware
func NewSessionMW(sessionSvc domain.SessionService) *SessionMW {
	return &SessionMW{sessionSvc: sessionSvc}
}

// RequireSession returns the session-gate middleware function. It binds the
// :user_id route param to the session owner; any mismatch or lookup failure
// is reported uniformly so callers cannot probe for user IDs.
func (mw *SessionMW) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
		if err != nil {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid session."})
			c.Abort()
			return
		}

		token := c.GetHeader("Authorization")
		if !mw.sessionSvc.Validate(c.Request.Context(), token, uint(userID)) {
			c.JSON(http.StatusForbidden, gin.H{"message": "Invalid session."})
			c.Abort()
			return
		}

		c.Set("user_id", uint(userID))
		c.Set("session_token", token)
		c.Next()
	}
}
