package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"mindhaven.app/server/internal/model"
	"mindhaven.app/server/internal/service"
)

const (
	// SessionCookieName is the cookie carrying the session ID.
	SessionCookieName = "mindhaven_session"

	userContextKey    = "auth.user"
	sessionContextKey = "auth.session_id"
)

// RequireAuth rejects requests without a valid session cookie.
func RequireAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, sessionID, ok := resolveSession(c, auth)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
			return
		}
		c.Set(userContextKey, user)
		c.Set(sessionContextKey, sessionID)
		c.Next()
	}
}

// OptionalAuth attaches the user when a valid session cookie is present but
// lets anonymous requests through.
func OptionalAuth(auth service.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if user, sessionID, ok := resolveSession(c, auth); ok {
			c.Set(userContextKey, user)
			c.Set(sessionContextKey, sessionID)
		}
		c.Next()
	}
}

func resolveSession(c *gin.Context, auth service.AuthService) (*model.User, int64, bool) {
	cookie, err := c.Cookie(SessionCookieName)
	if err != nil {
		return nil, 0, false
	}
	sessionID, err := strconv.ParseInt(cookie, 10, 64)
	if err != nil {
		return nil, 0, false
	}
	user, err := auth.ValidateSession(c.Request.Context(), sessionID)
	if err != nil {
		return nil, 0, false
	}
	return user, sessionID, true
}

// GetUser returns the authenticated user set by RequireAuth or OptionalAuth.
func GetUser(c *gin.Context) (*model.User, bool) {
	v, ok := c.Get(userContextKey)
	if !ok {
		return nil, false
	}
	user, ok := v.(*model.User)
	return user, ok
}

// GetSessionID returns the session ID of the authenticated request.
func GetSessionID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(sessionContextKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}
