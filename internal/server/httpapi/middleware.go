package httpapi

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/nsavelyev/viewtube/internal/common"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "userRole"
)

// requireAuth authenticates the request from the Authorization header or,
// failing that, the access-token cookie. On success the subject id and role
// are stored in the gin context.
func (s *Server) requireAuth(c *gin.Context) {
	tokenString := bearerToken(c)
	if tokenString == "" {
		tokenString, _ = c.Cookie(common.AccessTokenCookieName)
	}
	if tokenString == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	claims, err := s.sessions.VerifyAccess(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	c.Set(ctxUserIDKey, claims.UserID)
	c.Set(ctxRoleKey, claims.Role)
	c.Next()
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if len(h) > 7 && strings.EqualFold(h[:7], "Bearer ") {
		return h[7:]
	}
	return ""
}

// currentUserID returns the authenticated subject id. Handlers behind
// requireAuth can rely on it being present.
func currentUserID(c *gin.Context) string {
	return c.GetString(ctxUserIDKey)
}
