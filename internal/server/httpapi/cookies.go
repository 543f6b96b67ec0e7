package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nsavelyev/viewtube/internal/common"
	"github.com/nsavelyev/viewtube/internal/server/services"
)

// setAuthCookies stores the pair in HTTP-only cookies. Lifetimes follow the
// token TTLs so the browser drops a cookie about when its token expires.
func (s *Server) setAuthCookies(c *gin.Context, pair *services.TokenPair) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.AccessTokenCookieName, pair.AccessToken,
		int(s.config.AccessTokenTTL.Seconds()), "/", "", true, true)
	c.SetCookie(common.RefreshTokenCookieName, pair.RefreshToken,
		int(s.config.RefreshTokenTTL.Seconds()), "/", "", true, true)
}

// clearAuthCookies expires both cookies immediately.
func (s *Server) clearAuthCookies(c *gin.Context) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(common.AccessTokenCookieName, "", -1, "/", "", true, true)
	c.SetCookie(common.RefreshTokenCookieName, "", -1, "/", "", true, true)
}
