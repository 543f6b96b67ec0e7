package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nsavelyev/viewtube/internal/common"
	"github.com/nsavelyev/viewtube/internal/server/models"
)

type userResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"fullName"`
	Role      string    `json:"role"`
	AvatarKey string    `json:"avatarKey,omitempty"`
	CoverKey  string    `json:"coverKey,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

func toUserResponse(u *models.User) userResponse {
	return userResponse{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		AvatarKey: u.AvatarKey,
		CoverKey:  u.CoverKey,
		CreatedAt: u.CreatedAt,
	}
}

type registerRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	FullName string `json:"fullName"`
	Password string `json:"password" binding:"required,min=8"`
}

// register creates the account and immediately opens a session for it, so a
// fresh signup is logged in without a second round trip.
func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := s.users.Register(c.Request.Context(), req.Username, req.Email, req.FullName, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	pair, err := s.sessions.Issue(c.Request.Context(), u)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.setAuthCookies(c, pair)
	c.JSON(http.StatusCreated, gin.H{
		"user":         toUserResponse(u),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

type loginRequest struct {
	Login    string `json:"login" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	u, err := s.users.Login(c.Request.Context(), req.Login, req.Password)
	if err != nil {
		s.writeError(c, err)
		return
	}

	pair, err := s.sessions.Issue(c.Request.Context(), u)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{
		"user":         toUserResponse(u),
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

type refreshRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// refreshToken rotates the refresh token. The cookie takes precedence; the
// body field exists for clients that cannot send cookies. Every failure
// produces the same 401 response.
func (s *Server) refreshToken(c *gin.Context) {
	tokenString, _ := c.Cookie(common.RefreshTokenCookieName)
	if tokenString == "" {
		var req refreshRequest
		if err := c.ShouldBindJSON(&req); err == nil {
			tokenString = req.RefreshToken
		}
	}
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	pair, err := s.sessions.Rotate(c.Request.Context(), tokenString)
	if err != nil {
		s.writeError(c, err)
		return
	}

	s.setAuthCookies(c, pair)
	c.JSON(http.StatusOK, gin.H{
		"accessToken":  pair.AccessToken,
		"refreshToken": pair.RefreshToken,
	})
}

func (s *Server) logout(c *gin.Context) {
	if err := s.sessions.Revoke(c.Request.Context(), currentUserID(c)); err != nil {
		s.writeError(c, err)
		return
	}
	s.clearAuthCookies(c)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

func (s *Server) currentUser(c *gin.Context) {
	u, err := s.users.GetByID(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": toUserResponse(u)})
}

type changePasswordRequest struct {
	OldPassword string `json:"oldPassword" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

func (s *Server) changePassword(c *gin.Context) {
	var req changePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.users.ChangePassword(c.Request.Context(), currentUserID(c), req.OldPassword, req.NewPassword); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "password changed"})
}

type updateAvatarRequest struct {
	AvatarKey string `json:"avatarKey" binding:"required"`
}

func (s *Server) updateAvatar(c *gin.Context) {
	var req updateAvatarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.users.UpdateAvatar(c.Request.Context(), currentUserID(c), req.AvatarKey); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "avatar updated"})
}

type updateCoverRequest struct {
	CoverKey string `json:"coverKey" binding:"required"`
}

func (s *Server) updateCover(c *gin.Context) {
	var req updateCoverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := s.users.UpdateCover(c.Request.Context(), currentUserID(c), req.CoverKey); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "cover updated"})
}
