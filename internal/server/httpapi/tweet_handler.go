package httpapi

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nsavelyev/viewtube/internal/server/models"
)

type tweetResponse struct {
	ID        string    `json:"id"`
	OwnerID   string    `json:"ownerId"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func toTweetResponse(t *models.Tweet) tweetResponse {
	return tweetResponse{
		ID:        t.ID,
		OwnerID:   t.OwnerID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func toTweetResponses(ts []*models.Tweet) []tweetResponse {
	out := make([]tweetResponse, 0, len(ts))
	for _, t := range ts {
		out = append(out, toTweetResponse(t))
	}
	return out
}

type tweetRequest struct {
	Content string `json:"content" binding:"required,max=280"`
}

func (s *Server) createTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	t, err := s.tweets.Create(c.Request.Context(), currentUserID(c), req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"tweet": toTweetResponse(t)})
}

func (s *Server) getTweet(c *gin.Context) {
	t, err := s.tweets.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tweet": toTweetResponse(t)})
}

// listTweets lists tweets by author, selected with the owner query parameter.
func (s *Server) listTweets(c *gin.Context) {
	owner := c.Query("owner")
	if owner == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "owner is required"})
		return
	}
	ts, err := s.tweets.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tweets": toTweetResponses(ts)})
}

func (s *Server) updateTweet(c *gin.Context) {
	var req tweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	t, err := s.tweets.UpdateContent(c.Request.Context(), currentUserID(c), c.Param("id"), req.Content)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tweet": toTweetResponse(t)})
}

func (s *Server) deleteTweet(c *gin.Context) {
	if err := s.tweets.Delete(c.Request.Context(), currentUserID(c), c.Param("id")); err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "tweet deleted"})
}

func (s *Server) toggleLike(c *gin.Context) {
	liked, err := s.likes.Toggle(c.Request.Context(), currentUserID(c), c.Param("id"))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"liked": liked})
}

func (s *Server) listLikedTweets(c *gin.Context) {
	ts, err := s.likes.ListLikedTweets(c.Request.Context(), currentUserID(c))
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tweets": toTweetResponses(ts)})
}
