package httpapi

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// uploadURL allocates a storage key and returns a presigned PUT URL for it.
// The client uploads directly to the object store, then registers the key
// (for example via PATCH /users/avatar).
func (s *Server) uploadURL(c *gin.Context) {
	key, url, err := s.media.GetPresignedPutUrl(c.Request.Context())
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"key": key, "uploadUrl": url})
}

func (s *Server) downloadURL(c *gin.Context) {
	key := c.Query("key")
	if key == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "key is required"})
		return
	}
	url, err := s.media.GetPresignedGetUrl(c.Request.Context(), key)
	if err != nil {
		s.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"downloadUrl": url})
}
