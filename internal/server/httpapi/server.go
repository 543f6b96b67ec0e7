// Package httpapi exposes the public HTTP surface: account management,
// session issuance and rotation via cookies, tweets, likes, media presign
// endpoints, and a healthcheck.
package httpapi

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/nsavelyev/viewtube/internal/logging"
	"github.com/nsavelyev/viewtube/internal/server/config"
	"github.com/nsavelyev/viewtube/internal/server/models"
	"github.com/nsavelyev/viewtube/internal/server/services"
	"github.com/nsavelyev/viewtube/internal/server/token"
)

// SessionManager is the slice of SessionService the HTTP layer needs.
type SessionManager interface {
	Issue(ctx context.Context, user *models.User) (*services.TokenPair, error)
	Rotate(ctx context.Context, refreshToken string) (*services.TokenPair, error)
	Revoke(ctx context.Context, userID string) error
	VerifyAccess(tokenString string) (*token.Claims, error)
}

// UserManager is the slice of UserService the HTTP layer needs.
type UserManager interface {
	Register(ctx context.Context, username, email, fullName, password string) (*models.User, error)
	Login(ctx context.Context, login, password string) (*models.User, error)
	GetByID(ctx context.Context, id string) (*models.User, error)
	ChangePassword(ctx context.Context, userID, oldPassword, newPassword string) error
	UpdateAvatar(ctx context.Context, userID, avatarKey string) error
	UpdateCover(ctx context.Context, userID, coverKey string) error
}

// TweetManager is the slice of TweetService the HTTP layer needs.
type TweetManager interface {
	Create(ctx context.Context, ownerID, content string) (*models.Tweet, error)
	GetByID(ctx context.Context, id string) (*models.Tweet, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error)
	UpdateContent(ctx context.Context, userID, tweetID, content string) (*models.Tweet, error)
	Delete(ctx context.Context, userID, tweetID string) error
}

// LikeManager is the slice of LikeService the HTTP layer needs.
type LikeManager interface {
	Toggle(ctx context.Context, userID, tweetID string) (bool, error)
	ListLikedTweets(ctx context.Context, userID string) ([]*models.Tweet, error)
}

// MediaManager is the slice of MediaService the HTTP layer needs.
type MediaManager interface {
	GetPresignedPutUrl(ctx context.Context) (string, string, error)
	GetPresignedGetUrl(ctx context.Context, key string) (string, error)
}

type Server struct {
	address  string
	config   *config.Config
	logger   logging.Logger
	db       *sql.DB
	sessions SessionManager
	users    UserManager
	tweets   TweetManager
	likes    LikeManager
	media    MediaManager
}

func NewServer(cfg *config.Config, l logging.Logger, db *sql.DB,
	sessions SessionManager, users UserManager, tweets TweetManager,
	likes LikeManager, media MediaManager) *Server {
	return &Server{
		address:  cfg.ListenAddr,
		config:   cfg,
		logger:   l.With("module", "http_server"),
		db:       db,
		sessions: sessions,
		users:    users,
		tweets:   tweets,
		likes:    likes,
		media:    media,
	}
}

// Handler builds the gin engine with all routes registered.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	api := r.Group("/api/v1")

	api.GET("/healthcheck", s.healthcheck)

	u := api.Group("/users")
	u.POST("/register", s.register)
	u.POST("/login", s.login)
	u.POST("/refresh-token", s.refreshToken)
	u.POST("/logout", s.requireAuth, s.logout)
	u.GET("/current", s.requireAuth, s.currentUser)
	u.PATCH("/password", s.requireAuth, s.changePassword)
	u.PATCH("/avatar", s.requireAuth, s.updateAvatar)
	u.PATCH("/cover", s.requireAuth, s.updateCover)

	m := api.Group("/media", s.requireAuth)
	m.POST("/upload-url", s.uploadURL)
	m.GET("/download-url", s.downloadURL)

	t := api.Group("/tweets")
	t.GET("", s.listTweets)
	t.GET("/:id", s.getTweet)
	t.POST("", s.requireAuth, s.createTweet)
	t.PATCH("/:id", s.requireAuth, s.updateTweet)
	t.DELETE("/:id", s.requireAuth, s.deleteTweet)
	t.POST("/:id/like", s.requireAuth, s.toggleLike)

	api.GET("/likes/tweets", s.requireAuth, s.listLikedTweets)

	return r
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.address,
		Handler: s.Handler(),
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Error(ctx, "HTTP server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

func (s *Server) healthcheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Error(ctx, "healthcheck db ping failed", "error", err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "OK"})
}
