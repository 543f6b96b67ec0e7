package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/nsavelyev/viewtube/internal/server/models"
	"github.com/nsavelyev/viewtube/internal/server/repositories/repomanager"
)

// LikeService implements the like toggle over the (user, tweet) relation.
type LikeService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewLikeService(db *sql.DB, m repomanager.RepositoryManager) *LikeService {
	return &LikeService{db: db, repomanager: m}
}

// Toggle flips the like state for the pair and reports the resulting state:
// true means the tweet is now liked. The insert is conditional on the unique
// constraint, so two concurrent toggles cannot double-insert.
func (s *LikeService) Toggle(ctx context.Context, userID, tweetID string) (bool, error) {
	tweetRepo := s.repomanager.Tweets(s.db)
	if _, err := tweetRepo.GetByID(ctx, tweetID); err != nil {
		return false, err
	}

	likeRepo := s.repomanager.Likes(s.db)

	inserted, err := likeRepo.Insert(ctx, userID, tweetID)
	if err != nil {
		return false, fmt.Errorf("error inserting like: %w", err)
	}
	if inserted {
		return true, nil
	}

	if _, err := likeRepo.Delete(ctx, userID, tweetID); err != nil {
		return false, fmt.Errorf("error deleting like: %w", err)
	}
	return false, nil
}

// ListLikedTweets returns the tweets the user has liked, newest like first.
func (s *LikeService) ListLikedTweets(ctx context.Context, userID string) ([]*models.Tweet, error) {
	likeRepo := s.repomanager.Likes(s.db)
	return likeRepo.ListLikedTweets(ctx, userID)
}
