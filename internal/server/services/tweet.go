package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/nsavelyev/viewtube/internal/common"
	"github.com/nsavelyev/viewtube/internal/server/models"
	"github.com/nsavelyev/viewtube/internal/server/repositories/repomanager"
)

// TweetService handles tweet CRUD. Mutations are restricted to the owner.
type TweetService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

func NewTweetService(db *sql.DB, m repomanager.RepositoryManager) *TweetService {
	return &TweetService{db: db, repomanager: m}
}

func (s *TweetService) Create(ctx context.Context, ownerID, content string) (*models.Tweet, error) {
	repo := s.repomanager.Tweets(s.db)
	t, err := repo.Create(ctx, &models.Tweet{OwnerID: ownerID, Content: content})
	if err != nil {
		return nil, fmt.Errorf("error creating tweet: %w", err)
	}
	return t, nil
}

func (s *TweetService) GetByID(ctx context.Context, id string) (*models.Tweet, error) {
	repo := s.repomanager.Tweets(s.db)
	return repo.GetByID(ctx, id)
}

func (s *TweetService) ListByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error) {
	repo := s.repomanager.Tweets(s.db)
	return repo.ListByOwner(ctx, ownerID)
}

// UpdateContent rewrites the tweet body. Only the owner may update;
// anyone else gets common.ErrorForbidden.
func (s *TweetService) UpdateContent(ctx context.Context, userID, tweetID, content string) (*models.Tweet, error) {
	repo := s.repomanager.Tweets(s.db)

	t, err := repo.GetByID(ctx, tweetID)
	if err != nil {
		return nil, err
	}
	if t.OwnerID != userID {
		return nil, common.ErrorForbidden
	}
	if err := repo.UpdateContent(ctx, tweetID, content); err != nil {
		return nil, fmt.Errorf("error updating tweet: %w", err)
	}
	return repo.GetByID(ctx, tweetID)
}

// Delete removes the tweet. Only the owner may delete.
func (s *TweetService) Delete(ctx context.Context, userID, tweetID string) error {
	repo := s.repomanager.Tweets(s.db)

	t, err := repo.GetByID(ctx, tweetID)
	if err != nil {
		return err
	}
	if t.OwnerID != userID {
		return common.ErrorForbidden
	}
	if err := repo.Delete(ctx, tweetID); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error deleting tweet: %w", err)
	}
	return nil
}
