// Package tweets declares the repository contract for tweet records.
package tweets

import (
	"context"

	"github.com/nsavelyev/viewtube/internal/server/models"
)

type Repository interface {
	Create(ctx context.Context, tweet *models.Tweet) (*models.Tweet, error)
	GetByID(ctx context.Context, id string) (*models.Tweet, error)

	// ListByOwner returns the owner's tweets, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]*models.Tweet, error)

	UpdateContent(ctx context.Context, id, content string) error
	Delete(ctx context.Context, id string) error
}
