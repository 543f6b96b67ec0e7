package likes

import (
	"context"
	"fmt"

	"github.com/nsavelyev/viewtube/internal/dbx"
	"github.com/nsavelyev/viewtube/internal/server/models"
)

// PostgresRepository implements Repository over dbx.DBTX.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Insert relies on the UNIQUE (user_id, tweet_id) constraint: a concurrent
// duplicate insert degrades to a no-op instead of an error.
func (r *PostgresRepository) Insert(ctx context.Context, userID, tweetID string) (bool, error) {
	query := `
		INSERT INTO likes (user_id, tweet_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, tweet_id) DO NOTHING
	`
	res, err := r.db.ExecContext(ctx, query, userID, tweetID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, tweetID string) (bool, error) {
	query := `
		DELETE FROM likes
		WHERE user_id = $1 AND tweet_id = $2
	`
	res, err := r.db.ExecContext(ctx, query, userID, tweetID)
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("db error: %w", err)
	}
	return n > 0, nil
}

func (r *PostgresRepository) ListLikedTweets(ctx context.Context, userID string) ([]*models.Tweet, error) {
	query := `
		SELECT t.id, t.owner_id, t.content, t.created_at, t.updated_at
		FROM likes l
		JOIN tweets t ON t.id = l.tweet_id
		WHERE l.user_id = $1
		ORDER BY l.created_at DESC
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	var result []*models.Tweet
	for rows.Next() {
		tweet := &models.Tweet{}
		if err := rows.Scan(&tweet.ID, &tweet.OwnerID, &tweet.Content, &tweet.CreatedAt, &tweet.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		result = append(result, tweet)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return result, nil
}
