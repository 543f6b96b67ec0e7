// Package likes declares the repository contract for the (user, tweet) like
// relation. The table carries a UNIQUE (user_id, tweet_id) constraint so the
// toggle can be expressed as a conditional insert-or-delete with no
// check-then-act race.
package likes

import (
	"context"

	"github.com/nsavelyev/viewtube/internal/server/models"
)

type Repository interface {
	// Insert adds the relation if absent. It reports whether a row was
	// actually inserted (false means the like already existed).
	Insert(ctx context.Context, userID, tweetID string) (bool, error)

	// Delete removes the relation if present and reports whether a row was
	// actually deleted.
	Delete(ctx context.Context, userID, tweetID string) (bool, error)

	// ListLikedTweets returns the tweets liked by the user, newest like first.
	ListLikedTweets(ctx context.Context, userID string) ([]*models.Tweet, error)
}
