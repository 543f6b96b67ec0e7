package models

import "time"

// Like is a (user, tweet) relation under a uniqueness constraint; toggling
// is a conditional insert-or-delete, never a check-then-act pair.
type Like struct {
	UserID    string
	TweetID   string
	CreatedAt time.Time
}
