package services

import (
	"context"
	"errors"
	"testing"

	"github.com/nsavelyev/viewtube/internal/common"
	"github.com/nsavelyev/viewtube/internal/server/models"
)

type likeKey struct{ userID, tweetID string }

type fakeLikesRepo struct {
	likes  map[likeKey]bool
	order  []likeKey
	tweets *fakeTweetsRepo
}

func newFakeLikesRepo(tweets *fakeTweetsRepo) *fakeLikesRepo {
	return &fakeLikesRepo{likes: map[likeKey]bool{}, tweets: tweets}
}

func (f *fakeLikesRepo) Insert(ctx context.Context, userID, tweetID string) (bool, error) {
	k := likeKey{userID, tweetID}
	if f.likes[k] {
		return false, nil
	}
	f.likes[k] = true
	f.order = append(f.order, k)
	return true, nil
}

func (f *fakeLikesRepo) Delete(ctx context.Context, userID, tweetID string) (bool, error) {
	k := likeKey{userID, tweetID}
	if !f.likes[k] {
		return false, nil
	}
	delete(f.likes, k)
	return true, nil
}

func (f *fakeLikesRepo) ListLikedTweets(ctx context.Context, userID string) ([]*models.Tweet, error) {
	var out []*models.Tweet
	for i := len(f.order) - 1; i >= 0; i-- {
		k := f.order[i]
		if k.userID != userID || !f.likes[k] {
			continue
		}
		if t, ok := f.tweets.tweets[k.tweetID]; ok {
			out = append(out, t)
		}
	}
	return out, nil
}

func TestLikeToggle(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	tweets := newFakeTweetsRepo()
	likes := newFakeLikesRepo(tweets)
	rm := &fakeRepoManager{t: tweets, l: likes}

	ts := NewTweetService(db, rm)
	created, err := ts.Create(context.Background(), "u2", "likeable")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	s := NewLikeService(db, rm)

	liked, err := s.Toggle(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if !liked {
		t.Fatalf("first toggle should like")
	}

	liked, err = s.Toggle(context.Background(), "u1", created.ID)
	if err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if liked {
		t.Fatalf("second toggle should unlike")
	}
}

func TestLikeToggle_MissingTweet(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	tweets := newFakeTweetsRepo()
	rm := &fakeRepoManager{t: tweets, l: newFakeLikesRepo(tweets)}
	s := NewLikeService(db, rm)

	if _, err := s.Toggle(context.Background(), "u1", "nope"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("err = %v, want ErrorNotFound", err)
	}
}

func TestListLikedTweets_NewestFirst(t *testing.T) {
	db, _ := newSQLMockDB(t)
	defer db.Close()

	tweets := newFakeTweetsRepo()
	likes := newFakeLikesRepo(tweets)
	rm := &fakeRepoManager{t: tweets, l: likes}

	ts := NewTweetService(db, rm)
	s := NewLikeService(db, rm)

	first, _ := ts.Create(context.Background(), "u2", "first")
	second, _ := ts.Create(context.Background(), "u2", "second")

	if _, err := s.Toggle(context.Background(), "u1", first.ID); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}
	if _, err := s.Toggle(context.Background(), "u1", second.ID); err != nil {
		t.Fatalf("Toggle error: %v", err)
	}

	got, err := s.ListLikedTweets(context.Background(), "u1")
	if err != nil {
		t.Fatalf("ListLikedTweets error: %v", err)
	}
	if len(got) != 2 || got[0].ID != second.ID || got[1].ID != first.ID {
		t.Errorf("unexpected order: %v", got)
	}
}
