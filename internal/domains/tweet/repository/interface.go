package repository

import (
	"context"

	"microblog-backend/internal/domains/tweet/model"
)

// TweetRepository is the data access contract for tweets.
type TweetRepository interface {
	// Save inserts or overwrites by tweet ID. A second save with the same
	// ID silently replaces the first.
	Save(ctx context.Context, tweet *model.Tweet) error

	// FindByID returns model.ErrTweetNotFound when the ID is unknown.
	FindByID(ctx context.Context, id string) (*model.Tweet, error)

	// FindByAuthorID returns all tweets by the author, newest first.
	FindByAuthorID(ctx context.Context, authorID string) ([]model.Tweet, error)

	// FindRecentByAuthorID returns the limit most recent tweets by the
	// author, newest first.
	FindRecentByAuthorID(ctx context.Context, authorID string, limit int) ([]model.Tweet, error)

	// FindAll returns every stored tweet, newest first. Diagnostic use.
	FindAll(ctx context.Context) ([]model.Tweet, error)
}
