package service

import (
	"context"

	"microblog-backend/internal/domains/tweet/model"
)

type ServiceInterface interface {
	// CreateTweet persists a new tweet and hands a TweetCreated event to
	// the publisher. The tweet is durable once this returns; delivery into
	// follower timelines happens asynchronously.
	CreateTweet(ctx context.Context, authorID string, req model.CreateTweetRequest) (*model.TweetResponse, error)

	// GetUserTweets returns all tweets by one author, newest first.
	GetUserTweets(ctx context.Context, authorID string) ([]model.TweetResponse, error)

	// GetAllTweets returns every tweet in the store, newest first.
	GetAllTweets(ctx context.Context) ([]model.TweetResponse, error)
}
