package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"microblog-backend/internal/domains/tweet/model"
	"microblog-backend/internal/domains/tweet/repository"
	"microblog-backend/internal/shared/events"
)

type tweetService struct {
	tweetRepo repository.TweetRepository
	publisher events.Publisher
}

func NewTweetService(
	tweetRepo repository.TweetRepository,
	publisher events.Publisher,
) ServiceInterface {
	return &tweetService{
		tweetRepo: tweetRepo,
		publisher: publisher,
	}
}

func (s *tweetService) CreateTweet(
	ctx context.Context,
	authorID string,
	req model.CreateTweetRequest,
) (*model.TweetResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build domain entity (enforces content rules again)
	tweet, err := model.NewTweet(authorID, req.Content)
	if err != nil {
		return nil, err
	}

	// Step 3: Persist
	if err := s.tweetRepo.Save(ctx, tweet); err != nil {
		return nil, fmt.Errorf("failed to save tweet: %w", err)
	}

	// Step 4: Publish TweetCreated for asynchronous fan-out.
	// The tweet is already persisted, so a saturated pool only degrades
	// delivery into follower timelines; the request itself still succeeds.
	event := events.TweetCreatedEvent{
		TweetID:   tweet.ID,
		AuthorID:  tweet.AuthorID,
		Content:   tweet.Content,
		CreatedAt: tweet.CreatedAt,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("tweet_id", tweet.ID).
			Str("author_id", tweet.AuthorID).
			Msg("Tweet created but fan-out dispatch rejected")
	}

	return model.NewTweetResponse(tweet), nil
}

func (s *tweetService) GetUserTweets(ctx context.Context, authorID string) ([]model.TweetResponse, error) {
	tweets, err := s.tweetRepo.FindByAuthorID(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets by author: %w", err)
	}
	return toResponses(tweets), nil
}

func (s *tweetService) GetAllTweets(ctx context.Context) ([]model.TweetResponse, error) {
	tweets, err := s.tweetRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tweets: %w", err)
	}
	return toResponses(tweets), nil
}

func toResponses(tweets []model.Tweet) []model.TweetResponse {
	responses := make([]model.TweetResponse, 0, len(tweets))
	for i := range tweets {
		responses = append(responses, *model.NewTweetResponse(&tweets[i]))
	}
	return responses
}
