package repository

import (
	"context"
	"sort"
	"sync"

	"microblog-backend/internal/domains/tweet/model"
)

// InMemoryTweetRepository keeps tweets in a mutex-guarded map. Tweets are
// stored and returned by value so callers can never mutate shared state.
type InMemoryTweetRepository struct {
	mu     sync.RWMutex
	tweets map[string]model.Tweet
}

func NewInMemoryTweetRepository() *InMemoryTweetRepository {
	return &InMemoryTweetRepository{
		tweets: make(map[string]model.Tweet),
	}
}

func (r *InMemoryTweetRepository) Save(_ context.Context, tweet *model.Tweet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.tweets[tweet.ID] = *tweet
	return nil
}

func (r *InMemoryTweetRepository) FindByID(_ context.Context, id string) (*model.Tweet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tweet, ok := r.tweets[id]
	if !ok {
		return nil, model.ErrTweetNotFound
	}
	return &tweet, nil
}

func (r *InMemoryTweetRepository) FindByAuthorID(_ context.Context, authorID string) ([]model.Tweet, error) {
	r.mu.RLock()
	result := r.collectByAuthor(authorID)
	r.mu.RUnlock()

	sortNewestFirst(result)
	return result, nil
}

func (r *InMemoryTweetRepository) FindRecentByAuthorID(_ context.Context, authorID string, limit int) ([]model.Tweet, error) {
	r.mu.RLock()
	result := r.collectByAuthor(authorID)
	r.mu.RUnlock()

	sortNewestFirst(result)
	if limit < 0 {
		limit = 0
	}
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (r *InMemoryTweetRepository) FindAll(_ context.Context) ([]model.Tweet, error) {
	r.mu.RLock()
	result := make([]model.Tweet, 0, len(r.tweets))
	for _, tweet := range r.tweets {
		result = append(result, tweet)
	}
	r.mu.RUnlock()

	sortNewestFirst(result)
	return result, nil
}

// collectByAuthor must be called with at least a read lock held.
func (r *InMemoryTweetRepository) collectByAuthor(authorID string) []model.Tweet {
	result := make([]model.Tweet, 0)
	for _, tweet := range r.tweets {
		if tweet.AuthorID == authorID {
			result = append(result, tweet)
		}
	}
	return result
}

func sortNewestFirst(tweets []model.Tweet) {
	sort.Slice(tweets, func(i, j int) bool {
		if !tweets[i].CreatedAt.Equal(tweets[j].CreatedAt) {
			return tweets[i].CreatedAt.After(tweets[j].CreatedAt)
		}
		return tweets[i].ID > tweets[j].ID
	})
}
