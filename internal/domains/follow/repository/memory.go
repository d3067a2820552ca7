package repository

import (
	"context"
	"sync"

	"microblog-backend/internal/domains/follow/model"
)

// InMemoryFollowRepository guards both adjacency maps with a single RWMutex
// so a writer always updates the two views before any reader can observe
// the edge in one view and not the other.
type InMemoryFollowRepository struct {
	mu sync.RWMutex

	// followed user ID -> set of follower IDs
	followers map[string]map[string]struct{}

	// follower ID -> set of followed user IDs
	following map[string]map[string]struct{}
}

func NewInMemoryFollowRepository() *InMemoryFollowRepository {
	return &InMemoryFollowRepository{
		followers: make(map[string]map[string]struct{}),
		following: make(map[string]map[string]struct{}),
	}
}

func (r *InMemoryFollowRepository) Save(_ context.Context, follow *model.Follow) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	addToSet(r.followers, follow.FollowedID, follow.FollowerID)
	addToSet(r.following, follow.FollowerID, follow.FollowedID)
	return nil
}

func (r *InMemoryFollowRepository) GetFollowers(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return setToSlice(r.followers[userID]), nil
}

func (r *InMemoryFollowRepository) FindFollowedUserIDs(_ context.Context, userID string) ([]string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return setToSlice(r.following[userID]), nil
}

func (r *InMemoryFollowRepository) Exists(_ context.Context, followerID, followedID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.following[followerID][followedID]
	return ok, nil
}

func addToSet(adjacency map[string]map[string]struct{}, key, member string) {
	set, ok := adjacency[key]
	if !ok {
		set = make(map[string]struct{})
		adjacency[key] = set
	}
	set[member] = struct{}{}
}

func setToSlice(set map[string]struct{}) []string {
	result := make([]string, 0, len(set))
	for member := range set {
		result = append(result, member)
	}
	return result
}
