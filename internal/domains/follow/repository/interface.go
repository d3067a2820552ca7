package repository

import (
	"context"

	"microblog-backend/internal/domains/follow/model"
)

// FollowRepository maintains the follow graph as two consistent adjacency
// views: followed -> followers and follower -> followed.
type FollowRepository interface {
	// Save adds the edge to both views. Idempotent.
	Save(ctx context.Context, follow *model.Follow) error

	// GetFollowers returns the IDs of everyone following userID.
	GetFollowers(ctx context.Context, userID string) ([]string, error)

	// FindFollowedUserIDs returns the IDs userID follows.
	FindFollowedUserIDs(ctx context.Context, userID string) ([]string, error)

	// Exists reports whether followerID currently follows followedID.
	Exists(ctx context.Context, followerID, followedID string) (bool, error)
}
