package service

import (
	"context"

	"microblog-backend/internal/domains/follow/model"
)

type ServiceInterface interface {
	// FollowUser persists the follow edge and hands a UserFollowed event
	// to the publisher so the follower's timeline is backfilled
	// asynchronously.
	FollowUser(ctx context.Context, followerID string, req model.FollowRequest) (*model.FollowResponse, error)

	// IsFollowing reports whether the edge already exists.
	IsFollowing(ctx context.Context, followerID, followedID string) (bool, error)
}
