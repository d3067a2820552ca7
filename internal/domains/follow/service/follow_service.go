package service

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"microblog-backend/internal/domains/follow/model"
	"microblog-backend/internal/domains/follow/repository"
	"microblog-backend/internal/shared/events"
)

type followService struct {
	followRepo repository.FollowRepository
	publisher  events.Publisher
}

func NewFollowService(
	followRepo repository.FollowRepository,
	publisher events.Publisher,
) ServiceInterface {
	return &followService{
		followRepo: followRepo,
		publisher:  publisher,
	}
}

func (s *followService) FollowUser(
	ctx context.Context,
	followerID string,
	req model.FollowRequest,
) (*model.FollowResponse, error) {
	// Step 1: Validate request
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Step 2: Build domain entity
	follow, err := model.NewFollow(followerID, req.FollowedID)
	if err != nil {
		return nil, err
	}

	// Step 3: Persist the edge (idempotent)
	if err := s.followRepo.Save(ctx, follow); err != nil {
		return nil, fmt.Errorf("failed to save follow: %w", err)
	}

	// Step 4: Publish UserFollowed for asynchronous backfill. The edge is
	// already persisted, so a rejected dispatch only means the follower
	// starts with an empty timeline until new tweets fan out.
	event := events.UserFollowedEvent{
		FollowerID: follow.FollowerID,
		FollowedID: follow.FollowedID,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		log.Warn().
			Err(err).
			Str("follower_id", follow.FollowerID).
			Str("followed_id", follow.FollowedID).
			Msg("Follow created but backfill dispatch rejected")
	}

	return model.NewFollowResponse(follow), nil
}

func (s *followService) IsFollowing(ctx context.Context, followerID, followedID string) (bool, error) {
	return s.followRepo.Exists(ctx, followerID, followedID)
}
