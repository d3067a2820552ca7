package model

import "strings"

// Follow represents a directed relationship: the follower receives the
// followed user's tweets. Immutable; saving the same edge twice is a no-op.
//
// Self-follows are permitted on purpose: nothing downstream breaks, because
// fan-out only writes to follower timelines and a user following themself
// simply sees their own tweets.
type Follow struct {
	FollowerID string `json:"follower_id"`
	FollowedID string `json:"followed_id"`
}

// NewFollow validates both endpoints and builds the edge.
func NewFollow(followerID, followedID string) (*Follow, error) {
	if strings.TrimSpace(followerID) == "" {
		return nil, ErrEmptyFollowerID
	}
	if strings.TrimSpace(followedID) == "" {
		return nil, ErrEmptyFollowedID
	}

	return &Follow{
		FollowerID: followerID,
		FollowedID: followedID,
	}, nil
}
