package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// FollowRequest is the create-follow request body. The follower is the
// authenticated caller, so only the followed user travels in the body.
type FollowRequest struct {
	FollowedID string `json:"followed_id"`
}

func (r FollowRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.FollowedID,
			validation.Required.Error("followed_id is required"),
		),
	)
}

type FollowResponse struct {
	FollowerID string `json:"follower_id"`
	FollowedID string `json:"followed_id"`
}

func NewFollowResponse(f *Follow) *FollowResponse {
	return &FollowResponse{
		FollowerID: f.FollowerID,
		FollowedID: f.FollowedID,
	}
}
