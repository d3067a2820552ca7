package model

import "errors"

// Error codes
const (
	ErrCodeEmptyFollowerID = "FLW001"
	ErrCodeEmptyFollowedID = "FLW002"
)

// Errors
var (
	ErrEmptyFollowerID = errors.New("follower ID cannot be empty")
	ErrEmptyFollowedID = errors.New("followed ID cannot be empty")
)
