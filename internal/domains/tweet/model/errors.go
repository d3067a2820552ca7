package model

import "errors"

// Error codes
const (
	ErrCodeTweetNotFound  = "TWT001"
	ErrCodeEmptyContent   = "TWT002"
	ErrCodeContentTooLong = "TWT003"
	ErrCodeEmptyAuthorID  = "TWT004"
)

// Errors
var (
	ErrTweetNotFound  = errors.New("tweet not found")
	ErrEmptyContent   = errors.New("tweet content cannot be empty")
	ErrContentTooLong = errors.New("tweet content cannot exceed 280 characters")
	ErrEmptyAuthorID  = errors.New("author ID cannot be empty")
)
