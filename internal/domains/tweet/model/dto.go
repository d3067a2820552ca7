package model

import (
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// CreateTweetRequest is the create-tweet request body.
type CreateTweetRequest struct {
	Content string `json:"content"`
}

func (r CreateTweetRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Content,
			validation.Required.Error("content is required"),
			validation.RuneLength(1, MaxContentLength).
				Error("content must be between 1 and 280 characters"),
		),
	)
}

// TweetResponse is the wire representation of a tweet.
type TweetResponse struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTweetResponse(t *Tweet) *TweetResponse {
	return &TweetResponse{
		ID:        t.ID,
		AuthorID:  t.AuthorID,
		Content:   t.Content,
		CreatedAt: t.CreatedAt,
	}
}
