package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxContentLength is the hard cap on tweet content, counted in runes.
const MaxContentLength = 280

// Tweet represents a single authored content item. Immutable once created;
// the repository stores and returns copies, never shared pointers.
type Tweet struct {
	ID        string    `json:"id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// NewTweet builds a tweet with a fresh ID and timestamp after validating
// the business rules (non-empty author, 1-280 character content).
func NewTweet(authorID, content string) (*Tweet, error) {
	if strings.TrimSpace(authorID) == "" {
		return nil, ErrEmptyAuthorID
	}
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	return &Tweet{
		ID:        uuid.NewString(),
		AuthorID:  authorID,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}, nil
}

// ValidateContent enforces the content rules shared by the domain model and
// the request DTO.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}
	if len([]rune(content)) > MaxContentLength {
		return ErrContentTooLong
	}
	return nil
}
