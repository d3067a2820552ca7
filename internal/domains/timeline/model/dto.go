package model

import "time"

// TimelineItemResponse is the wire representation of one feed entry.
type TimelineItemResponse struct {
	TweetID   string    `json:"tweet_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

func NewTimelineItemResponse(item TimelineItem) TimelineItemResponse {
	return TimelineItemResponse{
		TweetID:   item.TweetID,
		AuthorID:  item.AuthorID,
		Content:   item.Content,
		CreatedAt: item.CreatedAt,
	}
}
