package service

import (
	"context"

	"microblog-backend/internal/domains/timeline/model"
)

type ServiceInterface interface {
	// GetTimeline returns the caller's precomputed feed, newest first,
	// capped at the configured maximum length. Because fan-out and
	// backfill run asynchronously, a caller who just tweeted or followed
	// may not see that action reflected yet.
	GetTimeline(ctx context.Context, userID string) ([]model.TimelineItemResponse, error)
}
