package repository

import (
	"context"

	"microblog-backend/internal/domains/timeline/model"
)

// TimelineRepository stores the materialized per-user timelines.
type TimelineRepository interface {
	// AddToTimeline appends the item to the user's timeline, creating the
	// timeline lazily on first write.
	AddToTimeline(ctx context.Context, userID string, item model.TimelineItem) error

	// GetTimeline returns up to limit entries, newest first. A user with
	// no timeline gets an empty slice, never nil semantics upstream.
	GetTimeline(ctx context.Context, userID string, limit int) ([]model.TimelineItem, error)
}
