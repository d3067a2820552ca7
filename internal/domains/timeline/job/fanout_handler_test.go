package job

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	followModel "microblog-backend/internal/domains/follow/model"
	followRepo "microblog-backend/internal/domains/follow/repository"
	"microblog-backend/internal/domains/timeline/model"
	timelineRepo "microblog-backend/internal/domains/timeline/repository"
	"microblog-backend/internal/shared/events"
)

func TestFanoutDeliversToEveryFollower(t *testing.T) {
	ctx := context.Background()
	follows := followRepo.NewInMemoryFollowRepository()
	timelines := timelineRepo.NewInMemoryTimelineRepository()

	followers := []string{"f1", "f2", "f3"}
	for _, f := range followers {
		require.NoError(t, follows.Save(ctx, &followModel.Follow{FollowerID: f, FollowedID: "author"}))
	}

	handler := NewFanoutHandler(follows, timelines)
	event := events.TweetCreatedEvent{
		TweetID:   "t1",
		AuthorID:  "author",
		Content:   "hello followers",
		CreatedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	require.NoError(t, handler.Handle(ctx, event))

	want := model.TimelineItem{
		TweetID:   "t1",
		AuthorID:  "author",
		Content:   "hello followers",
		CreatedAt: event.CreatedAt,
	}
	for _, f := range followers {
		items, err := timelines.GetTimeline(ctx, f, 10)
		require.NoError(t, err)
		require.Len(t, items, 1, "follower %s", f)
		assert.Equal(t, want, items[0])
	}

	// Self-posts are not self-delivered: the author has no timeline entry.
	authorItems, err := timelines.GetTimeline(ctx, "author", 10)
	require.NoError(t, err)
	assert.Empty(t, authorItems)
}

func TestFanoutWithNoFollowers(t *testing.T) {
	ctx := context.Background()
	handler := NewFanoutHandler(
		followRepo.NewInMemoryFollowRepository(),
		timelineRepo.NewInMemoryTimelineRepository(),
	)

	err := handler.Handle(ctx, events.TweetCreatedEvent{
		TweetID:  "t1",
		AuthorID: "loner",
		Content:  "anyone there?",
	})
	assert.NoError(t, err)
}

func TestFanoutRejectsWrongEventKind(t *testing.T) {
	handler := NewFanoutHandler(
		followRepo.NewInMemoryFollowRepository(),
		timelineRepo.NewInMemoryTimelineRepository(),
	)

	err := handler.Handle(context.Background(), events.UserFollowedEvent{
		FollowerID: "a", FollowedID: "b",
	})
	assert.Error(t, err)
}

// failingTimelineRepo fails writes for one user and delegates the rest.
type failingTimelineRepo struct {
	inner    *timelineRepo.InMemoryTimelineRepository
	failFor  string
	failWith error
}

func (r *failingTimelineRepo) AddToTimeline(ctx context.Context, userID string, item model.TimelineItem) error {
	if userID == r.failFor {
		return r.failWith
	}
	return r.inner.AddToTimeline(ctx, userID, item)
}

func (r *failingTimelineRepo) GetTimeline(ctx context.Context, userID string, limit int) ([]model.TimelineItem, error) {
	return r.inner.GetTimeline(ctx, userID, limit)
}

func TestFanoutIsolatesPerFollowerFailures(t *testing.T) {
	ctx := context.Background()
	follows := followRepo.NewInMemoryFollowRepository()
	inner := timelineRepo.NewInMemoryTimelineRepository()
	timelines := &failingTimelineRepo{
		inner:    inner,
		failFor:  "f2",
		failWith: fmt.Errorf("timeline write refused"),
	}

	for _, f := range []string{"f1", "f2", "f3"} {
		require.NoError(t, follows.Save(ctx, &followModel.Follow{FollowerID: f, FollowedID: "author"}))
	}

	handler := NewFanoutHandler(follows, timelines)
	err := handler.Handle(ctx, events.TweetCreatedEvent{
		TweetID:   "t1",
		AuthorID:  "author",
		Content:   "hi",
		CreatedAt: time.Now(),
	})

	// The failure surfaces so the dispatch layer can log it...
	require.Error(t, err)

	// ...but the other followers were still delivered to.
	for _, f := range []string{"f1", "f3"} {
		items, err := inner.GetTimeline(ctx, f, 10)
		require.NoError(t, err)
		assert.Len(t, items, 1, "follower %s", f)
	}
}
