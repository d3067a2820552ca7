package job

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	tweetRepo "microblog-backend/internal/domains/tweet/repository"
	"microblog-backend/internal/domains/timeline/model"
	timelineRepo "microblog-backend/internal/domains/timeline/repository"
	"microblog-backend/internal/shared/events"
)

// BackfillHandler reacts to UserFollowed by copying the followed user's most
// recent tweets into the new follower's timeline.
type BackfillHandler struct {
	tweetRepo    tweetRepo.TweetRepository
	timelineRepo timelineRepo.TimelineRepository
	maxTweets    int
}

func NewBackfillHandler(
	tweetRepo tweetRepo.TweetRepository,
	timelineRepo timelineRepo.TimelineRepository,
	maxTweets int,
) *BackfillHandler {
	return &BackfillHandler{
		tweetRepo:    tweetRepo,
		timelineRepo: timelineRepo,
		maxTweets:    maxTweets,
	}
}

// Handle fetches the newest maxTweets tweets by the followed user and adds
// them sequentially, most recent first, to the follower's timeline. The
// fetch is a fixed top-K with no watermark: it never consults what the
// follower already has. If the followed user tweets while this runs, the
// tweet can arrive through both this path and fan-out; both build the item
// from the same (tweet ID, created-at) key, so the timeline keeps one entry.
func (h *BackfillHandler) Handle(ctx context.Context, event events.Event) error {
	ev, ok := event.(events.UserFollowedEvent)
	if !ok {
		return fmt.Errorf("backfill handler received %s event", event.Kind())
	}

	log.Debug().
		Str("follower_id", ev.FollowerID).
		Str("followed_id", ev.FollowedID).
		Msg("Backfilling follower timeline")

	tweets, err := h.tweetRepo.FindRecentByAuthorID(ctx, ev.FollowedID, h.maxTweets)
	if err != nil {
		return fmt.Errorf("load recent tweets of %s: %w", ev.FollowedID, err)
	}

	for _, tweet := range tweets {
		item := model.TimelineItem{
			TweetID:   tweet.ID,
			AuthorID:  tweet.AuthorID,
			Content:   tweet.Content,
			CreatedAt: tweet.CreatedAt,
		}
		if err := h.timelineRepo.AddToTimeline(ctx, ev.FollowerID, item); err != nil {
			return fmt.Errorf("backfill tweet %s to %s: %w", tweet.ID, ev.FollowerID, err)
		}
	}

	return nil
}
