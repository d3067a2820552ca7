package job

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"

	followRepo "microblog-backend/internal/domains/follow/repository"
	"microblog-backend/internal/domains/timeline/model"
	timelineRepo "microblog-backend/internal/domains/timeline/repository"
	"microblog-backend/internal/shared/events"
)

// maxFanoutParallelism caps the goroutines one fan-out may spawn so a
// celebrity author cannot monopolize the scheduler.
const maxFanoutParallelism = 16

// FanoutHandler reacts to TweetCreated by copying the tweet into every
// current follower's timeline (fan-out-on-write).
type FanoutHandler struct {
	followRepo   followRepo.FollowRepository
	timelineRepo timelineRepo.TimelineRepository
}

func NewFanoutHandler(
	followRepo followRepo.FollowRepository,
	timelineRepo timelineRepo.TimelineRepository,
) *FanoutHandler {
	return &FanoutHandler{
		followRepo:   followRepo,
		timelineRepo: timelineRepo,
	}
}

// Handle reads a point-in-time snapshot of the author's followers and
// delivers the tweet to each of them in parallel. A follow formed while the
// snapshot is taken may or may not be included; the backfill path covers it
// either way.
//
// Failures are isolated per follower: every delivery is attempted, and the
// first error is returned so the dispatch layer can log it.
func (h *FanoutHandler) Handle(ctx context.Context, event events.Event) error {
	ev, ok := event.(events.TweetCreatedEvent)
	if !ok {
		return fmt.Errorf("fanout handler received %s event", event.Kind())
	}

	log.Debug().
		Str("tweet_id", ev.TweetID).
		Str("author_id", ev.AuthorID).
		Msg("Fanning out tweet")

	followers, err := h.followRepo.GetFollowers(ctx, ev.AuthorID)
	if err != nil {
		return fmt.Errorf("load followers of %s: %w", ev.AuthorID, err)
	}

	var g errgroup.Group
	g.SetLimit(maxFanoutParallelism)

	for _, followerID := range followers {
		g.Go(func() error {
			// Each follower gets its own copy of the item.
			item := model.TimelineItem{
				TweetID:   ev.TweetID,
				AuthorID:  ev.AuthorID,
				Content:   ev.Content,
				CreatedAt: ev.CreatedAt,
			}
			if err := h.timelineRepo.AddToTimeline(ctx, followerID, item); err != nil {
				log.Warn().
					Err(err).
					Str("tweet_id", ev.TweetID).
					Str("follower_id", followerID).
					Msg("Failed to deliver tweet to follower")
				return fmt.Errorf("deliver tweet %s to %s: %w", ev.TweetID, followerID, err)
			}
			return nil
		})
	}

	return g.Wait()
}
