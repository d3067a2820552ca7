package container

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	followModel "microblog-backend/internal/domains/follow/model"
	timelineModel "microblog-backend/internal/domains/timeline/model"
	tweetModel "microblog-backend/internal/domains/tweet/model"
)

const (
	eventuallyTimeout = 2 * time.Second
	eventuallyTick    = 10 * time.Millisecond
)

func newTestContainer(t *testing.T) *Container {
	t.Helper()
	c, err := NewContainer()
	require.NoError(t, err)
	t.Cleanup(c.Cleanup)
	return c
}

func timelineOf(t *testing.T, c *Container, userID string) []timelineModel.TimelineItemResponse {
	t.Helper()
	items, err := c.TimelineService.GetTimeline(context.Background(), userID)
	require.NoError(t, err)
	return items
}

// Full journey: tweets do not appear in anyone's feed until a follow edge
// exists, a fresh follow backfills the followed user's history, and later
// tweets fan out to the follower.
func TestFollowBackfillAndFanoutJourney(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	// Alice and Bob each tweet. Nobody follows anyone yet.
	_, err := c.TweetService.CreateTweet(ctx, "alice",
		tweetModel.CreateTweetRequest{Content: "Hello from Alice!"})
	require.NoError(t, err)

	bobTweet, err := c.TweetService.CreateTweet(ctx, "bob",
		tweetModel.CreateTweetRequest{Content: "Hello from Bob!"})
	require.NoError(t, err)

	// Self-posts are never self-delivered.
	assert.Empty(t, timelineOf(t, c, "alice"))
	assert.Empty(t, timelineOf(t, c, "bob"))

	// Alice follows Bob: backfill eventually copies Bob's tweet into
	// Alice's feed.
	follow, err := c.FollowService.FollowUser(ctx, "alice",
		followModel.FollowRequest{FollowedID: "bob"})
	require.NoError(t, err)
	assert.Equal(t, "alice", follow.FollowerID)
	assert.Equal(t, "bob", follow.FollowedID)

	require.Eventually(t, func() bool {
		return len(timelineOf(t, c, "alice")) == 1
	}, eventuallyTimeout, eventuallyTick)

	got := timelineOf(t, c, "alice")[0]
	assert.Equal(t, bobTweet.ID, got.TweetID)
	assert.Equal(t, "bob", got.AuthorID)
	assert.Equal(t, "Hello from Bob!", got.Content)

	// Bob's own feed is untouched.
	assert.Empty(t, timelineOf(t, c, "bob"))

	// Bob tweets again: fan-out delivers it to Alice, newest first.
	second, err := c.TweetService.CreateTweet(ctx, "bob",
		tweetModel.CreateTweetRequest{Content: "Bob again"})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(timelineOf(t, c, "alice")) == 2
	}, eventuallyTimeout, eventuallyTick)

	items := timelineOf(t, c, "alice")
	assert.Equal(t, second.ID, items[0].TweetID)
	assert.Equal(t, bobTweet.ID, items[1].TweetID)
}

func TestFanoutReachesEveryFollower(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	followers := []string{"f1", "f2", "f3", "f4"}
	for _, f := range followers {
		_, err := c.FollowService.FollowUser(ctx, f,
			followModel.FollowRequest{FollowedID: "star"})
		require.NoError(t, err)
	}

	tweet, err := c.TweetService.CreateTweet(ctx, "star",
		tweetModel.CreateTweetRequest{Content: "to all my fans"})
	require.NoError(t, err)

	for _, f := range followers {
		require.Eventually(t, func() bool {
			items := timelineOf(t, c, f)
			return len(items) == 1 && items[0].TweetID == tweet.ID
		}, eventuallyTimeout, eventuallyTick, "follower %s", f)
	}
}

func TestValidationFailuresNeverPublish(t *testing.T) {
	c := newTestContainer(t)
	ctx := context.Background()

	_, err := c.TweetService.CreateTweet(ctx, "alice",
		tweetModel.CreateTweetRequest{Content: ""})
	require.Error(t, err)

	_, err = c.FollowService.FollowUser(ctx, "alice",
		followModel.FollowRequest{FollowedID: ""})
	require.Error(t, err)

	// Nothing was persisted, so nothing can ever fan out.
	tweets, err := c.TweetService.GetAllTweets(ctx)
	require.NoError(t, err)
	assert.Empty(t, tweets)
}
