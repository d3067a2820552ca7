package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"microblog-backend/internal/domains/tweet/model"
)

func seedTweet(id, authorID string, createdAt time.Time) *model.Tweet {
	return &model.Tweet{
		ID:        id,
		AuthorID:  authorID,
		Content:   "content of " + id,
		CreatedAt: createdAt,
	}
}

func TestSaveOverwritesByID(t *testing.T) {
	repo := NewInMemoryTweetRepository()
	ctx := context.Background()
	at := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, seedTweet("t1", "alice", at)))

	// Second save with the same ID silently replaces, no conflict error.
	replacement := seedTweet("t1", "alice", at)
	replacement.Content = "replaced"
	require.NoError(t, repo.Save(ctx, replacement))

	found, err := repo.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "replaced", found.Content)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFindByIDNotFound(t *testing.T) {
	repo := NewInMemoryTweetRepository()

	_, err := repo.FindByID(context.Background(), "missing")
	assert.ErrorIs(t, err, model.ErrTweetNotFound)
}

func TestFindByAuthorIDNewestFirst(t *testing.T) {
	repo := NewInMemoryTweetRepository()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, seedTweet("old", "alice", base)))
	require.NoError(t, repo.Save(ctx, seedTweet("new", "alice", base.Add(time.Hour))))
	require.NoError(t, repo.Save(ctx, seedTweet("other", "bob", base.Add(2*time.Hour))))

	tweets, err := repo.FindByAuthorID(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, tweets, 2)
	assert.Equal(t, "new", tweets[0].ID)
	assert.Equal(t, "old", tweets[1].ID)
}

func TestFindRecentByAuthorIDIsTopN(t *testing.T) {
	repo := NewInMemoryTweetRepository()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	for i := 0; i < 8; i++ {
		id := fmt.Sprintf("t%d", i)
		require.NoError(t, repo.Save(ctx, seedTweet(id, "alice", base.Add(time.Duration(i)*time.Minute))))
	}

	// Plain top-N, newest first, regardless of any cursor semantics the
	// name might suggest.
	tweets, err := repo.FindRecentByAuthorID(ctx, "alice", 3)
	require.NoError(t, err)
	require.Len(t, tweets, 3)
	assert.Equal(t, "t7", tweets[0].ID)
	assert.Equal(t, "t6", tweets[1].ID)
	assert.Equal(t, "t5", tweets[2].ID)

	// Limit beyond the author's count returns everything they have.
	tweets, err = repo.FindRecentByAuthorID(ctx, "alice", 100)
	require.NoError(t, err)
	assert.Len(t, tweets, 8)

	// Unknown author yields an empty slice.
	tweets, err = repo.FindRecentByAuthorID(ctx, "nobody", 3)
	require.NoError(t, err)
	assert.Empty(t, tweets)
}

func TestFindAllNewestFirst(t *testing.T) {
	repo := NewInMemoryTweetRepository()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, repo.Save(ctx, seedTweet("a", "alice", base)))
	require.NoError(t, repo.Save(ctx, seedTweet("b", "bob", base.Add(time.Minute))))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "b", all[0].ID)
	assert.Equal(t, "a", all[1].ID)
}

func TestStoredTweetsAreCopies(t *testing.T) {
	repo := NewInMemoryTweetRepository()
	ctx := context.Background()

	original := seedTweet("t1", "alice", time.Now())
	require.NoError(t, repo.Save(ctx, original))

	// Mutating the caller's struct after save must not affect the store.
	original.Content = "mutated"

	found, err := repo.FindByID(ctx, "t1")
	require.NoError(t, err)
	assert.Equal(t, "content of t1", found.Content)
}
