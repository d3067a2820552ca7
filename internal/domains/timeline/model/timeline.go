package model

import (
	"sync"
	"time"

	"github.com/google/btree"
)

// TimelineItem is a denormalized snapshot of a tweet stored inside one
// user's feed. It is a copy, not a reference: every follower's timeline owns
// its own item.
type TimelineItem struct {
	TweetID   string    `json:"tweet_id"`
	AuthorID  string    `json:"author_id"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// itemLess orders items newest first, ties broken by tweet ID ascending.
// Two items with equal (CreatedAt, TweetID) compare equal under this order,
// which is what makes ReplaceOrInsert act as dedup-by-key.
func itemLess(a, b TimelineItem) bool {
	if !a.CreatedAt.Equal(b.CreatedAt) {
		return a.CreatedAt.After(b.CreatedAt)
	}
	return a.TweetID < b.TweetID
}

// Timeline is one user's ordered feed. Each timeline carries its own mutex,
// so writers to different users never contend while writers to the same
// user serialize.
type Timeline struct {
	mu    sync.Mutex
	items *btree.BTreeG[TimelineItem]
}

func NewTimeline() *Timeline {
	return &Timeline{
		items: btree.NewG(16, itemLess),
	}
}

// Add inserts the item in O(log n). Inserting an item whose (CreatedAt,
// TweetID) key is already present overwrites the existing entry; this
// collision-as-dedup behavior is intentional and is what collapses the
// fan-out/backfill race into a single entry.
func (t *Timeline) Add(item TimelineItem) {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.items.ReplaceOrInsert(item)
}

// Items returns up to limit entries, newest first. The result is a snapshot
// copy, safe to use while other goroutines keep adding.
func (t *Timeline) Items(limit int) []TimelineItem {
	t.mu.Lock()
	defer t.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	result := make([]TimelineItem, 0, min(limit, t.items.Len()))
	t.items.Ascend(func(item TimelineItem) bool {
		if len(result) >= limit {
			return false
		}
		result = append(result, item)
		return true
	})
	return result
}

// Oldest returns the chronologically earliest entry, if any.
func (t *Timeline) Oldest() (TimelineItem, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	// The tree sorts newest first, so the maximum is the oldest entry.
	return t.items.Max()
}

// Len reports the number of entries.
func (t *Timeline) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.items.Len()
}
