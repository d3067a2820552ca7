package repository

import (
	"context"
	"sync"

	"microblog-backend/internal/domains/timeline/model"
)

// InMemoryTimelineRepository maps users to their timelines. The outer map
// lock is held only to find or create a timeline; all entry mutation happens
// under the per-timeline mutex, so writers to different users run in
// parallel.
type InMemoryTimelineRepository struct {
	mu        sync.RWMutex
	timelines map[string]*model.Timeline
}

func NewInMemoryTimelineRepository() *InMemoryTimelineRepository {
	return &InMemoryTimelineRepository{
		timelines: make(map[string]*model.Timeline),
	}
}

func (r *InMemoryTimelineRepository) AddToTimeline(_ context.Context, userID string, item model.TimelineItem) error {
	r.getOrCreate(userID).Add(item)
	return nil
}

func (r *InMemoryTimelineRepository) GetTimeline(_ context.Context, userID string, limit int) ([]model.TimelineItem, error) {
	r.mu.RLock()
	timeline, ok := r.timelines[userID]
	r.mu.RUnlock()

	if !ok {
		return []model.TimelineItem{}, nil
	}
	return timeline.Items(limit), nil
}

func (r *InMemoryTimelineRepository) getOrCreate(userID string) *model.Timeline {
	r.mu.RLock()
	timeline, ok := r.timelines[userID]
	r.mu.RUnlock()
	if ok {
		return timeline
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if timeline, ok = r.timelines[userID]; ok {
		return timeline
	}
	timeline = model.NewTimeline()
	r.timelines[userID] = timeline
	return timeline
}
