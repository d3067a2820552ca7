package service

import (
	"context"
	"fmt"

	"microblog-backend/internal/domains/timeline/model"
	"microblog-backend/internal/domains/timeline/repository"
)

type timelineService struct {
	timelineRepo repository.TimelineRepository
	maxLength    int
}

func NewTimelineService(
	timelineRepo repository.TimelineRepository,
	maxLength int,
) ServiceInterface {
	return &timelineService{
		timelineRepo: timelineRepo,
		maxLength:    maxLength,
	}
}

func (s *timelineService) GetTimeline(ctx context.Context, userID string) ([]model.TimelineItemResponse, error) {
	items, err := s.timelineRepo.GetTimeline(ctx, userID, s.maxLength)
	if err != nil {
		return nil, fmt.Errorf("failed to read timeline: %w", err)
	}

	responses := make([]model.TimelineItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, model.NewTimelineItemResponse(item))
	}
	return responses, nil
}
