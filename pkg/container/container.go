package container

import (
	"context"
	"fmt"
	"log"
	"time"

	"microblog-backend/internal/config"
	"microblog-backend/internal/infrastructure/eventbus"
	"microblog-backend/internal/shared/events"
	"microblog-backend/pkg/workerpool"

	followHandler "microblog-backend/internal/domains/follow/handler"
	followRepo "microblog-backend/internal/domains/follow/repository"
	followService "microblog-backend/internal/domains/follow/service"
	timelineHandler "microblog-backend/internal/domains/timeline/handler"
	timelineJob "microblog-backend/internal/domains/timeline/job"
	timelineRepo "microblog-backend/internal/domains/timeline/repository"
	timelineService "microblog-backend/internal/domains/timeline/service"
	tweetHandler "microblog-backend/internal/domains/tweet/handler"
	tweetRepo "microblog-backend/internal/domains/tweet/repository"
	tweetService "microblog-backend/internal/domains/tweet/service"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container chứa TẤT CẢ dependencies của application
// Struct này là "root" của dependency graph
type Container struct {
	Config *config.Config

	// Infrastructure - shared across all domains
	Pool      *workerpool.Pool
	Publisher *eventbus.InMemoryPublisher

	// Repository layer (data access)
	TweetRepo    tweetRepo.TweetRepository
	FollowRepo   followRepo.FollowRepository
	TimelineRepo timelineRepo.TimelineRepository

	// Service layer (business logic)
	TweetService    tweetService.ServiceInterface
	FollowService   followService.ServiceInterface
	TimelineService timelineService.ServiceInterface

	// Handler layer (HTTP)
	TweetHandler    *tweetHandler.TweetHandler
	FollowHandler   *followHandler.FollowHandler
	TimelineHandler *timelineHandler.TimelineHandler
}

// NewContainer tạo và initialize toàn bộ dependency graph
//
// Thứ tự initialization:
// 1. Config (không phụ thuộc gì)
// 2. Infrastructure (worker pool, event publisher)
// 3. Repositories (in-memory stores)
// 4. Event handlers (fan-out, backfill) - registered on the publisher
// 5. Services
// 6. HTTP handlers
func NewContainer() (*Container, error) {
	log.Println("🔧 Initializing DI Container...")

	c := &Container{}

	// ========================================
	// STEP 1: LOAD CONFIGURATION
	// ========================================
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	log.Printf("✅ Config loaded (Environment: %s)", cfg.App.Environment)

	// ========================================
	// STEP 2: INITIALIZE EVENT INFRASTRUCTURE
	// ========================================
	c.Pool = workerpool.New(workerpool.Config{
		CoreWorkers:   cfg.EventBus.CoreSize,
		MaxWorkers:    cfg.EventBus.MaxSize,
		QueueCapacity: cfg.EventBus.QueueCapacity,
		IdleTimeout:   time.Duration(cfg.EventBus.IdleTTL) * time.Second,
	})
	c.Publisher = eventbus.NewInMemoryPublisher(c.Pool)
	log.Printf("✅ Event bus ready (workers: %d-%d, queue: %d)",
		cfg.EventBus.CoreSize, cfg.EventBus.MaxSize, cfg.EventBus.QueueCapacity)

	// ========================================
	// STEP 3: INITIALIZE REPOSITORIES
	// ========================================
	c.TweetRepo = tweetRepo.NewInMemoryTweetRepository()
	c.FollowRepo = followRepo.NewInMemoryFollowRepository()
	c.TimelineRepo = timelineRepo.NewInMemoryTimelineRepository()
	log.Println("✅ Repositories initialized")

	// ========================================
	// STEP 4: REGISTER EVENT HANDLERS
	// ========================================
	c.Publisher.AddListener(events.KindTweetCreated,
		timelineJob.NewFanoutHandler(c.FollowRepo, c.TimelineRepo))
	c.Publisher.AddListener(events.KindUserFollowed,
		timelineJob.NewBackfillHandler(c.TweetRepo, c.TimelineRepo,
			cfg.Timeline.BackfillMaxTweets))
	log.Println("✅ Event handlers registered")

	// ========================================
	// STEP 5: INITIALIZE SERVICES
	// ========================================
	c.TweetService = tweetService.NewTweetService(c.TweetRepo, c.Publisher)
	c.FollowService = followService.NewFollowService(c.FollowRepo, c.Publisher)
	c.TimelineService = timelineService.NewTimelineService(c.TimelineRepo,
		cfg.Timeline.MaxLength)
	log.Println("✅ Services initialized")

	// ========================================
	// STEP 6: INITIALIZE HANDLERS
	// ========================================
	c.TweetHandler = tweetHandler.NewTweetHandler(c.TweetService)
	c.FollowHandler = followHandler.NewFollowHandler(c.FollowService)
	c.TimelineHandler = timelineHandler.NewTimelineHandler(c.TimelineService)
	log.Println("✅ Handlers initialized")

	log.Println("🎉 DI Container initialized successfully")
	return c, nil
}

// Cleanup dọn dẹp resources khi shutdown
// Gọi trong graceful shutdown của server
func (c *Container) Cleanup() {
	log.Println("🧹 Cleaning up container resources...")

	if c.Publisher != nil {
		grace := time.Duration(c.Config.EventBus.ShutdownGrace) * time.Second
		ctx, cancel := context.WithTimeout(context.Background(), grace)
		defer cancel()

		if err := c.Publisher.Shutdown(ctx); err != nil {
			log.Printf("⚠️  Event bus drain incomplete, outstanding work abandoned: %v", err)
		} else {
			log.Println("✅ Event bus drained")
		}
	}

	log.Println("✅ Container cleanup completed")
}
