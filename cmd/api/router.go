package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/shared/middleware"
	"microblog-backend/pkg/container"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Global middlewares
	router.Use(
		middleware.Recovery(),
		middleware.RequestID(),
		middleware.Logger(),
		middleware.CORS(),
	)

	v1 := router.Group("/api/v1")
	{
		// Health check (unauthenticated)
		v1.GET("/health", healthCheckHandler(c))

		setupTweetRoutes(v1, c)
		setupFollowRoutes(v1, c)
		setupTimelineRoutes(v1, c)
	}

	return router
}

// ========================================
// TWEET ROUTES
// ========================================
func setupTweetRoutes(v1 *gin.RouterGroup, c *container.Container) {
	tweets := v1.Group("/tweets")
	tweets.Use(middleware.RequireUser())
	{
		tweets.POST("", c.TweetHandler.CreateTweet)
		tweets.GET("", c.TweetHandler.ListTweets)
	}
}

// ========================================
// FOLLOW ROUTES
// ========================================
func setupFollowRoutes(v1 *gin.RouterGroup, c *container.Container) {
	follow := v1.Group("/follow")
	follow.Use(middleware.RequireUser())
	{
		follow.POST("", c.FollowHandler.FollowUser)
	}
}

// ========================================
// TIMELINE ROUTES
// ========================================
func setupTimelineRoutes(v1 *gin.RouterGroup, c *container.Container) {
	timeline := v1.Group("/timeline")
	timeline.Use(middleware.RequireUser())
	{
		timeline.GET("", c.TimelineHandler.GetTimeline)
	}
}

func healthCheckHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, gin.H{
			"status":      "ok",
			"name":        c.Config.App.Name,
			"version":     c.Config.App.Version,
			"environment": c.Config.App.Environment,
		})
	}
}
