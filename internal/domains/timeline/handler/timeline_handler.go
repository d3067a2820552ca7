package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"microblog-backend/internal/domains/timeline/service"
	"microblog-backend/internal/shared/middleware"
	"microblog-backend/internal/shared/response"
)

type TimelineHandler struct {
	timelineService service.ServiceInterface
}

func NewTimelineHandler(timelineService service.ServiceInterface) *TimelineHandler {
	return &TimelineHandler{
		timelineService: timelineService,
	}
}

// GetTimeline returns the calling user's feed, newest first
// GET /api/v1/timeline
func (h *TimelineHandler) GetTimeline(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	items, err := h.timelineService.GetTimeline(c.Request.Context(), userID)
	if err != nil {
		response.InternalServerError(c, err.Error())
		return
	}

	response.Success(c, http.StatusOK, items)
}
