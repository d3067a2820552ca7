package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"microblog-backend/internal/domains/follow/model"
	"microblog-backend/internal/domains/follow/service"
	"microblog-backend/internal/shared/middleware"
	"microblog-backend/internal/shared/response"
)

type FollowHandler struct {
	followService service.ServiceInterface
}

func NewFollowHandler(followService service.ServiceInterface) *FollowHandler {
	return &FollowHandler{
		followService: followService,
	}
}

// FollowUser makes the calling user follow another user
// POST /api/v1/follow
func (h *FollowHandler) FollowUser(c *gin.Context) {
	// Step 1: Identify the caller (the follower)
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.FollowRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service
	follow, err := h.followService.FollowUser(c.Request.Context(), userID, req)
	if err != nil {
		statusCode, errCode := mapFollowError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, follow)
}

func mapFollowError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrEmptyFollowerID):
		return http.StatusBadRequest, model.ErrCodeEmptyFollowerID
	case errors.Is(err, model.ErrEmptyFollowedID):
		return http.StatusBadRequest, model.ErrCodeEmptyFollowedID
	default:
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			return http.StatusBadRequest, "VALIDATION_ERROR"
		}
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
