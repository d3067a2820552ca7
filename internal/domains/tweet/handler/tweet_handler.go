package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"microblog-backend/internal/domains/tweet/model"
	"microblog-backend/internal/domains/tweet/service"
	"microblog-backend/internal/shared/middleware"
	"microblog-backend/internal/shared/response"
)

type TweetHandler struct {
	tweetService service.ServiceInterface
}

func NewTweetHandler(tweetService service.ServiceInterface) *TweetHandler {
	return &TweetHandler{
		tweetService: tweetService,
	}
}

// CreateTweet creates a new tweet for the calling user
// POST /api/v1/tweets
func (h *TweetHandler) CreateTweet(c *gin.Context) {
	// Step 1: Identify the caller
	userID, ok := middleware.UserID(c)
	if !ok {
		response.Unauthorized(c, "Unauthorized")
		return
	}

	// Step 2: Bind request body
	var req model.CreateTweetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	// Step 3: Call service (validates content)
	tweet, err := h.tweetService.CreateTweet(c.Request.Context(), userID, req)
	if err != nil {
		statusCode, errCode := mapTweetError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusCreated, tweet)
}

// ListTweets lists tweets, optionally filtered by author
// GET /api/v1/tweets?author_id=...
func (h *TweetHandler) ListTweets(c *gin.Context) {
	authorID := c.Query("author_id")

	var (
		tweets []model.TweetResponse
		err    error
	)
	if authorID != "" {
		tweets, err = h.tweetService.GetUserTweets(c.Request.Context(), authorID)
	} else {
		tweets, err = h.tweetService.GetAllTweets(c.Request.Context())
	}
	if err != nil {
		statusCode, errCode := mapTweetError(err)
		response.ErrorResponse(c, statusCode, errCode, err.Error())
		return
	}

	response.Success(c, http.StatusOK, tweets)
}

// mapTweetError translates domain errors into HTTP status + error code.
func mapTweetError(err error) (int, string) {
	switch {
	case errors.Is(err, model.ErrTweetNotFound):
		return http.StatusNotFound, model.ErrCodeTweetNotFound
	case errors.Is(err, model.ErrEmptyContent):
		return http.StatusBadRequest, model.ErrCodeEmptyContent
	case errors.Is(err, model.ErrContentTooLong):
		return http.StatusBadRequest, model.ErrCodeContentTooLong
	case errors.Is(err, model.ErrEmptyAuthorID):
		return http.StatusBadRequest, model.ErrCodeEmptyAuthorID
	default:
		// ozzo validation errors land here as plain 400s
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			return http.StatusBadRequest, "VALIDATION_ERROR"
		}
		return http.StatusInternalServerError, "INTERNAL_ERROR"
	}
}
