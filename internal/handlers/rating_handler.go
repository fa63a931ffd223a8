package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lixetron/job-portal/internal/middleware"
	"github.com/Lixetron/job-portal/internal/services"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type RatingHandler struct {
	*BaseHandler
	ratingService services.RatingService
}

func NewRatingHandler(base *BaseHandler, ratingService services.RatingService) *RatingHandler {
	return &RatingHandler{
		BaseHandler:   base,
		ratingService: ratingService,
	}
}

func (h *RatingHandler) RegisterRoutes(r *gin.RouterGroup) {
	rating := r.Group("/rating")
	rating.Use(middleware.AuthMiddleware())
	{
		rating.PUT("", h.Submit)
		rating.GET("/personal/:id", h.Personal)
	}
}

func (h *RatingHandler) Submit(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.SubmitRatingRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.ratingService.Submit(h.GetDB(c), userID, h.GetUserRole(c), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Rating submitted successfully"})
}

// Personal returns the caller's own score for the receiver in :id, or the
// not-rated sentinel.
func (h *RatingHandler) Personal(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	receiverID := c.Param("id")
	if receiverID == "" {
		apperrors.HandleError(c, apperrors.NewBadRequestError("Receiver id is required"))
		return
	}

	score, err := h.ratingService.PersonalRating(h.GetDB(c), userID, h.GetUserRole(c), receiverID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.PersonalRatingResponse{Rating: score})
}
