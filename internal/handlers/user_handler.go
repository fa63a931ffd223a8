package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lixetron/job-portal/internal/middleware"
	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/services"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type UserHandler struct {
	*BaseHandler
	profileService services.ProfileService
}

func NewUserHandler(base *BaseHandler, profileService services.ProfileService) *UserHandler {
	return &UserHandler{
		BaseHandler:    base,
		profileService: profileService,
	}
}

func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup) {
	user := r.Group("/user")
	user.Use(middleware.AuthMiddleware())
	{
		user.GET("", h.GetOwnProfile)
		user.GET("/:id", h.GetProfileByID)
		user.PUT("", h.UpdateProfile)
	}
}

func (h *UserHandler) GetOwnProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	profile, err := h.profileService.GetOwn(h.GetDB(c), userID, h.GetUserRole(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

func (h *UserHandler) GetProfileByID(c *gin.Context) {
	profile, err := h.profileService.GetByUserID(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile dispatches on the caller's role: the body is interpreted as
// the role-specific partial update.
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	switch h.GetUserRole(c) {
	case models.UserRoleApplicant:
		var req dto.UpdateApplicantProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpdateApplicant(h.GetDB(c), userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	case models.UserRoleRecruiter:
		var req dto.UpdateRecruiterProfileRequest
		if !h.BindAndValidateJSON(c, &req) {
			return
		}
		profile, err := h.profileService.UpdateRecruiter(h.GetDB(c), userID, &req)
		if err != nil {
			h.HandleServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, profile)
	default:
		apperrors.HandleError(c, apperrors.ErrInsufficientPermissions)
	}
}
