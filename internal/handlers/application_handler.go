package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lixetron/job-portal/internal/middleware"
	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/services"
	"github.com/Lixetron/job-portal/internal/services/dto"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(r *gin.RouterGroup) {
	jobs := r.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.POST("/:id/applications",
			middleware.RoleMiddleware(models.UserRoleApplicant), h.Apply)
		jobs.GET("/:id/applications",
			middleware.RoleMiddleware(models.UserRoleRecruiter), h.ListForJob)
	}

	apps := r.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.GET("", h.List)
		apps.PUT("/:id", h.UpdateStatus)
	}

	applicants := r.Group("/applicants")
	applicants.Use(middleware.AuthMiddleware(), middleware.RoleMiddleware(models.UserRoleRecruiter))
	{
		applicants.GET("", h.List)
	}
}

func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	app, err := h.applicationService.Apply(h.GetDB(c), userID, h.GetUserRole(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, app)
}

func (h *ApplicationHandler) List(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.ApplicationListCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	apps, err := h.applicationService.ListForCaller(h.GetDB(c), userID, h.GetUserRole(c), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) ListForJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var criteria dto.ApplicationListCriteria
	if !h.BindAndValidateQuery(c, &criteria) {
		return
	}

	apps, err := h.applicationService.ListForJob(h.GetDB(c), userID, c.Param("id"), criteria)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, apps)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.applicationService.UpdateStatus(h.GetDB(c), userID, h.GetUserRole(c), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Application status updated successfully"})
}
