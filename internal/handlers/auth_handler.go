package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lixetron/job-portal/internal/services"
	"github.com/Lixetron/job-portal/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	limiter     gin.HandlerFunc // optional, nil disables
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, limiter gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		limiter:     limiter,
	}
}

func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup) {
	auth := r.Group("/auth")
	if h.limiter != nil {
		auth.Use(h.limiter)
	}
	{
		auth.POST("/signup", h.Signup)
		auth.POST("/login", h.Login)
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.RegisterRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Register(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}
