package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/Lixetron/job-portal/internal/services"
	"github.com/Lixetron/job-portal/internal/storage"
	"github.com/Lixetron/job-portal/internal/validator"
)

// AppHandlers holds every handler the router registers.
type AppHandlers struct {
	AuthHandler        *AuthHandler
	UserHandler        *UserHandler
	JobHandler         *JobHandler
	ApplicationHandler *ApplicationHandler
	RatingHandler      *RatingHandler
	UploadHandler      *UploadHandler
	FileHandler        *FileHandler
}

func NewAppHandlers(sc *services.ServiceContainer, store storage.Storage, maxFileSize int64, authLimiter gin.HandlerFunc) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		AuthHandler:        NewAuthHandler(base, sc.AuthService, authLimiter),
		UserHandler:        NewUserHandler(base, sc.ProfileService),
		JobHandler:         NewJobHandler(base, sc.JobService),
		ApplicationHandler: NewApplicationHandler(base, sc.ApplicationService),
		RatingHandler:      NewRatingHandler(base, sc.RatingService),
		UploadHandler:      NewUploadHandler(base, store, maxFileSize),
		FileHandler:        NewFileHandler(base, store),
	}
}
