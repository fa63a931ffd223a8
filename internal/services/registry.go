package services

import (
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/validator"
)

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService        AuthService
	ProfileService     ProfileService
	JobService         JobService
	ApplicationService ApplicationService
	RatingService      RatingService
}

func NewServiceContainer() *ServiceContainer {
	v := validator.New()

	userRepo := repositories.NewUserRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	appRepo := repositories.NewApplicationRepository()
	ratingRepo := repositories.NewRatingRepository()

	return &ServiceContainer{
		AuthService:        NewAuthService(userRepo, v),
		ProfileService:     NewProfileService(userRepo, profileRepo, v),
		JobService:         NewJobService(jobRepo, v),
		ApplicationService: NewApplicationService(appRepo, jobRepo, v),
		RatingService:      NewRatingService(ratingRepo, appRepo, jobRepo, profileRepo, v),
	}
}
