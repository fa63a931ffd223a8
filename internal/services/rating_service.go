package services

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

// NotRatedSentinel is the aggregate/personal value meaning "no ratings yet".
const NotRatedSentinel = -1

type RatingService interface {
	// Submit upserts the caller's rating edge and recomputes the receiver's
	// aggregate. The category follows from the caller's role: recruiters
	// rate applicants, applicants rate jobs.
	Submit(db *gorm.DB, senderID string, role models.UserRole, req *dto.SubmitRatingRequest) error
	// PersonalRating returns the caller's own previously submitted score for
	// the receiver, or the sentinel when none exists.
	PersonalRating(db *gorm.DB, senderID string, role models.UserRole, receiverID string) (float64, error)
}

type ratingService struct {
	ratingRepo  repositories.RatingRepository
	appRepo     repositories.ApplicationRepository
	jobRepo     repositories.JobRepository
	profileRepo repositories.ProfileRepository
	validate    *validator.Validator
}

func NewRatingService(
	ratingRepo repositories.RatingRepository,
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	validate *validator.Validator,
) RatingService {
	return &ratingService{
		ratingRepo:  ratingRepo,
		appRepo:     appRepo,
		jobRepo:     jobRepo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

// Mean is the aggregate arithmetic, kept separate from persistence.
// An empty score list yields the not-rated sentinel.
func Mean(scores []float64) float64 {
	if len(scores) == 0 {
		return NotRatedSentinel
	}
	var sum float64
	for _, s := range scores {
		sum += s
	}
	return sum / float64(len(scores))
}

func categoryForRole(role models.UserRole) (models.RatingCategory, bool) {
	switch role {
	case models.UserRoleRecruiter:
		return models.RatingCategoryApplicant, true
	case models.UserRoleApplicant:
		return models.RatingCategoryJob, true
	}
	return "", false
}

func (s *ratingService) Submit(db *gorm.DB, senderID string, role models.UserRole, req *dto.SubmitRatingRequest) error {
	if err := s.validate.Validate(req); err != nil {
		return apperrors.ValidationError(err.Error())
	}

	category, ok := categoryForRole(role)
	if !ok {
		return apperrors.ErrInsufficientPermissions
	}

	// Eligibility: at least one accepted/finished application must link the
	// two parties.
	var qualifying int64
	var err error
	switch category {
	case models.RatingCategoryApplicant:
		qualifying, err = s.appRepo.CountQualifyingForApplicant(db, senderID, req.ReceiverID)
	case models.RatingCategoryJob:
		qualifying, err = s.appRepo.CountQualifyingForJob(db, senderID, req.ReceiverID)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	if qualifying == 0 {
		return apperrors.ErrRatingNotAllowed
	}

	if err := s.ratingRepo.Save(db, &models.Rating{
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Category:   category,
		Score:      req.Score,
	}); err != nil {
		return apperrors.InternalError(err)
	}

	// The aggregate is recomputed from stored scores, so a crash between the
	// edge write and this write is healed by the next submit.
	scores, err := s.ratingRepo.ScoresForReceiver(db, req.ReceiverID, category)
	if err != nil {
		return apperrors.InternalError(err)
	}
	mean := Mean(scores)

	switch category {
	case models.RatingCategoryApplicant:
		err = s.profileRepo.SetApplicantRating(db, req.ReceiverID, mean)
	case models.RatingCategoryJob:
		err = s.jobRepo.SetRating(db, req.ReceiverID, mean)
	}
	if err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ratingService) PersonalRating(db *gorm.DB, senderID string, role models.UserRole, receiverID string) (float64, error) {
	category, ok := categoryForRole(role)
	if !ok {
		return NotRatedSentinel, apperrors.ErrInsufficientPermissions
	}

	rating, err := s.ratingRepo.FindEdge(db, senderID, receiverID, category)
	if err != nil {
		if errors.Is(err, repositories.ErrRatingNotFound) {
			return NotRatedSentinel, nil
		}
		return NotRatedSentinel, apperrors.InternalError(err)
	}
	return rating.Score, nil
}
