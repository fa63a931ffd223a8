package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type ProfileService interface {
	// GetOwn returns the caller's role-shaped profile.
	GetOwn(db *gorm.DB, userID string, role models.UserRole) (interface{}, error)
	// GetByUserID resolves the target's role first, then returns the profile.
	GetByUserID(db *gorm.DB, userID string) (interface{}, error)
	UpdateApplicant(db *gorm.DB, userID string, req *dto.UpdateApplicantProfileRequest) (*models.ApplicantProfile, error)
	UpdateRecruiter(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error)
}

type profileService struct {
	userRepo    repositories.UserRepository
	profileRepo repositories.ProfileRepository
	validate    *validator.Validator
}

func NewProfileService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	validate *validator.Validator,
) ProfileService {
	return &profileService{
		userRepo:    userRepo,
		profileRepo: profileRepo,
		validate:    validate,
	}
}

func (s *profileService) GetOwn(db *gorm.DB, userID string, role models.UserRole) (interface{}, error) {
	switch role {
	case models.UserRoleApplicant:
		profile, err := s.profileRepo.FindApplicantByUserID(db, userID)
		if err != nil {
			return nil, mapProfileErr(err)
		}
		return profile, nil
	case models.UserRoleRecruiter:
		profile, err := s.profileRepo.FindRecruiterByUserID(db, userID)
		if err != nil {
			return nil, mapProfileErr(err)
		}
		return profile, nil
	}
	return nil, apperrors.ErrInsufficientPermissions
}

func (s *profileService) GetByUserID(db *gorm.DB, userID string) (interface{}, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return s.GetOwn(db, user.ID, user.Role)
}

func (s *profileService) UpdateApplicant(db *gorm.DB, userID string, req *dto.UpdateApplicantProfileRequest) (*models.ApplicantProfile, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Education != nil {
		education, err := json.Marshal(req.Education)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["education"] = education
	}
	if req.Skills != nil {
		skills, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		fields["skills"] = skills
	}
	if req.ResumeURL != nil {
		fields["resume_url"] = *req.ResumeURL
	}
	if req.PhotoURL != nil {
		fields["photo_url"] = *req.PhotoURL
	}

	if len(fields) > 0 {
		if err := s.profileRepo.UpdateApplicant(db, userID, fields); err != nil {
			return nil, mapProfileErr(err)
		}
	}

	profile, err := s.profileRepo.FindApplicantByUserID(db, userID)
	return profile, mapProfileErr(err)
}

func (s *profileService) UpdateRecruiter(db *gorm.DB, userID string, req *dto.UpdateRecruiterProfileRequest) (*models.RecruiterProfile, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.ContactNumber != nil {
		fields["contact_number"] = *req.ContactNumber
	}
	if req.Bio != nil {
		fields["bio"] = *req.Bio
	}

	if len(fields) > 0 {
		if err := s.profileRepo.UpdateRecruiter(db, userID, fields); err != nil {
			return nil, mapProfileErr(err)
		}
	}

	profile, err := s.profileRepo.FindRecruiterByUserID(db, userID)
	return profile, mapProfileErr(err)
}

func mapProfileErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, repositories.ErrProfileNotFound) {
		return apperrors.ErrNotFound(err)
	}
	return apperrors.InternalError(err)
}
