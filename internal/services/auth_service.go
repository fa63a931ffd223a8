package services

import (
	"encoding/json"
	"errors"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/auth"
	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type AuthService interface {
	// Register creates the account plus its role-specific profile in one
	// transaction and returns a token (auto-login).
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

type authService struct {
	userRepo repositories.UserRepository
	validate *validator.Validator
}

func NewAuthService(
	userRepo repositories.UserRepository,
	validate *validator.Validator,
) AuthService {
	return &authService{
		userRepo: userRepo,
		validate: validate,
	}
}

func (s *authService) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	exists, err := s.userRepo.EmailExists(db, req.Email)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if exists {
		return nil, apperrors.ErrEmailAlreadyExists
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:        req.Email,
		PasswordHash: hash,
		Role:         req.Role,
	}

	switch req.Role {
	case models.UserRoleApplicant:
		education, err := json.Marshal(req.Education)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		skills, err := json.Marshal(req.Skills)
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
		err = s.userRepo.CreateWithApplicantProfile(db, user, &models.ApplicantProfile{
			Name:      req.Name,
			Education: education,
			Skills:    skills,
			Rating:    -1,
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	case models.UserRoleRecruiter:
		err = s.userRepo.CreateWithRecruiterProfile(db, user, &models.RecruiterProfile{
			Name:          req.Name,
			ContactNumber: req.ContactNumber,
			Bio:           req.Bio,
		})
		if err != nil {
			return nil, apperrors.InternalError(err)
		}
	default:
		return nil, apperrors.NewBadRequestError("Unknown account type")
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, Type: user.Role}, nil
}

func (s *authService) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{Token: token, Type: user.Role}, nil
}
