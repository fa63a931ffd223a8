package dto

import (
	"github.com/Lixetron/job-portal/internal/models"
)

type RegisterRequest struct {
	Email    string          `json:"email" validate:"required,email"`
	Password string          `json:"password" validate:"required,min=8"`
	Role     models.UserRole `json:"type" validate:"required,oneof=applicant recruiter"`
	Name     string          `json:"name" validate:"required"`

	// Applicant fields
	Education []EducationEntry `json:"education,omitempty"`
	Skills    []string         `json:"skills,omitempty"`

	// Recruiter fields
	ContactNumber string `json:"contactNumber,omitempty"`
	Bio           string `json:"bio,omitempty"`
}

type EducationEntry struct {
	InstitutionName string `json:"institutionName" validate:"required"`
	StartYear       int    `json:"startYear,omitempty"`
	EndYear         int    `json:"endYear,omitempty"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse is returned by both signup and login.
type AuthResponse struct {
	Token string          `json:"token"`
	Type  models.UserRole `json:"type"`
}
