package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileRepository interface {
	FindApplicantByUserID(db *gorm.DB, userID string) (*models.ApplicantProfile, error)
	FindRecruiterByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error)
	UpdateApplicant(db *gorm.DB, userID string, fields map[string]interface{}) error
	UpdateRecruiter(db *gorm.DB, userID string, fields map[string]interface{}) error
	SetApplicantRating(db *gorm.DB, userID string, rating float64) error
}

type ProfileRepositoryImpl struct{}

func NewProfileRepository() ProfileRepository {
	return &ProfileRepositoryImpl{}
}

func (r *ProfileRepositoryImpl) FindApplicantByUserID(db *gorm.DB, userID string) (*models.ApplicantProfile, error) {
	var profile models.ApplicantProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) FindRecruiterByUserID(db *gorm.DB, userID string) (*models.RecruiterProfile, error) {
	var profile models.RecruiterProfile
	err := db.First(&profile, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *ProfileRepositoryImpl) UpdateApplicant(db *gorm.DB, userID string, fields map[string]interface{}) error {
	result := db.Model(&models.ApplicantProfile{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) UpdateRecruiter(db *gorm.DB, userID string, fields map[string]interface{}) error {
	result := db.Model(&models.RecruiterProfile{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *ProfileRepositoryImpl) SetApplicantRating(db *gorm.DB, userID string, rating float64) error {
	return db.Model(&models.ApplicantProfile{}).Where("user_id = ?", userID).
		Update("rating", rating).Error
}
