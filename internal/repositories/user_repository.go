package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
)

var ErrUserNotFound = errors.New("user not found")

type UserRepository interface {
	Create(db *gorm.DB, user *models.User) error
	// CreateWithApplicantProfile writes the account and its profile in one
	// transaction; the profile's UserID is filled from the created user.
	CreateWithApplicantProfile(db *gorm.DB, user *models.User, profile *models.ApplicantProfile) error
	CreateWithRecruiterProfile(db *gorm.DB, user *models.User, profile *models.RecruiterProfile) error
	FindByID(db *gorm.DB, id string) (*models.User, error)
	FindByEmail(db *gorm.DB, email string) (*models.User, error)
	EmailExists(db *gorm.DB, email string) (bool, error)
}

type UserRepositoryImpl struct{}

func NewUserRepository() UserRepository {
	return &UserRepositoryImpl{}
}

func (r *UserRepositoryImpl) Create(db *gorm.DB, user *models.User) error {
	return db.Create(user).Error
}

func (r *UserRepositoryImpl) CreateWithApplicantProfile(db *gorm.DB, user *models.User, profile *models.ApplicantProfile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *UserRepositoryImpl) CreateWithRecruiterProfile(db *gorm.DB, user *models.User, profile *models.RecruiterProfile) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
}

func (r *UserRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(db *gorm.DB, email string) (*models.User, error) {
	var user models.User
	err := db.First(&user, "email = ?", email).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) EmailExists(db *gorm.DB, email string) (bool, error) {
	var count int64
	err := db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}
