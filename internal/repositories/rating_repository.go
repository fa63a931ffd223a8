package repositories

import (
	"errors"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
)

var ErrRatingNotFound = errors.New("rating not found")

type RatingRepository interface {
	FindEdge(db *gorm.DB, senderID, receiverID string, category models.RatingCategory) (*models.Rating, error)
	// Save upserts: updates the existing edge's score or creates a new edge.
	Save(db *gorm.DB, rating *models.Rating) error
	ScoresForReceiver(db *gorm.DB, receiverID string, category models.RatingCategory) ([]float64, error)
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) FindEdge(db *gorm.DB, senderID, receiverID string, category models.RatingCategory) (*models.Rating, error) {
	var rating models.Rating
	err := db.Where("sender_id = ? AND receiver_id = ? AND category = ?",
		senderID, receiverID, category).
		First(&rating).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRatingNotFound
		}
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) Save(db *gorm.DB, rating *models.Rating) error {
	existing, err := r.FindEdge(db, rating.SenderID, rating.ReceiverID, rating.Category)
	if err != nil {
		if errors.Is(err, ErrRatingNotFound) {
			return db.Create(rating).Error
		}
		return err
	}

	rating.ID = existing.ID
	return db.Model(&models.Rating{}).Where("id = ?", existing.ID).
		Update("score", rating.Score).Error
}

func (r *RatingRepositoryImpl) ScoresForReceiver(db *gorm.DB, receiverID string, category models.RatingCategory) ([]float64, error) {
	var scores []float64
	err := db.Model(&models.Rating{}).
		Where("receiver_id = ? AND category = ?", receiverID, category).
		Pluck("score", &scores).Error
	return scores, err
}
