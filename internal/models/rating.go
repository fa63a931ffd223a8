package models

// Rating is one directed edge: at most one per (sender, receiver, category).
// Category "applicant" means a recruiter rating an applicant; "job" means an
// applicant rating a posting.
type Rating struct {
	BaseModel
	SenderID   string         `gorm:"not null;uniqueIndex:idx_rating_edge" json:"senderId"`
	ReceiverID string         `gorm:"not null;uniqueIndex:idx_rating_edge;index" json:"receiverId"`
	Category   RatingCategory `gorm:"type:varchar(20);not null;uniqueIndex:idx_rating_edge" json:"category"`
	Score      float64        `gorm:"not null" json:"rating"`
}
