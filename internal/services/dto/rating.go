package dto

type SubmitRatingRequest struct {
	ReceiverID string  `json:"receiverId" validate:"required"`
	Score      float64 `json:"rating" validate:"min=0,max=5"`
}

// PersonalRatingResponse carries the sender's own score for a receiver;
// -1 means not rated yet.
type PersonalRatingResponse struct {
	Rating float64 `json:"rating"`
}
