package models

import "gorm.io/datatypes"

type ApplicantProfile struct {
	BaseModel
	UserID    string         `gorm:"uniqueIndex;not null" json:"userId"`
	Name      string         `gorm:"not null" json:"name"`
	Education datatypes.JSON `gorm:"type:jsonb" json:"education"`
	Skills    datatypes.JSON `gorm:"type:jsonb" json:"skills"`
	ResumeURL string         `json:"resume"`
	PhotoURL  string         `json:"profile"`
	// Rating is the mean of received scores; -1 means not yet rated.
	Rating float64 `gorm:"default:-1" json:"rating"`
}

type RecruiterProfile struct {
	BaseModel
	UserID        string `gorm:"uniqueIndex;not null" json:"userId"`
	Name          string `gorm:"not null" json:"name"`
	ContactNumber string `json:"contactNumber"`
	Bio           string `json:"bio"`
}
