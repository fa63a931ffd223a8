package models

type User struct {
	BaseModel
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);not null" json:"role"`

	// Relations
	ApplicantProfile *ApplicantProfile `gorm:"foreignKey:UserID" json:"applicantProfile,omitempty"`
	RecruiterProfile *RecruiterProfile `gorm:"foreignKey:UserID" json:"recruiterProfile,omitempty"`
}
