package models

import "time"

type Application struct {
	BaseModel
	ApplicantID       string            `gorm:"not null;index" json:"applicantId"`
	RecruiterID       string            `gorm:"not null;index" json:"recruiterId"`
	JobID             string            `gorm:"not null;index" json:"jobId"`
	Status            ApplicationStatus `gorm:"type:varchar(20);default:'applied'" json:"status"`
	SOP               string            `json:"sop"`
	DateOfApplication time.Time         `gorm:"default:now()" json:"dateOfApplication"`
	DateOfJoining     *time.Time        `json:"dateOfJoining,omitempty"`

	// Relations
	Job       *Job              `gorm:"foreignKey:JobID" json:"job,omitempty"`
	Applicant *ApplicantProfile `gorm:"foreignKey:ApplicantID;references:UserID" json:"applicant,omitempty"`
	Recruiter *RecruiterProfile `gorm:"foreignKey:RecruiterID;references:UserID" json:"recruiter,omitempty"`
}
