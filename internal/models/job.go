package models

import (
	"time"

	"gorm.io/datatypes"
)

type Job struct {
	BaseModel
	RecruiterID        string         `gorm:"not null;index" json:"recruiterId"`
	Title              string         `gorm:"not null" json:"title"`
	MaxApplicants      int            `gorm:"not null" json:"maxApplicants"`
	MaxPositions       int            `gorm:"not null" json:"maxPositions"`
	AcceptedCandidates int            `gorm:"default:0" json:"acceptedCandidates"`
	DateOfPosting      time.Time      `gorm:"default:now()" json:"dateOfPosting"`
	Deadline           time.Time      `json:"deadline"`
	SkillSets          datatypes.JSON `gorm:"type:jsonb" json:"skillsets"`
	JobType            string         `gorm:"index" json:"jobType"`
	Duration           int            `json:"duration"`
	Salary             float64        `json:"salary"`
	// Rating is the mean of received scores; -1 means not yet rated.
	Rating float64 `gorm:"default:-1" json:"rating"`
}
