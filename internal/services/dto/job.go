package dto

import "time"

type CreateJobRequest struct {
	Title         string    `json:"title" validate:"required"`
	MaxApplicants int       `json:"maxApplicants" validate:"required,min=1"`
	MaxPositions  int       `json:"maxPositions" validate:"required,min=1"`
	Deadline      time.Time `json:"deadline" validate:"required"`
	SkillSets     []string  `json:"skillsets,omitempty"`
	JobType       string    `json:"jobType" validate:"required"`
	Duration      int       `json:"duration" validate:"min=0"`
	Salary        float64   `json:"salary" validate:"min=0"`
}

// UpdateJobRequest: only the capacity caps and the deadline are mutable.
type UpdateJobRequest struct {
	MaxApplicants *int       `json:"maxApplicants,omitempty" validate:"omitempty,min=1"`
	MaxPositions  *int       `json:"maxPositions,omitempty" validate:"omitempty,min=1"`
	Deadline      *time.Time `json:"deadline,omitempty"`
}

// JobSearchCriteria binds the catalog query parameters.
type JobSearchCriteria struct {
	MyJobs    bool     `form:"myjobs"`
	Query     string   `form:"q"`
	JobTypes  []string `form:"jobType"`
	SalaryMin *float64 `form:"salaryMin"`
	SalaryMax *float64 `form:"salaryMax"`
	Duration  *int     `form:"duration"`
	SortAsc   []string `form:"asc"`
	SortDesc  []string `form:"desc"`
}
