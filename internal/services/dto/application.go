package dto

import (
	"time"

	"github.com/Lixetron/job-portal/internal/models"
)

type ApplyRequest struct {
	SOP string `json:"sop" validate:"max=250"`
}

type UpdateApplicationStatusRequest struct {
	Status        models.ApplicationStatus `json:"status" validate:"required"`
	DateOfJoining *time.Time               `json:"dateOfJoining,omitempty"`
}

// ApplicationListCriteria binds the listing query parameters. asc/desc take
// repeated keys; unspecified keeps insertion order.
type ApplicationListCriteria struct {
	JobID    string                     `form:"jobId"`
	Statuses []models.ApplicationStatus `form:"status"`
	SortAsc  []string                   `form:"asc"`
	SortDesc []string                   `form:"desc"`
}
