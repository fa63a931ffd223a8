package models

type UserRole string
type ApplicationStatus string
type RatingCategory string

const (
	UserRoleApplicant UserRole = "applicant"
	UserRoleRecruiter UserRole = "recruiter"

	StatusApplied     ApplicationStatus = "applied"
	StatusShortlisted ApplicationStatus = "shortlisted"
	StatusAccepted    ApplicationStatus = "accepted"
	StatusRejected    ApplicationStatus = "rejected"
	StatusDeleted     ApplicationStatus = "deleted"
	StatusCancelled   ApplicationStatus = "cancelled"
	StatusFinished    ApplicationStatus = "finished"

	RatingCategoryApplicant RatingCategory = "applicant"
	RatingCategoryJob       RatingCategory = "job"
)

// MaxActiveApplicationsPerApplicant caps how many live applications a single
// applicant may hold across all jobs.
const MaxActiveApplicationsPerApplicant = 10

// TerminalStatuses are statuses from which no further transition is allowed.
// Applications are never physically removed; deleted/cancelled stand in for
// removal so history stays available for rating eligibility checks.
var TerminalStatuses = []ApplicationStatus{
	StatusRejected,
	StatusDeleted,
	StatusCancelled,
	StatusFinished,
}

// ReapplyBlockingStatuses drive the duplicate-apply check: any prior
// application for the same job in one of these states blocks a new one.
// A prior rejected or finished application does NOT block re-applying.
var ReapplyBlockingStatuses = []ApplicationStatus{
	StatusApplied,
	StatusShortlisted,
	StatusAccepted,
	StatusDeleted,
	StatusCancelled,
}

func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusApplied, StatusShortlisted, StatusAccepted,
		StatusRejected, StatusDeleted, StatusCancelled, StatusFinished:
		return true
	}
	return false
}

func (s ApplicationStatus) Terminal() bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// Active reports whether the application still counts against capacity caps.
func (s ApplicationStatus) Active() bool {
	return s.Valid() && !s.Terminal()
}

func (r UserRole) Valid() bool {
	return r == UserRoleApplicant || r == UserRoleRecruiter
}
