package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type ApplicationService interface {
	// Apply runs the guard chain in order and creates the application on the
	// first clean pass.
	Apply(db *gorm.DB, applicantID string, role models.UserRole, jobID string, req *dto.ApplyRequest) (*models.Application, error)
	// UpdateStatus drives every status transition, including the atomic
	// accept sequence.
	UpdateStatus(db *gorm.DB, callerID string, role models.UserRole, appID string, req *dto.UpdateApplicationStatusRequest) error
	// ListForCaller: applicants see their own applications, recruiters see
	// applications to their jobs.
	ListForCaller(db *gorm.DB, callerID string, role models.UserRole, criteria dto.ApplicationListCriteria) ([]models.Application, error)
	// ListForJob is recruiter-only and scoped to jobs the caller owns.
	ListForJob(db *gorm.DB, recruiterID, jobID string, criteria dto.ApplicationListCriteria) ([]models.Application, error)
}

type applicationService struct {
	appRepo  repositories.ApplicationRepository
	jobRepo  repositories.JobRepository
	validate *validator.Validator
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	validate *validator.Validator,
) ApplicationService {
	return &applicationService{
		appRepo:  appRepo,
		jobRepo:  jobRepo,
		validate: validate,
	}
}

func (s *applicationService) Apply(db *gorm.DB, applicantID string, role models.UserRole, jobID string, req *dto.ApplyRequest) (*models.Application, error) {
	if role != models.UserRoleApplicant {
		return nil, apperrors.ErrInsufficientPermissions
	}
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	blocked, err := s.appRepo.ExistsBlocking(db, applicantID, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if blocked {
		return nil, apperrors.ErrAlreadyApplied
	}

	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}

	activeForJob, err := s.appRepo.CountActiveForJob(db, jobID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if activeForJob >= int64(job.MaxApplicants) {
		return nil, apperrors.ErrApplicantCapReached
	}

	ownActive, err := s.appRepo.CountActiveForApplicant(db, applicantID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if ownActive >= models.MaxActiveApplicationsPerApplicant {
		return nil, apperrors.ErrActiveApplicationCap
	}

	acceptedCount, err := s.appRepo.CountByApplicantAndStatus(db, applicantID, models.StatusAccepted)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if acceptedCount > 0 {
		return nil, apperrors.ErrOfferAlreadyHeld
	}

	app := &models.Application{
		ApplicantID:       applicantID,
		RecruiterID:       job.RecruiterID,
		JobID:             jobID,
		Status:            models.StatusApplied,
		SOP:               req.SOP,
		DateOfApplication: time.Now(),
	}
	if err := s.appRepo.Create(db, app); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return app, nil
}

// transitionKind classifies how a requested status change is executed.
type transitionKind int

const (
	transitionDenied transitionKind = iota
	transitionAccept
	transitionOverwrite
	transitionCancelOwn
)

// decideTransition is the role × current × target legality table. The accept
// path defers its capacity check to the transactional write; the overwrite
// path additionally requires a non-terminal current status, enforced by the
// conditional update itself.
func decideTransition(role models.UserRole, target models.ApplicationStatus) transitionKind {
	if !target.Valid() {
		return transitionDenied
	}
	switch role {
	case models.UserRoleRecruiter:
		if target == models.StatusAccepted {
			return transitionAccept
		}
		return transitionOverwrite
	case models.UserRoleApplicant:
		if target == models.StatusCancelled {
			return transitionCancelOwn
		}
	}
	return transitionDenied
}

func (s *applicationService) UpdateStatus(db *gorm.DB, callerID string, role models.UserRole, appID string, req *dto.UpdateApplicationStatusRequest) error {
	if err := s.validate.Validate(req); err != nil {
		return apperrors.ValidationError(err.Error())
	}

	switch decideTransition(role, req.Status) {
	case transitionAccept:
		return s.accept(db, callerID, appID, req.DateOfJoining)
	case transitionOverwrite:
		return s.overwrite(db, callerID, appID, req.Status)
	case transitionCancelOwn:
		return s.cancelOwn(db, callerID, appID)
	}
	return apperrors.ErrInvalidApplicationStatus
}

func (s *applicationService) accept(db *gorm.DB, recruiterID, appID string, joinDate *time.Time) error {
	app, err := s.appRepo.FindByIDForRecruiter(db, appID, recruiterID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	when := time.Now()
	if joinDate != nil {
		when = *joinDate
	}

	err = s.appRepo.Accept(db, app, when)
	if err != nil {
		switch {
		case errors.Is(err, repositories.ErrPositionsFilled):
			return apperrors.ErrPositionsFilled
		case errors.Is(err, repositories.ErrJobNotFound):
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *applicationService) overwrite(db *gorm.DB, recruiterID, appID string, target models.ApplicationStatus) error {
	app, err := s.appRepo.FindByIDForRecruiter(db, appID, recruiterID)
	if err != nil {
		if errors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}

	rows, err := s.appRepo.UpdateStatusWhereActive(db, app.ID, target)
	if err != nil {
		return apperrors.InternalError(err)
	}
	// Zero rows means the application slid into a terminal state between the
	// lookup and the write, or was terminal to begin with.
	if rows == 0 {
		return apperrors.ErrInvalidApplicationStatus
	}
	return nil
}

func (s *applicationService) cancelOwn(db *gorm.DB, applicantID, appID string) error {
	rows, err := s.appRepo.CancelOwn(db, appID, applicantID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if rows == 0 {
		return apperrors.ErrNotFound(repositories.ErrApplicationNotFound)
	}
	return nil
}

func (s *applicationService) ListForCaller(db *gorm.DB, callerID string, role models.UserRole, criteria dto.ApplicationListCriteria) ([]models.Application, error) {
	filter := repositories.ApplicationFilter{
		JobID:    criteria.JobID,
		Statuses: criteria.Statuses,
		SortAsc:  criteria.SortAsc,
		SortDesc: criteria.SortDesc,
	}

	switch role {
	case models.UserRoleApplicant:
		filter.ApplicantID = callerID
	case models.UserRoleRecruiter:
		filter.RecruiterID = callerID
	default:
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.appRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}

func (s *applicationService) ListForJob(db *gorm.DB, recruiterID, jobID string, criteria dto.ApplicationListCriteria) ([]models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	if job.RecruiterID != recruiterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	apps, err := s.appRepo.List(db, repositories.ApplicationFilter{
		JobID:    jobID,
		Statuses: criteria.Statuses,
		SortAsc:  criteria.SortAsc,
		SortDesc: criteria.SortDesc,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return apps, nil
}
