package services

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type JobService interface {
	Create(db *gorm.DB, recruiterID string, req *dto.CreateJobRequest) (*models.Job, error)
	Get(db *gorm.DB, id string) (*models.Job, error)
	// Search applies the catalog filters; myjobs restricts to the caller's
	// own postings and requires the recruiter role.
	Search(db *gorm.DB, callerID string, role models.UserRole, criteria dto.JobSearchCriteria) ([]models.Job, error)
	Update(db *gorm.DB, recruiterID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	// Delete removes the posting and marks its live applications deleted.
	Delete(db *gorm.DB, recruiterID, jobID string) error
}

type jobService struct {
	jobRepo  repositories.JobRepository
	validate *validator.Validator
}

func NewJobService(jobRepo repositories.JobRepository, validate *validator.Validator) JobService {
	return &jobService{
		jobRepo:  jobRepo,
		validate: validate,
	}
}

func (s *jobService) Create(db *gorm.DB, recruiterID string, req *dto.CreateJobRequest) (*models.Job, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}
	if req.MaxPositions > req.MaxApplicants {
		return nil, apperrors.NewBadRequestError("maxPositions cannot exceed maxApplicants")
	}

	skillSets, err := json.Marshal(req.SkillSets)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	job := &models.Job{
		RecruiterID:   recruiterID,
		Title:         req.Title,
		MaxApplicants: req.MaxApplicants,
		MaxPositions:  req.MaxPositions,
		DateOfPosting: time.Now(),
		Deadline:      req.Deadline,
		SkillSets:     skillSets,
		JobType:       req.JobType,
		Duration:      req.Duration,
		Salary:        req.Salary,
		Rating:        -1,
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) Get(db *gorm.DB, id string) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, id)
	if err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *jobService) Search(db *gorm.DB, callerID string, role models.UserRole, criteria dto.JobSearchCriteria) ([]models.Job, error) {
	filter := repositories.JobFilter{
		TitleQuery: criteria.Query,
		JobTypes:   criteria.JobTypes,
		SalaryMin:  criteria.SalaryMin,
		SalaryMax:  criteria.SalaryMax,
		DurationLT: criteria.Duration,
		SortAsc:    criteria.SortAsc,
		SortDesc:   criteria.SortDesc,
	}

	if criteria.MyJobs {
		if role != models.UserRoleRecruiter {
			return nil, apperrors.ErrInsufficientPermissions
		}
		filter.RecruiterID = callerID
	}

	jobs, err := s.jobRepo.List(db, filter)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return jobs, nil
}

func (s *jobService) Update(db *gorm.DB, recruiterID, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	if err := s.validate.Validate(req); err != nil {
		return nil, apperrors.ValidationError(err.Error())
	}

	job, err := s.Get(db, jobID)
	if err != nil {
		return nil, err
	}
	if job.RecruiterID != recruiterID {
		return nil, apperrors.ErrInsufficientPermissions
	}

	fields := map[string]interface{}{}
	if req.MaxApplicants != nil {
		fields["max_applicants"] = *req.MaxApplicants
	}
	if req.MaxPositions != nil {
		fields["max_positions"] = *req.MaxPositions
	}
	if req.Deadline != nil {
		fields["deadline"] = *req.Deadline
	}

	if len(fields) > 0 {
		if err := s.jobRepo.UpdateFields(db, jobID, fields); err != nil {
			return nil, apperrors.InternalError(err)
		}
	}

	return s.Get(db, jobID)
}

func (s *jobService) Delete(db *gorm.DB, recruiterID, jobID string) error {
	job, err := s.Get(db, jobID)
	if err != nil {
		return err
	}
	if job.RecruiterID != recruiterID {
		return apperrors.ErrInsufficientPermissions
	}

	if err := s.jobRepo.DeleteWithApplications(db, jobID); err != nil {
		if errors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}
