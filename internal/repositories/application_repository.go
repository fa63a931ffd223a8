package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Lixetron/job-portal/internal/models"
)

var (
	ErrApplicationNotFound = errors.New("application not found")
	ErrPositionsFilled     = errors.New("all positions are filled")
)

// applicationSortColumns whitelists the listing sort keys.
var applicationSortColumns = map[string]string{
	"dateOfApplication": "date_of_application",
	"dateOfJoining":     "date_of_joining",
	"status":            "status",
	"jobId":             "job_id",
}

// ApplicationFilter narrows listing queries.
type ApplicationFilter struct {
	ApplicantID string
	RecruiterID string
	JobID       string
	Statuses    []models.ApplicationStatus
	SortAsc     []string // multi-key; empty keeps insertion order
	SortDesc    []string
}

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	// FindByIDForRecruiter resolves the application only when it belongs to a
	// job owned by the given recruiter.
	FindByIDForRecruiter(db *gorm.DB, id, recruiterID string) (*models.Application, error)
	List(db *gorm.DB, filter ApplicationFilter) ([]models.Application, error)

	// Guard-chain counts.
	ExistsBlocking(db *gorm.DB, applicantID, jobID string) (bool, error)
	CountActiveForJob(db *gorm.DB, jobID string) (int64, error)
	CountActiveForApplicant(db *gorm.DB, applicantID string) (int64, error)
	CountByApplicantAndStatus(db *gorm.DB, applicantID string, status models.ApplicationStatus) (int64, error)

	// Rating eligibility.
	CountQualifyingForApplicant(db *gorm.DB, recruiterID, applicantID string) (int64, error)
	CountQualifyingForJob(db *gorm.DB, applicantID, jobID string) (int64, error)

	// Accept performs the whole acceptance sequence as one transaction:
	// capacity re-check under a job row lock, status write, cascade-cancel of
	// the applicant's other live applications, counter recount.
	Accept(db *gorm.DB, app *models.Application, joinDate time.Time) error

	UpdateStatusWhereActive(db *gorm.DB, id string, status models.ApplicationStatus) (int64, error)
	CancelOwn(db *gorm.DB, id, applicantID string) (int64, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").First(&app, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) FindByIDForRecruiter(db *gorm.DB, id, recruiterID string) (*models.Application, error) {
	var app models.Application
	err := db.Preload("Job").
		Where("id = ? AND recruiter_id = ?", id, recruiterID).
		First(&app).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) List(db *gorm.DB, filter ApplicationFilter) ([]models.Application, error) {
	query := db.Model(&models.Application{}).
		Preload("Job").Preload("Applicant").Preload("Recruiter")

	if filter.ApplicantID != "" {
		query = query.Where("applicant_id = ?", filter.ApplicantID)
	}
	if filter.RecruiterID != "" {
		query = query.Where("recruiter_id = ?", filter.RecruiterID)
	}
	if filter.JobID != "" {
		query = query.Where("job_id = ?", filter.JobID)
	}
	if len(filter.Statuses) > 0 {
		query = query.Where("status IN ?", filter.Statuses)
	}

	if order := buildOrder(applicationSortColumns, filter.SortAsc, filter.SortDesc); order != "" {
		query = query.Order(order)
	}

	var apps []models.Application
	err := query.Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepositoryImpl) ExistsBlocking(db *gorm.DB, applicantID, jobID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("applicant_id = ? AND job_id = ? AND status IN ?",
			applicantID, jobID, models.ReapplyBlockingStatuses).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) CountActiveForJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND status NOT IN ?", jobID, models.TerminalStatuses).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountActiveForApplicant(db *gorm.DB, applicantID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("applicant_id = ? AND status NOT IN ?", applicantID, models.TerminalStatuses).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountByApplicantAndStatus(db *gorm.DB, applicantID string, status models.ApplicationStatus) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("applicant_id = ? AND status = ?", applicantID, status).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountQualifyingForApplicant(db *gorm.DB, recruiterID, applicantID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("recruiter_id = ? AND applicant_id = ? AND status IN ?",
			recruiterID, applicantID,
			[]models.ApplicationStatus{models.StatusAccepted, models.StatusFinished}).
		Count(&count).Error
	return count, err
}

func (r *ApplicationRepositoryImpl) CountQualifyingForJob(db *gorm.DB, applicantID, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("applicant_id = ? AND job_id = ? AND status IN ?",
			applicantID, jobID,
			[]models.ApplicationStatus{models.StatusAccepted, models.StatusFinished}).
		Count(&count).Error
	return count, err
}

// cascadeExclusions: sibling applications already in one of these states are
// left untouched by the accept cascade.
var cascadeExclusions = []models.ApplicationStatus{
	models.StatusRejected,
	models.StatusDeleted,
	models.StatusCancelled,
	models.StatusAccepted,
	models.StatusFinished,
}

func (r *ApplicationRepositoryImpl) Accept(db *gorm.DB, app *models.Application, joinDate time.Time) error {
	return db.Transaction(func(tx *gorm.DB) error {
		// Lock the job row so concurrent accepts for the same job serialize
		// on the capacity check.
		var job models.Job
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&job, "id = ?", app.JobID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrJobNotFound
			}
			return err
		}

		var accepted int64
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND status = ?", app.JobID, models.StatusAccepted).
			Count(&accepted).Error; err != nil {
			return err
		}
		if accepted >= int64(job.MaxPositions) {
			return ErrPositionsFilled
		}

		if err := tx.Model(&models.Application{}).
			Where("id = ?", app.ID).
			Updates(map[string]interface{}{
				"status":          models.StatusAccepted,
				"date_of_joining": joinDate,
			}).Error; err != nil {
			return err
		}

		// Cascade-cancel the applicant's other live applications.
		if err := tx.Model(&models.Application{}).
			Where("id <> ? AND applicant_id = ? AND status NOT IN ?",
				app.ID, app.ApplicantID, cascadeExclusions).
			Update("status", models.StatusCancelled).Error; err != nil {
			return err
		}

		// Counter is refreshed by recount, never incremented, so a retried
		// accept converges instead of drifting.
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND status = ?", app.JobID, models.StatusAccepted).
			Count(&accepted).Error; err != nil {
			return err
		}
		return tx.Model(&models.Job{}).
			Where("id = ?", app.JobID).
			Update("accepted_candidates", accepted).Error
	})
}

func (r *ApplicationRepositoryImpl) UpdateStatusWhereActive(db *gorm.DB, id string, status models.ApplicationStatus) (int64, error) {
	result := db.Model(&models.Application{}).
		Where("id = ? AND status NOT IN ?", id,
			[]models.ApplicationStatus{models.StatusRejected, models.StatusDeleted, models.StatusCancelled}).
		Update("status", status)
	return result.RowsAffected, result.Error
}

func (r *ApplicationRepositoryImpl) CancelOwn(db *gorm.DB, id, applicantID string) (int64, error) {
	result := db.Model(&models.Application{}).
		Where("id = ? AND applicant_id = ?", id, applicantID).
		Update("status", models.StatusCancelled)
	return result.RowsAffected, result.Error
}
