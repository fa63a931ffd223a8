package repositories

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
)

var ErrJobNotFound = errors.New("job not found")

// jobSortColumns whitelists the columns a client may sort by.
var jobSortColumns = map[string]string{
	"salary":        "salary",
	"duration":      "duration",
	"rating":        "rating",
	"dateOfPosting": "date_of_posting",
}

// JobFilter captures the catalog search parameters.
type JobFilter struct {
	RecruiterID string   // non-empty restricts to one recruiter's postings
	TitleQuery  string   // case-insensitive substring
	JobTypes    []string // IN match when non-empty
	SalaryMin   *float64
	SalaryMax   *float64
	DurationLT  *int // strictly less than
	SortAsc     []string
	SortDesc    []string
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	List(db *gorm.DB, filter JobFilter) ([]models.Job, error)
	UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) error
	SetRating(db *gorm.DB, id string, rating float64) error
	// DeleteWithApplications removes the job and marks its non-terminal
	// applications deleted, in one transaction.
	DeleteWithApplications(db *gorm.DB, id string) error
}

type JobRepositoryImpl struct{}

func NewJobRepository() JobRepository {
	return &JobRepositoryImpl{}
}

func (r *JobRepositoryImpl) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *JobRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	err := db.First(&job, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *JobRepositoryImpl) List(db *gorm.DB, filter JobFilter) ([]models.Job, error) {
	query := db.Model(&models.Job{})

	if filter.RecruiterID != "" {
		query = query.Where("recruiter_id = ?", filter.RecruiterID)
	}
	if filter.TitleQuery != "" {
		query = query.Where("title ILIKE ?", "%"+filter.TitleQuery+"%")
	}
	if len(filter.JobTypes) > 0 {
		query = query.Where("job_type IN ?", filter.JobTypes)
	}
	if filter.SalaryMin != nil {
		query = query.Where("salary >= ?", *filter.SalaryMin)
	}
	if filter.SalaryMax != nil {
		query = query.Where("salary <= ?", *filter.SalaryMax)
	}
	if filter.DurationLT != nil {
		query = query.Where("duration < ?", *filter.DurationLT)
	}

	if order := buildOrder(jobSortColumns, filter.SortAsc, filter.SortDesc); order != "" {
		query = query.Order(order)
	}

	var jobs []models.Job
	err := query.Find(&jobs).Error
	return jobs, err
}

// buildOrder maps requested keys through a whitelist; unknown keys are
// silently dropped. Empty input means no ORDER BY at all.
func buildOrder(columns map[string]string, asc, desc []string) string {
	var parts []string
	for _, key := range asc {
		if col, ok := columns[key]; ok {
			parts = append(parts, col+" ASC")
		}
	}
	for _, key := range desc {
		if col, ok := columns[key]; ok {
			parts = append(parts, col+" DESC")
		}
	}
	return strings.Join(parts, ", ")
}

func (r *JobRepositoryImpl) UpdateFields(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.Job{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *JobRepositoryImpl) SetRating(db *gorm.DB, id string, rating float64) error {
	return db.Model(&models.Job{}).Where("id = ?", id).
		Update("rating", rating).Error
}

func (r *JobRepositoryImpl) DeleteWithApplications(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Application{}).
			Where("job_id = ? AND status NOT IN ?", id, models.TerminalStatuses).
			Update("status", models.StatusDeleted).Error; err != nil {
			return err
		}

		result := tx.Where("id = ?", id).Delete(&models.Job{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrJobNotFound
		}
		return nil
	})
}
