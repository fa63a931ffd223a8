package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type jobFixture struct {
	store   *memStore
	jobs    *fakeJobRepo
	apps    *fakeAppRepo
	service JobService
}

func newJobFixture() *jobFixture {
	store := newMemStore()
	jobs := &fakeJobRepo{s: store}
	apps := &fakeAppRepo{s: store}
	return &jobFixture{
		store:   store,
		jobs:    jobs,
		apps:    apps,
		service: NewJobService(jobs, validator.New()),
	}
}

func validCreateRequest() *dto.CreateJobRequest {
	return &dto.CreateJobRequest{
		Title:         "Platform Engineer",
		MaxApplicants: 10,
		MaxPositions:  3,
		Deadline:      time.Now().Add(30 * 24 * time.Hour),
		SkillSets:     []string{"go", "postgres"},
		JobType:       "full-time",
		Duration:      6,
		Salary:        120000,
	}
}

func TestCreateJob(t *testing.T) {
	f := newJobFixture()

	job, err := f.service.Create(nil, "rec-1", validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "rec-1", job.RecruiterID)
	assert.Equal(t, 10, job.MaxApplicants)
	assert.Equal(t, 3, job.MaxPositions)
	assert.Equal(t, float64(-1), job.Rating)
	assert.False(t, job.DateOfPosting.IsZero())
}

func TestCreateJobPositionsExceedApplicants(t *testing.T) {
	f := newJobFixture()

	req := validCreateRequest()
	req.MaxApplicants = 2
	req.MaxPositions = 5

	_, err := f.service.Create(nil, "rec-1", req)
	assertAppErrCode(t, err, apperrors.CodeValidationFailed)
}

func TestCreateJobMissingFields(t *testing.T) {
	f := newJobFixture()

	_, err := f.service.Create(nil, "rec-1", &dto.CreateJobRequest{})
	assertAppErrCode(t, err, apperrors.CodeValidationFailed)
}

func TestSearchMyJobsRequiresRecruiter(t *testing.T) {
	f := newJobFixture()

	_, err := f.service.Search(nil, "app-1", models.UserRoleApplicant, dto.JobSearchCriteria{MyJobs: true})
	assertAppErrCode(t, err, apperrors.CodeForbidden)
}

func TestSearchMyJobsScopedToCaller(t *testing.T) {
	f := newJobFixture()
	_, err := f.service.Create(nil, "rec-1", validCreateRequest())
	require.NoError(t, err)
	_, err = f.service.Create(nil, "rec-2", validCreateRequest())
	require.NoError(t, err)

	mine, err := f.service.Search(nil, "rec-1", models.UserRoleRecruiter, dto.JobSearchCriteria{MyJobs: true})
	require.NoError(t, err)
	assert.Len(t, mine, 1)

	all, err := f.service.Search(nil, "app-1", models.UserRoleApplicant, dto.JobSearchCriteria{})
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestUpdateJobOwnershipRequired(t *testing.T) {
	f := newJobFixture()
	job, err := f.service.Create(nil, "rec-1", validCreateRequest())
	require.NoError(t, err)

	caps := 20
	_, err = f.service.Update(nil, "rec-2", job.ID, &dto.UpdateJobRequest{MaxApplicants: &caps})
	assertAppErrCode(t, err, apperrors.CodeForbidden)

	updated, err := f.service.Update(nil, "rec-1", job.ID, &dto.UpdateJobRequest{MaxApplicants: &caps})
	require.NoError(t, err)
	assert.Equal(t, 20, updated.MaxApplicants)
}

func TestDeleteJobMarksApplicationsDeleted(t *testing.T) {
	f := newJobFixture()
	job, err := f.service.Create(nil, "rec-1", validCreateRequest())
	require.NoError(t, err)

	live := &models.Application{ApplicantID: "app-1", RecruiterID: "rec-1", JobID: job.ID, Status: models.StatusApplied}
	done := &models.Application{ApplicantID: "app-2", RecruiterID: "rec-1", JobID: job.ID, Status: models.StatusFinished}
	require.NoError(t, f.apps.Create(nil, live))
	require.NoError(t, f.apps.Create(nil, done))

	err = f.service.Delete(nil, "rec-2", job.ID)
	assertAppErrCode(t, err, apperrors.CodeForbidden)

	require.NoError(t, f.service.Delete(nil, "rec-1", job.ID))

	_, err = f.service.Get(nil, job.ID)
	assertAppErrCode(t, err, apperrors.CodeNotFound)
	assert.Equal(t, models.StatusDeleted, live.Status)
	assert.Equal(t, models.StatusFinished, done.Status)
}

func TestGetJobNotFound(t *testing.T) {
	f := newJobFixture()

	_, err := f.service.Get(nil, "missing")
	assertAppErrCode(t, err, apperrors.CodeNotFound)
}
