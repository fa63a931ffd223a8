package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

// --- rating repository fake ---

type fakeRatingRepo struct {
	s *memStore
}

func (f *fakeRatingRepo) FindEdge(_ *gorm.DB, senderID, receiverID string, category models.RatingCategory) (*models.Rating, error) {
	for _, r := range f.s.ratings {
		if r.SenderID == senderID && r.ReceiverID == receiverID && r.Category == category {
			return r, nil
		}
	}
	return nil, repositories.ErrRatingNotFound
}

func (f *fakeRatingRepo) Save(_ *gorm.DB, rating *models.Rating) error {
	for _, r := range f.s.ratings {
		if r.SenderID == rating.SenderID && r.ReceiverID == rating.ReceiverID && r.Category == rating.Category {
			r.Score = rating.Score
			return nil
		}
	}
	rating.ID = f.s.nextID()
	f.s.ratings = append(f.s.ratings, rating)
	return nil
}

func (f *fakeRatingRepo) ScoresForReceiver(_ *gorm.DB, receiverID string, category models.RatingCategory) ([]float64, error) {
	var scores []float64
	for _, r := range f.s.ratings {
		if r.ReceiverID == receiverID && r.Category == category {
			scores = append(scores, r.Score)
		}
	}
	return scores, nil
}

// --- profile repository fake (only the rating aggregate matters here) ---

type fakeProfileRepo struct {
	s *memStore
}

func (f *fakeProfileRepo) FindApplicantByUserID(_ *gorm.DB, _ string) (*models.ApplicantProfile, error) {
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) FindRecruiterByUserID(_ *gorm.DB, _ string) (*models.RecruiterProfile, error) {
	return nil, repositories.ErrProfileNotFound
}

func (f *fakeProfileRepo) UpdateApplicant(_ *gorm.DB, _ string, _ map[string]interface{}) error {
	return nil
}

func (f *fakeProfileRepo) UpdateRecruiter(_ *gorm.DB, _ string, _ map[string]interface{}) error {
	return nil
}

func (f *fakeProfileRepo) SetApplicantRating(_ *gorm.DB, userID string, rating float64) error {
	f.s.applicantRatings[userID] = rating
	return nil
}

// --- helpers ---

type ratingFixture struct {
	store    *memStore
	jobs     *fakeJobRepo
	apps     *fakeAppRepo
	ratings  *fakeRatingRepo
	profiles *fakeProfileRepo
	service  RatingService
}

func newRatingFixture() *ratingFixture {
	store := newMemStore()
	jobs := &fakeJobRepo{s: store}
	apps := &fakeAppRepo{s: store}
	ratings := &fakeRatingRepo{s: store}
	profiles := &fakeProfileRepo{s: store}
	return &ratingFixture{
		store:    store,
		jobs:     jobs,
		apps:     apps,
		ratings:  ratings,
		profiles: profiles,
		service:  NewRatingService(ratings, apps, jobs, profiles, validator.New()),
	}
}

// addFinishedEngagement links applicant and recruiter via a finished
// application and returns the job.
func (f *ratingFixture) addFinishedEngagement(applicantID, recruiterID string, status models.ApplicationStatus) *models.Job {
	job := &models.Job{RecruiterID: recruiterID, Title: "Data Engineer", MaxApplicants: 5, MaxPositions: 2, Rating: NotRatedSentinel}
	_ = f.jobs.Create(nil, job)
	_ = f.apps.Create(nil, &models.Application{
		ApplicantID: applicantID,
		RecruiterID: recruiterID,
		JobID:       job.ID,
		Status:      status,
	})
	return job
}

// --- Mean ---

func TestMean(t *testing.T) {
	assert.Equal(t, float64(NotRatedSentinel), Mean(nil))
	assert.Equal(t, float64(NotRatedSentinel), Mean([]float64{}))
	assert.Equal(t, 4.0, Mean([]float64{4}))
	assert.Equal(t, 3.0, Mean([]float64{4, 2}))
	assert.InDelta(t, 3.6666, Mean([]float64{5, 3, 3}), 0.001)
}

// --- Submit ---

func TestSubmitRequiresQualifyingApplication(t *testing.T) {
	f := newRatingFixture()
	// An applied (not accepted/finished) application does not qualify.
	f.addFinishedEngagement("app-1", "rec-1", models.StatusApplied)

	err := f.service.Submit(nil, "rec-1", models.UserRoleRecruiter, &dto.SubmitRatingRequest{
		ReceiverID: "app-1",
		Score:      4,
	})
	assertAppErrCode(t, err, apperrors.CodeForbidden)
	assert.Empty(t, f.store.ratings)
}

func TestSubmitRecruiterRatesApplicant(t *testing.T) {
	f := newRatingFixture()
	f.addFinishedEngagement("app-1", "rec-1", models.StatusAccepted)
	f.addFinishedEngagement("app-1", "rec-2", models.StatusFinished)

	err := f.service.Submit(nil, "rec-1", models.UserRoleRecruiter, &dto.SubmitRatingRequest{
		ReceiverID: "app-1",
		Score:      4,
	})
	require.NoError(t, err)
	assert.Equal(t, 4.0, f.store.applicantRatings["app-1"])

	err = f.service.Submit(nil, "rec-2", models.UserRoleRecruiter, &dto.SubmitRatingRequest{
		ReceiverID: "app-1",
		Score:      2,
	})
	require.NoError(t, err)

	assert.Len(t, f.store.ratings, 2)
	assert.Equal(t, 3.0, f.store.applicantRatings["app-1"])
}

func TestSubmitUpsertsInPlace(t *testing.T) {
	f := newRatingFixture()
	f.addFinishedEngagement("app-1", "rec-1", models.StatusFinished)

	for _, score := range []float64{5, 2} {
		err := f.service.Submit(nil, "rec-1", models.UserRoleRecruiter, &dto.SubmitRatingRequest{
			ReceiverID: "app-1",
			Score:      score,
		})
		require.NoError(t, err)
	}

	// Re-rating replaces the edge instead of adding a second one.
	assert.Len(t, f.store.ratings, 1)
	assert.Equal(t, 2.0, f.store.applicantRatings["app-1"])
}

func TestSubmitApplicantRatesJob(t *testing.T) {
	f := newRatingFixture()
	job := f.addFinishedEngagement("app-1", "rec-1", models.StatusAccepted)

	err := f.service.Submit(nil, "app-1", models.UserRoleApplicant, &dto.SubmitRatingRequest{
		ReceiverID: job.ID,
		Score:      5,
	})
	require.NoError(t, err)
	assert.Equal(t, 5.0, job.Rating)
}

func TestSubmitApplicantCannotRateForeignJob(t *testing.T) {
	f := newRatingFixture()
	job := f.addFinishedEngagement("app-1", "rec-1", models.StatusAccepted)

	err := f.service.Submit(nil, "app-2", models.UserRoleApplicant, &dto.SubmitRatingRequest{
		ReceiverID: job.ID,
		Score:      5,
	})
	assertAppErrCode(t, err, apperrors.CodeForbidden)
	assert.Equal(t, float64(NotRatedSentinel), job.Rating)
}

func TestSubmitScoreOutOfRange(t *testing.T) {
	f := newRatingFixture()
	f.addFinishedEngagement("app-1", "rec-1", models.StatusFinished)

	err := f.service.Submit(nil, "rec-1", models.UserRoleRecruiter, &dto.SubmitRatingRequest{
		ReceiverID: "app-1",
		Score:      7,
	})
	assertAppErrCode(t, err, apperrors.CodeValidationFailed)
}

// --- PersonalRating ---

func TestPersonalRatingSentinelThenScore(t *testing.T) {
	f := newRatingFixture()
	f.addFinishedEngagement("app-1", "rec-1", models.StatusFinished)

	got, err := f.service.PersonalRating(nil, "rec-1", models.UserRoleRecruiter, "app-1")
	require.NoError(t, err)
	assert.Equal(t, float64(NotRatedSentinel), got)

	require.NoError(t, f.service.Submit(nil, "rec-1", models.UserRoleRecruiter, &dto.SubmitRatingRequest{
		ReceiverID: "app-1",
		Score:      3.5,
	}))

	got, err = f.service.PersonalRating(nil, "rec-1", models.UserRoleRecruiter, "app-1")
	require.NoError(t, err)
	assert.Equal(t, 3.5, got)
}
