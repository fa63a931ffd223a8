package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Lixetron/job-portal/internal/auth"
	"github.com/Lixetron/job-portal/internal/models"
	"github.com/Lixetron/job-portal/internal/repositories"
	"github.com/Lixetron/job-portal/internal/services/dto"
	"github.com/Lixetron/job-portal/internal/validator"
	"github.com/Lixetron/job-portal/pkg/apperrors"
)

type fakeUserRepo struct {
	byEmail           map[string]*models.User
	applicantProfiles map[string]*models.ApplicantProfile
	recruiterProfiles map[string]*models.RecruiterProfile
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail:           map[string]*models.User{},
		applicantProfiles: map[string]*models.ApplicantProfile{},
		recruiterProfiles: map[string]*models.RecruiterProfile{},
	}
}

func (f *fakeUserRepo) Create(_ *gorm.DB, user *models.User) error {
	f.byEmail[user.Email] = user
	return nil
}

func (f *fakeUserRepo) CreateWithApplicantProfile(_ *gorm.DB, user *models.User, profile *models.ApplicantProfile) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	f.byEmail[user.Email] = user
	profile.UserID = user.ID
	f.applicantProfiles[user.ID] = profile
	return nil
}

func (f *fakeUserRepo) CreateWithRecruiterProfile(_ *gorm.DB, user *models.User, profile *models.RecruiterProfile) error {
	if user.ID == "" {
		user.ID = "user-" + user.Email
	}
	f.byEmail[user.Email] = user
	profile.UserID = user.ID
	f.recruiterProfiles[user.ID] = profile
	return nil
}

func (f *fakeUserRepo) FindByID(_ *gorm.DB, id string) (*models.User, error) {
	for _, u := range f.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) FindByEmail(_ *gorm.DB, email string) (*models.User, error) {
	if u, ok := f.byEmail[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrUserNotFound
}

func (f *fakeUserRepo) EmailExists(_ *gorm.DB, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func newAuthFixture(t *testing.T) (AuthService, *fakeUserRepo) {
	t.Helper()
	auth.Configure("test-secret", 60)

	users := newFakeUserRepo()
	return NewAuthService(users, validator.New()), users
}

func addUser(users *fakeUserRepo, email, password string, role models.UserRole) *models.User {
	hash, _ := auth.HashPassword(password)
	user := &models.User{
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	user.ID = "user-" + email
	users.byEmail[email] = user
	return user
}

func TestRegisterApplicant(t *testing.T) {
	service, users := newAuthFixture(t)

	resp, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
		Role:     models.UserRoleApplicant,
		Name:     "Alice",
		Education: []dto.EducationEntry{
			{InstitutionName: "State University", StartYear: 2018, EndYear: 2022},
		},
		Skills: []string{"go", "sql"},
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleApplicant, resp.Type)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleApplicant, claims.Role)

	user := users.byEmail["alice@example.com"]
	require.NotNil(t, user)
	assert.NotEqual(t, "correct-horse", user.PasswordHash)

	profile := users.applicantProfiles[user.ID]
	require.NotNil(t, profile)
	assert.Equal(t, user.ID, profile.UserID)
	assert.Equal(t, "Alice", profile.Name)
	assert.Equal(t, float64(-1), profile.Rating)
	assert.Contains(t, string(profile.Education), "State University")
	assert.Contains(t, string(profile.Skills), "go")
}

func TestRegisterRecruiter(t *testing.T) {
	service, users := newAuthFixture(t)

	resp, err := service.Register(nil, &dto.RegisterRequest{
		Email:         "bob@example.com",
		Password:      "battery-staple",
		Role:          models.UserRoleRecruiter,
		Name:          "Bob",
		ContactNumber: "+1-555-0100",
		Bio:           "hiring for platform teams",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserRoleRecruiter, resp.Type)

	user := users.byEmail["bob@example.com"]
	require.NotNil(t, user)

	profile := users.recruiterProfiles[user.ID]
	require.NotNil(t, profile)
	assert.Equal(t, "+1-555-0100", profile.ContactNumber)
	assert.Equal(t, "hiring for platform teams", profile.Bio)
	assert.Empty(t, users.applicantProfiles)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	service, users := newAuthFixture(t)
	addUser(users, "alice@example.com", "correct-horse", models.UserRoleApplicant)

	_, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "another-pass",
		Role:     models.UserRoleApplicant,
		Name:     "Mallory",
	})
	assertAppErrCode(t, err, apperrors.CodeAlreadyExists)
}

func TestRegisterValidation(t *testing.T) {
	service, _ := newAuthFixture(t)

	_, err := service.Register(nil, &dto.RegisterRequest{
		Email:    "alice@example.com",
		Password: "short",
		Role:     models.UserRole("admin"),
		Name:     "Alice",
	})
	assertAppErrCode(t, err, apperrors.CodeValidationFailed)
}

func TestLoginSucceeds(t *testing.T) {
	service, users := newAuthFixture(t)
	addUser(users, "alice@example.com", "correct-horse", models.UserRoleApplicant)

	resp, err := service.Login(nil, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "correct-horse",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, models.UserRoleApplicant, resp.Type)

	claims, err := auth.ParseToken(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "user-alice@example.com", claims.UserID)
}

func TestLoginWrongPassword(t *testing.T) {
	service, users := newAuthFixture(t)
	addUser(users, "alice@example.com", "correct-horse", models.UserRoleApplicant)

	_, err := service.Login(nil, &dto.LoginRequest{
		Email:    "alice@example.com",
		Password: "battery-staple",
	})
	assertAppErrCode(t, err, apperrors.CodeInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	// Unknown email and wrong password collapse into one error so the
	// endpoint does not leak which emails are registered.
	service, _ := newAuthFixture(t)

	_, err := service.Login(nil, &dto.LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	assertAppErrCode(t, err, apperrors.CodeInvalidCredentials)
}

func TestLoginValidation(t *testing.T) {
	service, _ := newAuthFixture(t)

	_, err := service.Login(nil, &dto.LoginRequest{Email: "not-an-email", Password: ""})
	assertAppErrCode(t, err, apperrors.CodeValidationFailed)
}
