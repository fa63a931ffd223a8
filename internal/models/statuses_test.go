package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestApplicationStatusValid(t *testing.T) {
	for _, s := range []ApplicationStatus{
		StatusApplied, StatusShortlisted, StatusAccepted,
		StatusRejected, StatusDeleted, StatusCancelled, StatusFinished,
	} {
		assert.True(t, s.Valid(), "status %s", s)
	}
	assert.False(t, ApplicationStatus("bogus").Valid())
	assert.False(t, ApplicationStatus("").Valid())
}

func TestApplicationStatusTerminal(t *testing.T) {
	terminal := map[ApplicationStatus]bool{
		StatusRejected:  true,
		StatusDeleted:   true,
		StatusCancelled: true,
		StatusFinished:  true,
	}
	for _, s := range []ApplicationStatus{
		StatusApplied, StatusShortlisted, StatusAccepted,
		StatusRejected, StatusDeleted, StatusCancelled, StatusFinished,
	} {
		assert.Equal(t, terminal[s], s.Terminal(), "status %s", s)
		assert.Equal(t, !terminal[s], s.Active(), "status %s", s)
	}
	assert.False(t, ApplicationStatus("bogus").Active())
}

func TestReapplyBlockingStatuses(t *testing.T) {
	blocking := map[ApplicationStatus]bool{}
	for _, s := range ReapplyBlockingStatuses {
		blocking[s] = true
	}

	assert.True(t, blocking[StatusApplied])
	assert.True(t, blocking[StatusShortlisted])
	assert.True(t, blocking[StatusAccepted])
	assert.True(t, blocking[StatusDeleted])
	assert.True(t, blocking[StatusCancelled])

	// Rejection and completion open the door to a fresh application.
	assert.False(t, blocking[StatusRejected])
	assert.False(t, blocking[StatusFinished])
}

func TestUserRoleValid(t *testing.T) {
	assert.True(t, UserRoleApplicant.Valid())
	assert.True(t, UserRoleRecruiter.Valid())
	assert.False(t, UserRole("admin").Valid())
}
