package repositories

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildOrder(t *testing.T) {
	assert.Equal(t, "", buildOrder(jobSortColumns, nil, nil))

	assert.Equal(t, "salary ASC", buildOrder(jobSortColumns, []string{"salary"}, nil))
	assert.Equal(t, "rating DESC", buildOrder(jobSortColumns, nil, []string{"rating"}))

	// camelCase key maps to the column name.
	assert.Equal(t, "date_of_posting DESC", buildOrder(jobSortColumns, nil, []string{"dateOfPosting"}))

	assert.Equal(t,
		"salary ASC, duration ASC, rating DESC",
		buildOrder(jobSortColumns, []string{"salary", "duration"}, []string{"rating"}))
}

func TestBuildOrderDropsUnknownKeys(t *testing.T) {
	// Column names never come from client input directly.
	assert.Equal(t, "", buildOrder(jobSortColumns, []string{"id; DROP TABLE jobs"}, nil))
	assert.Equal(t, "salary ASC", buildOrder(jobSortColumns, []string{"salary", "password_hash"}, nil))
}

func TestBuildOrderApplicationColumns(t *testing.T) {
	// No keys means no ORDER BY: listings default to insertion order.
	assert.Equal(t, "", buildOrder(applicationSortColumns, nil, nil))

	assert.Equal(t,
		"date_of_application ASC, status DESC",
		buildOrder(applicationSortColumns, []string{"dateOfApplication"}, []string{"status"}))
	assert.Equal(t,
		"job_id ASC, date_of_joining DESC",
		buildOrder(applicationSortColumns, []string{"jobId"}, []string{"dateOfJoining"}))

	// Job-catalog keys are not valid application sort keys.
	assert.Equal(t, "", buildOrder(applicationSortColumns, []string{"salary"}, []string{"rating"}))
}
