package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariz/collegems/internal/app/models"
)

func newTestStatsService() (StatsService, *fakeStudentRepo, *fakeCourseRepo, *fakeFacultyRepo, *fakeDepartmentRepo) {
	students := newFakeStudentRepo()
	courses := newFakeCourseRepo()
	faculty := newFakeFacultyRepo()
	departments := newFakeDepartmentRepo()
	return NewStatsService(students, courses, faculty, departments), students, courses, faculty, departments
}

func TestStatsCountsAllEntities(t *testing.T) {
	svc, students, courses, faculty, departments := newTestStatsService()

	students.students = []*models.Student{{ID: 1}, {ID: 2}, {ID: 3}}
	courses.courses = []*models.Course{{ID: 1}}
	faculty.faculty = []*models.Faculty{{ID: 1}, {ID: 2}}
	departments.departments = []*models.Department{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}, {ID: 5}, {ID: 6}}

	stats, err := svc.Stats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(3), stats.Students)
	assert.Equal(t, int64(1), stats.Courses)
	assert.Equal(t, int64(2), stats.Faculty)
	assert.Equal(t, int64(6), stats.Departments)
}

func TestStatsPropagatesCountError(t *testing.T) {
	svc, _, courses, _, _ := newTestStatsService()
	courses.countErr = errors.New("connection closed")

	stats, err := svc.Stats(context.Background())
	assert.Nil(t, stats)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "counting courses")
}

func TestDatabaseCheckInsertsAndCounts(t *testing.T) {
	svc, students, _, _, _ := newTestStatsService()

	count, err := svc.DatabaseCheck(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	require.Len(t, students.students, 1)
	inserted := students.students[0]
	assert.Equal(t, "Test Student", inserted.Name)
	assert.Equal(t, "test@example.com", inserted.Email)
	assert.Regexp(t, rollNumberPattern, inserted.RollNumber)
}

func TestDatabaseCheckPropagatesInsertError(t *testing.T) {
	svc, students, _, _, _ := newTestStatsService()
	students.createErr = errors.New("connection closed")

	count, err := svc.DatabaseCheck(context.Background())
	assert.Zero(t, count)
	assert.Error(t, err)
}
