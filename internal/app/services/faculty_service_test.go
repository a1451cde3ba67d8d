package services

import (
	"context"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/pkg/apperrors"
)

func TestFacultyCreateValidation(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())

	tests := []struct {
		name string
		req  *dto.CreateFacultyRequest
	}{
		{name: "missing name", req: &dto.CreateFacultyRequest{Email: "f@b.c", Department: "CSE", Designation: "Professor"}},
		{name: "missing email", req: &dto.CreateFacultyRequest{Name: "F", Department: "CSE", Designation: "Professor"}},
		{name: "missing department", req: &dto.CreateFacultyRequest{Name: "F", Email: "f@b.c", Designation: "Professor"}},
		{name: "missing designation", req: &dto.CreateFacultyRequest{Name: "F", Email: "f@b.c", Department: "CSE"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			member, err := svc.Create(context.Background(), tt.req)
			assert.Nil(t, member)
			require.Error(t, err)
			assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
			assert.Equal(t, "Name, email, department, and designation are required", err.Error())
		})
	}
}

func TestFacultyListEmptyIsNotNil(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())

	members, err := svc.List(context.Background())
	require.NoError(t, err)
	require.NotNil(t, members)
	assert.Empty(t, members)
}

func TestFacultyCreateNormalizesEmail(t *testing.T) {
	svc := NewFacultyService(newFakeFacultyRepo())

	member, err := svc.Create(context.Background(), &dto.CreateFacultyRequest{
		Name:        "Dr. Mehta",
		Email:       " Mehta@College.EDU ",
		Department:  "CSE",
		Designation: "Professor",
		Experience:  12,
	})
	require.NoError(t, err)
	assert.Equal(t, "mehta@college.edu", member.Email)
	assert.Equal(t, 12, member.Experience)
}

func TestFacultyCreateDuplicateEmail(t *testing.T) {
	repo := newFakeFacultyRepo()
	repo.createErr = &pgconn.PgError{Code: "23505", ConstraintName: "faculty_email_key"}
	svc := NewFacultyService(repo)

	member, err := svc.Create(context.Background(), &dto.CreateFacultyRequest{
		Name:        "Dr. Mehta",
		Email:       "mehta@college.edu",
		Department:  "CSE",
		Designation: "Professor",
	})
	assert.Nil(t, member)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConflict)
	assert.Equal(t, "Faculty with this email already exists", err.Error())
}
