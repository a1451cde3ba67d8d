package services

import (
	"context"
	"fmt"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/app/repositories"
)

// StatsService handles aggregate counts and the database diagnostic
type StatsService interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	DatabaseCheck(ctx context.Context) (int64, error)
}

type statsService struct {
	students    repositories.IStudentRepository
	courses     repositories.ICourseRepository
	faculty     repositories.IFacultyRepository
	departments repositories.IDepartmentRepository
}

// NewStatsService creates a new stats service
func NewStatsService(
	students repositories.IStudentRepository,
	courses repositories.ICourseRepository,
	faculty repositories.IFacultyRepository,
	departments repositories.IDepartmentRepository,
) StatsService {
	return &statsService{
		students:    students,
		courses:     courses,
		faculty:     faculty,
		departments: departments,
	}
}

// Stats returns the record count of each entity type
func (s *statsService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	studentCount, err := s.students.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting students: %w", err)
	}

	courseCount, err := s.courses.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting courses: %w", err)
	}

	facultyCount, err := s.faculty.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting faculty: %w", err)
	}

	departmentCount, err := s.departments.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("error counting departments: %w", err)
	}

	return &dto.StatsResponse{
		Students:    studentCount,
		Courses:     courseCount,
		Faculty:     facultyCount,
		Departments: departmentCount,
	}, nil
}

// DatabaseCheck inserts a fixed throwaway student and returns the updated
// student count. Development instrumentation only.
func (s *statsService) DatabaseCheck(ctx context.Context) (int64, error) {
	student := &models.Student{
		Name:       "Test Student",
		Email:      "test@example.com",
		Course:     "Test Course",
		Year:       "1st Year",
		RollNumber: GenerateRollNumber(),
	}
	if err := s.students.Create(ctx, student); err != nil {
		return 0, fmt.Errorf("error inserting test student: %w", err)
	}

	return s.students.Count(ctx)
}
