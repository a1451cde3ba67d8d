package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/app/repositories"
	"github.com/hariz/collegems/internal/pkg/apperrors"
	"github.com/hariz/collegems/internal/pkg/dberrors"
)

// CourseService handles admin operations over course records
type CourseService interface {
	List(ctx context.Context) ([]*models.Course, error)
	Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error)
	Delete(ctx context.Context, id int64) error
}

type courseService struct {
	repo repositories.ICourseRepository
}

// NewCourseService creates a new course service
func NewCourseService(repo repositories.ICourseRepository) CourseService {
	return &courseService{repo: repo}
}

// List returns all courses, newest first
func (s *courseService) List(ctx context.Context) ([]*models.Course, error) {
	courses, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving courses: %w", err)
	}
	if courses == nil {
		courses = []*models.Course{}
	}
	return courses, nil
}

// Create validates and persists a new course record. Codes are stored uppercase.
func (s *courseService) Create(ctx context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	if req.Name == "" || req.Code == "" || req.Duration == "" || req.Fees == 0 {
		return nil, apperrors.NewValidationError("Name, code, duration, and fees are required")
	}

	course := &models.Course{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Duration:    req.Duration,
		Fees:        req.Fees,
		Description: req.Description,
		Department:  req.Department,
	}

	if err := s.repo.Create(ctx, course); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Course with this code already exists")
		}
		return nil, fmt.Errorf("error creating course: %w", err)
	}

	return course, nil
}

// Delete removes a course by ID; an unknown ID is a no-op
func (s *courseService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting course: %w", err)
	}
	return nil
}
