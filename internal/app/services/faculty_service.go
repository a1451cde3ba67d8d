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

// FacultyService handles admin operations over faculty records
type FacultyService interface {
	List(ctx context.Context) ([]*models.Faculty, error)
	Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
}

type facultyService struct {
	repo repositories.IFacultyRepository
}

// NewFacultyService creates a new faculty service
func NewFacultyService(repo repositories.IFacultyRepository) FacultyService {
	return &facultyService{repo: repo}
}

// List returns all faculty members, newest first
func (s *facultyService) List(ctx context.Context) ([]*models.Faculty, error) {
	members, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving faculty: %w", err)
	}
	if members == nil {
		members = []*models.Faculty{}
	}
	return members, nil
}

// Create validates and persists a new faculty record. Emails are stored lowercase.
func (s *facultyService) Create(ctx context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	if req.Name == "" || req.Email == "" || req.Department == "" || req.Designation == "" {
		return nil, apperrors.NewValidationError("Name, email, department, and designation are required")
	}

	member := &models.Faculty{
		Name:          strings.TrimSpace(req.Name),
		Email:         strings.ToLower(strings.TrimSpace(req.Email)),
		Department:    req.Department,
		Designation:   req.Designation,
		Phone:         req.Phone,
		Qualification: req.Qualification,
		Experience:    req.Experience,
	}

	if err := s.repo.Create(ctx, member); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Faculty with this email already exists")
		}
		return nil, fmt.Errorf("error creating faculty: %w", err)
	}

	return member, nil
}

// Delete removes a faculty member by ID; an unknown ID is a no-op
func (s *facultyService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting faculty: %w", err)
	}
	return nil
}
