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

// DepartmentService handles admin operations over department records
type DepartmentService interface {
	List(ctx context.Context) ([]*models.Department, error)
	Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error)
	Delete(ctx context.Context, id int64) error
}

type departmentService struct {
	repo repositories.IDepartmentRepository
}

// NewDepartmentService creates a new department service
func NewDepartmentService(repo repositories.IDepartmentRepository) DepartmentService {
	return &departmentService{repo: repo}
}

// List returns all departments, newest first
func (s *departmentService) List(ctx context.Context) ([]*models.Department, error) {
	departments, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving departments: %w", err)
	}
	if departments == nil {
		departments = []*models.Department{}
	}
	return departments, nil
}

// Create validates and persists a new department record. Codes are stored
// uppercase and isActive defaults to true when omitted.
func (s *departmentService) Create(ctx context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	if req.Name == "" || req.Code == "" {
		return nil, apperrors.NewValidationError("Name and code are required")
	}

	department := &models.Department{
		Name:        strings.TrimSpace(req.Name),
		Code:        strings.ToUpper(strings.TrimSpace(req.Code)),
		Description: strings.TrimSpace(req.Description),
		Head:        strings.TrimSpace(req.Head),
		Established: req.Established,
		IsActive:    true,
	}
	if req.IsActive != nil {
		department.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, department); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Department with this name or code already exists")
		}
		return nil, fmt.Errorf("error creating department: %w", err)
	}

	return department, nil
}

// Delete removes a department by ID; an unknown ID is a no-op
func (s *departmentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting department: %w", err)
	}
	return nil
}
