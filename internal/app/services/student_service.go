package services

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/app/repositories"
	"github.com/hariz/collegems/internal/pkg/apperrors"
	"github.com/hariz/collegems/internal/pkg/dberrors"
)

// StudentService handles admin operations over student records
type StudentService interface {
	List(ctx context.Context) ([]*models.Student, error)
	Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error)
	Delete(ctx context.Context, id int64) error
}

type studentService struct {
	repo repositories.IStudentRepository
}

// NewStudentService creates a new student service
func NewStudentService(repo repositories.IStudentRepository) StudentService {
	return &studentService{repo: repo}
}

// GenerateRollNumber builds a roll number from the current time plus a random
// suffix, matching the format used for records created without one.
func GenerateRollNumber() string {
	return fmt.Sprintf("STU%d%d", time.Now().UnixMilli(), rand.Intn(1000))
}

// List returns all students, newest first
func (s *studentService) List(ctx context.Context) ([]*models.Student, error) {
	students, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving students: %w", err)
	}
	if students == nil {
		students = []*models.Student{}
	}
	return students, nil
}

// Create validates and persists a new student record
func (s *studentService) Create(ctx context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	if req.Name == "" || req.Email == "" || req.Course == "" || req.Year == "" {
		return nil, apperrors.NewValidationError("Name, email, course, and year are required")
	}

	student := &models.Student{
		Name:       strings.TrimSpace(req.Name),
		Email:      strings.ToLower(strings.TrimSpace(req.Email)),
		Course:     req.Course,
		Year:       req.Year,
		RollNumber: req.RollNumber,
		Phone:      req.Phone,
		Address:    req.Address,
	}
	if student.RollNumber == "" {
		student.RollNumber = GenerateRollNumber()
	}

	if err := s.repo.Create(ctx, student); err != nil {
		if dberrors.IsUniqueViolation(err) {
			return nil, apperrors.NewConflictError("Student with this email already exists")
		}
		return nil, fmt.Errorf("error creating student: %w", err)
	}

	return student, nil
}

// Delete removes a student by ID; an unknown ID is a no-op
func (s *studentService) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("error deleting student: %w", err)
	}
	return nil
}
