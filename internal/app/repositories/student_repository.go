package repositories

import (
	"context"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IStudentRepository defines the interface for student database operations
type IStudentRepository interface {
	Create(ctx context.Context, student *models.Student) error
	GetAll(ctx context.Context) ([]*models.Student, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// StudentRepository handles database operations for students
type StudentRepository struct {
	db *pgxpool.Pool
}

// NewStudentRepository creates a new student repository
func NewStudentRepository(db *pgxpool.Pool) *StudentRepository {
	return &StudentRepository{
		db: db,
	}
}

// Create inserts a new student and fills in the generated id and timestamps.
// Unique violations surface as pgconn errors for the service layer to classify.
func (r *StudentRepository) Create(ctx context.Context, student *models.Student) error {
	query := `
		INSERT INTO students (name, email, course, year, roll_number, phone, address)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		student.Name,
		student.Email,
		student.Course,
		student.Year,
		student.RollNumber,
		student.Phone,
		student.Address,
	).Scan(&student.ID, &student.CreatedAt, &student.UpdatedAt)
}

// GetAll retrieves all students ordered by creation time descending
func (r *StudentRepository) GetAll(ctx context.Context) ([]*models.Student, error) {
	query := `
		SELECT id, name, email, course, year, roll_number, phone, address, created_at, updated_at
		FROM students
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// Non-nil so an empty table serializes as [] rather than null
	students := make([]*models.Student, 0)
	for rows.Next() {
		var student models.Student
		if err := rows.Scan(
			&student.ID,
			&student.Name,
			&student.Email,
			&student.Course,
			&student.Year,
			&student.RollNumber,
			&student.Phone,
			&student.Address,
			&student.CreatedAt,
			&student.UpdatedAt,
		); err != nil {
			return nil, err
		}
		students = append(students, &student)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return students, nil
}

// Delete deletes a student by ID. Deleting an absent ID is a no-op.
func (r *StudentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM students WHERE id = $1`, id)
	return err
}

// Count returns the number of student records
func (r *StudentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM students`).Scan(&count)
	return count, err
}
