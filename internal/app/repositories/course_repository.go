package repositories

import (
	"context"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ICourseRepository defines the interface for course database operations
type ICourseRepository interface {
	Create(ctx context.Context, course *models.Course) error
	GetAll(ctx context.Context) ([]*models.Course, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// CourseRepository handles database operations for courses
type CourseRepository struct {
	db *pgxpool.Pool
}

// NewCourseRepository creates a new course repository
func NewCourseRepository(db *pgxpool.Pool) *CourseRepository {
	return &CourseRepository{
		db: db,
	}
}

// Create inserts a new course and fills in the generated id and timestamps
func (r *CourseRepository) Create(ctx context.Context, course *models.Course) error {
	query := `
		INSERT INTO courses (name, code, duration, fees, description, department)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		course.Name,
		course.Code,
		course.Duration,
		course.Fees,
		course.Description,
		course.Department,
	).Scan(&course.ID, &course.CreatedAt, &course.UpdatedAt)
}

// GetAll retrieves all courses ordered by creation time descending
func (r *CourseRepository) GetAll(ctx context.Context) ([]*models.Course, error) {
	query := `
		SELECT id, name, code, duration, fees, description, department, created_at, updated_at
		FROM courses
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	courses := make([]*models.Course, 0)
	for rows.Next() {
		var course models.Course
		if err := rows.Scan(
			&course.ID,
			&course.Name,
			&course.Code,
			&course.Duration,
			&course.Fees,
			&course.Description,
			&course.Department,
			&course.CreatedAt,
			&course.UpdatedAt,
		); err != nil {
			return nil, err
		}
		courses = append(courses, &course)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return courses, nil
}

// Delete deletes a course by ID. Deleting an absent ID is a no-op.
func (r *CourseRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM courses WHERE id = $1`, id)
	return err
}

// Count returns the number of course records
func (r *CourseRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM courses`).Scan(&count)
	return count, err
}
