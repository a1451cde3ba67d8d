package repositories

import (
	"context"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IFacultyRepository defines the interface for faculty database operations
type IFacultyRepository interface {
	Create(ctx context.Context, faculty *models.Faculty) error
	GetAll(ctx context.Context) ([]*models.Faculty, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// FacultyRepository handles database operations for faculty members
type FacultyRepository struct {
	db *pgxpool.Pool
}

// NewFacultyRepository creates a new faculty repository
func NewFacultyRepository(db *pgxpool.Pool) *FacultyRepository {
	return &FacultyRepository{
		db: db,
	}
}

// Create inserts a new faculty member and fills in the generated id and timestamps
func (r *FacultyRepository) Create(ctx context.Context, faculty *models.Faculty) error {
	query := `
		INSERT INTO faculty (name, email, department, designation, phone, qualification, experience)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		faculty.Name,
		faculty.Email,
		faculty.Department,
		faculty.Designation,
		faculty.Phone,
		faculty.Qualification,
		faculty.Experience,
	).Scan(&faculty.ID, &faculty.CreatedAt, &faculty.UpdatedAt)
}

// GetAll retrieves all faculty members ordered by creation time descending
func (r *FacultyRepository) GetAll(ctx context.Context) ([]*models.Faculty, error) {
	query := `
		SELECT id, name, email, department, designation, phone, qualification, experience, created_at, updated_at
		FROM faculty
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := make([]*models.Faculty, 0)
	for rows.Next() {
		var member models.Faculty
		if err := rows.Scan(
			&member.ID,
			&member.Name,
			&member.Email,
			&member.Department,
			&member.Designation,
			&member.Phone,
			&member.Qualification,
			&member.Experience,
			&member.CreatedAt,
			&member.UpdatedAt,
		); err != nil {
			return nil, err
		}
		members = append(members, &member)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return members, nil
}

// Delete deletes a faculty member by ID. Deleting an absent ID is a no-op.
func (r *FacultyRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM faculty WHERE id = $1`, id)
	return err
}

// Count returns the number of faculty records
func (r *FacultyRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM faculty`).Scan(&count)
	return count, err
}
