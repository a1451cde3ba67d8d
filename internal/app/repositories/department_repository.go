package repositories

import (
	"context"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/jackc/pgx/v5/pgxpool"
)

// IDepartmentRepository defines the interface for department database operations
type IDepartmentRepository interface {
	Create(ctx context.Context, department *models.Department) error
	GetAll(ctx context.Context) ([]*models.Department, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

// DepartmentRepository handles database operations for departments
type DepartmentRepository struct {
	db *pgxpool.Pool
}

// NewDepartmentRepository creates a new department repository
func NewDepartmentRepository(db *pgxpool.Pool) *DepartmentRepository {
	return &DepartmentRepository{
		db: db,
	}
}

// Create inserts a new department and fills in the generated id and timestamps
func (r *DepartmentRepository) Create(ctx context.Context, department *models.Department) error {
	query := `
		INSERT INTO departments (name, code, description, head, established, is_active)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`

	return r.db.QueryRow(ctx, query,
		department.Name,
		department.Code,
		department.Description,
		department.Head,
		department.Established,
		department.IsActive,
	).Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt)
}

// GetAll retrieves all departments ordered by creation time descending
func (r *DepartmentRepository) GetAll(ctx context.Context) ([]*models.Department, error) {
	query := `
		SELECT id, name, code, description, head, established, is_active, created_at, updated_at
		FROM departments
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	departments := make([]*models.Department, 0)
	for rows.Next() {
		var department models.Department
		if err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Code,
			&department.Description,
			&department.Head,
			&department.Established,
			&department.IsActive,
			&department.CreatedAt,
			&department.UpdatedAt,
		); err != nil {
			return nil, err
		}
		departments = append(departments, &department)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return departments, nil
}

// Delete deletes a department by ID. Deleting an absent ID is a no-op.
func (r *DepartmentRepository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM departments WHERE id = $1`, id)
	return err
}

// Count returns the number of department records
func (r *DepartmentRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM departments`).Scan(&count)
	return count, err
}
