package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// seedDepartmentsSQL inserts the default department set in a single statement.
// The WHERE NOT EXISTS guard keeps the insert-only-if-empty semantics and the
// ON CONFLICT clause makes concurrent process starts safe: at most one start
// wins, the others no-op.
const seedDepartmentsSQL = `
INSERT INTO departments (name, code, description, head, established)
SELECT v.name, v.code, v.description, v.head, v.established
FROM (VALUES
	('Computer Science & Engineering', 'CSE', 'AI, Machine Learning, Software Development', 'Dr. Rajesh Kumar', 1995),
	('Mechanical Engineering', 'ME', 'Robotics, Automation, Manufacturing', 'Dr. Amit Patel', 1990),
	('Electrical Engineering', 'EE', 'Power Systems, Electronics, Control Systems', 'Dr. Vikram Singh', 1988),
	('Civil Engineering', 'CE', 'Structural Design, Construction Management', 'Dr. Sneha Reddy', 1985),
	('Electronics & Communication', 'ECE', 'VLSI, Embedded Systems, Telecommunications', 'Dr. Priya Sharma', 1992),
	('Information Technology', 'IT', 'Web Development, Cloud Computing, Cybersecurity', 'Dr. Anjali Verma', 2000)
) AS v(name, code, description, head, established)
WHERE NOT EXISTS (SELECT 1 FROM departments)
ON CONFLICT DO NOTHING
`

// CreateDefaultData seeds the default departments when the table is empty
func CreateDefaultData(ctx context.Context, dbPool *pgxpool.Pool, lgr zerolog.Logger) error {
	lgr.Info().Msg("Checking/Creating default departments...")

	tag, err := dbPool.Exec(ctx, seedDepartmentsSQL)
	if err != nil {
		return fmt.Errorf("failed to seed departments: %w", err)
	}

	if tag.RowsAffected() > 0 {
		lgr.Info().Int64("count", tag.RowsAffected()).Msg("Default departments seeded")
	}

	return nil
}
