package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	StudentRepository    *StudentRepository
	CourseRepository     *CourseRepository
	FacultyRepository    *FacultyRepository
	DepartmentRepository *DepartmentRepository
	UserRepository       *UserRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		StudentRepository:    NewStudentRepository(db),
		CourseRepository:     NewCourseRepository(db),
		FacultyRepository:    NewFacultyRepository(db),
		DepartmentRepository: NewDepartmentRepository(db),
		UserRepository:       NewUserRepository(db),
	}
}
