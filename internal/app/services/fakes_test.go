package services

import (
	"context"

	"github.com/hariz/collegems/internal/app/models"
	"github.com/hariz/collegems/internal/app/repositories"
)

// In-memory fakes standing in for the pgx-backed repositories. Each fake
// records what was written and lets a test force an error per method.

type fakeUserRepo struct {
	users     map[string]*models.User
	createErr error
	lookupErr error
	nextID    int64
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*models.User{}, nextID: 1}
}

func (f *fakeUserRepo) Create(_ context.Context, user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	user.ID = f.nextID
	f.nextID++
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*models.User, error) {
	if f.lookupErr != nil {
		return nil, f.lookupErr
	}
	user, ok := f.users[email]
	if !ok {
		return nil, repositories.ErrUserNotFound
	}
	return user, nil
}

func (f *fakeUserRepo) EmailExists(_ context.Context, email string) (bool, error) {
	if f.lookupErr != nil {
		return false, f.lookupErr
	}
	_, ok := f.users[email]
	return ok, nil
}

type fakeStudentRepo struct {
	students  []*models.Student
	createErr error
	listErr   error
	deleteErr error
	countErr  error
	deleted   []int64
	nextID    int64
}

func newFakeStudentRepo() *fakeStudentRepo {
	return &fakeStudentRepo{nextID: 1}
}

func (f *fakeStudentRepo) Create(_ context.Context, student *models.Student) error {
	if f.createErr != nil {
		return f.createErr
	}
	student.ID = f.nextID
	f.nextID++
	f.students = append(f.students, student)
	return nil
}

func (f *fakeStudentRepo) GetAll(_ context.Context) ([]*models.Student, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.students, nil
}

func (f *fakeStudentRepo) Delete(_ context.Context, id int64) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeStudentRepo) Count(_ context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.students)), nil
}

type fakeCourseRepo struct {
	courses   []*models.Course
	createErr error
	countErr  error
	nextID    int64
}

func newFakeCourseRepo() *fakeCourseRepo {
	return &fakeCourseRepo{nextID: 1}
}

func (f *fakeCourseRepo) Create(_ context.Context, course *models.Course) error {
	if f.createErr != nil {
		return f.createErr
	}
	course.ID = f.nextID
	f.nextID++
	f.courses = append(f.courses, course)
	return nil
}

func (f *fakeCourseRepo) GetAll(_ context.Context) ([]*models.Course, error) {
	return f.courses, nil
}

func (f *fakeCourseRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeCourseRepo) Count(_ context.Context) (int64, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return int64(len(f.courses)), nil
}

type fakeFacultyRepo struct {
	faculty   []*models.Faculty
	createErr error
	nextID    int64
}

func newFakeFacultyRepo() *fakeFacultyRepo {
	return &fakeFacultyRepo{nextID: 1}
}

func (f *fakeFacultyRepo) Create(_ context.Context, member *models.Faculty) error {
	if f.createErr != nil {
		return f.createErr
	}
	member.ID = f.nextID
	f.nextID++
	f.faculty = append(f.faculty, member)
	return nil
}

func (f *fakeFacultyRepo) GetAll(_ context.Context) ([]*models.Faculty, error) {
	return f.faculty, nil
}

func (f *fakeFacultyRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeFacultyRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.faculty)), nil
}

type fakeDepartmentRepo struct {
	departments []*models.Department
	createErr   error
	nextID      int64
}

func newFakeDepartmentRepo() *fakeDepartmentRepo {
	return &fakeDepartmentRepo{nextID: 1}
}

func (f *fakeDepartmentRepo) Create(_ context.Context, department *models.Department) error {
	if f.createErr != nil {
		return f.createErr
	}
	department.ID = f.nextID
	f.nextID++
	f.departments = append(f.departments, department)
	return nil
}

func (f *fakeDepartmentRepo) GetAll(_ context.Context) ([]*models.Department, error) {
	return f.departments, nil
}

func (f *fakeDepartmentRepo) Delete(_ context.Context, _ int64) error {
	return nil
}

func (f *fakeDepartmentRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.departments)), nil
}
