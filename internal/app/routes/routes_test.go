package routes

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hariz/collegems/internal/app/controllers"
	"github.com/hariz/collegems/internal/app/models"
	"github.com/hariz/collegems/internal/app/models/dto"
	"github.com/hariz/collegems/internal/middleware"
	"github.com/hariz/collegems/internal/pkg/auth"
)

// Stub services returning canned data. Route wiring and token enforcement
// are what these tests exercise, not business logic.

type stubAuthService struct{}

func (stubAuthService) Register(_ context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{
		Message: "User created successfully",
		Token:   "stub-token",
		User:    dto.UserInfo{ID: "1", Name: req.Name, Email: req.Email, Role: "student"},
	}, nil
}

func (stubAuthService) Login(_ context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return &dto.AuthResponse{
		Message: "Login successful",
		Token:   "stub-token",
		User:    dto.UserInfo{ID: "1", Email: req.Email, Role: "student"},
	}, nil
}

type stubStudentService struct{}

func (stubStudentService) List(_ context.Context) ([]*models.Student, error) {
	return []*models.Student{{ID: 1, Name: "Ravi"}}, nil
}

func (stubStudentService) Create(_ context.Context, req *dto.CreateStudentRequest) (*models.Student, error) {
	return &models.Student{ID: 2, Name: req.Name, Email: req.Email}, nil
}

func (stubStudentService) Delete(_ context.Context, _ int64) error { return nil }

type stubCourseService struct{}

func (stubCourseService) List(_ context.Context) ([]*models.Course, error) {
	return []*models.Course{}, nil
}

func (stubCourseService) Create(_ context.Context, req *dto.CreateCourseRequest) (*models.Course, error) {
	return &models.Course{ID: 1, Name: req.Name, Code: req.Code}, nil
}

func (stubCourseService) Delete(_ context.Context, _ int64) error { return nil }

type stubFacultyService struct{}

func (stubFacultyService) List(_ context.Context) ([]*models.Faculty, error) {
	return []*models.Faculty{}, nil
}

func (stubFacultyService) Create(_ context.Context, req *dto.CreateFacultyRequest) (*models.Faculty, error) {
	return &models.Faculty{ID: 1, Name: req.Name}, nil
}

func (stubFacultyService) Delete(_ context.Context, _ int64) error { return nil }

type stubDepartmentService struct{}

func (stubDepartmentService) List(_ context.Context) ([]*models.Department, error) {
	return []*models.Department{}, nil
}

func (stubDepartmentService) Create(_ context.Context, req *dto.CreateDepartmentRequest) (*models.Department, error) {
	return &models.Department{ID: 1, Name: req.Name}, nil
}

func (stubDepartmentService) Delete(_ context.Context, _ int64) error { return nil }

type stubStatsService struct{}

func (stubStatsService) Stats(_ context.Context) (*dto.StatsResponse, error) {
	return &dto.StatsResponse{Students: 3, Courses: 1, Faculty: 2, Departments: 6}, nil
}

func (stubStatsService) DatabaseCheck(_ context.Context) (int64, error) { return 4, nil }

func newTestRouter(t *testing.T) (*gin.Engine, *auth.JWTService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	jwtService := auth.NewJWTService(auth.JWTConfig{SecretKey: "test-secret", TokenExp: time.Hour})
	router := gin.New()

	SetupRouter(router,
		controllers.NewAuthController(stubAuthService{}, zerolog.Nop()),
		controllers.NewStudentController(stubStudentService{}),
		controllers.NewCourseController(stubCourseService{}),
		controllers.NewFacultyController(stubFacultyService{}),
		controllers.NewDepartmentController(stubDepartmentService{}),
		controllers.NewDashboardController(stubStatsService{}),
		middleware.NewAuthMiddleware(jwtService),
	)
	return router, jwtService
}

func adminToken(t *testing.T, jwtService *auth.JWTService) string {
	t.Helper()
	token, err := jwtService.GenerateToken("admin")
	require.NoError(t, err)
	return token
}

func TestAuthRoutesArePublic(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"a@b.c","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.AuthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "stub-token", resp.Token)
}

func TestRegisterReturnsCreated(t *testing.T) {
	router, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/register",
		strings.NewReader(`{"name":"A","email":"a@b.c","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestAdminRoutesRequireToken(t *testing.T) {
	router, _ := newTestRouter(t)

	paths := []string{
		"/api/admin/students",
		"/api/admin/courses",
		"/api/admin/faculty",
		"/api/admin/departments",
		"/api/admin/stats",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
		})
	}
}

func TestAdminRoutesAcceptValidToken(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := adminToken(t, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/students", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var students []*models.Student
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &students))
	require.Len(t, students, 1)
	assert.Equal(t, "Ravi", students[0].Name)
}

func TestCreateStudentReturnsCreated(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := adminToken(t, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/students",
		strings.NewReader(`{"name":"Ravi","email":"ravi@example.com","course":"B.Tech","year":"2nd Year"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
}

func TestDeleteStudentRejectsBadID(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := adminToken(t, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/students/abc", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Invalid student ID", resp.Message)
}

func TestDeleteStudentSucceeds(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := adminToken(t, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/admin/students/7", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Student deleted", resp.Message)
}

func TestStatsEndpoint(t *testing.T) {
	router, jwtService := newTestRouter(t)
	token := adminToken(t, jwtService)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var stats dto.StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.Equal(t, int64(3), stats.Students)
	assert.Equal(t, int64(6), stats.Departments)
}
