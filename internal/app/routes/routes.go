package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hariz/collegems/internal/app/controllers"
	"github.com/hariz/collegems/internal/middleware"
)

// SetupRouter configures all application routes
func SetupRouter(
	router *gin.Engine,
	authController *controllers.AuthController,
	studentController *controllers.StudentController,
	courseController *controllers.CourseController,
	facultyController *controllers.FacultyController,
	departmentController *controllers.DepartmentController,
	dashboardController *controllers.DashboardController,
	authMiddleware *middleware.AuthMiddleware,
) {
	api := router.Group("/api")

	// --- Public auth routes ---
	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
	}

	// --- Admin routes, behind bearer-token verification ---
	admin := api.Group("/admin")
	admin.Use(authMiddleware.JWTAuth())
	{
		students := admin.Group("/students")
		{
			students.GET("", studentController.ListStudents)
			students.POST("", studentController.CreateStudent)
			students.DELETE("/:id", studentController.DeleteStudent)
		}

		courses := admin.Group("/courses")
		{
			courses.GET("", courseController.ListCourses)
			courses.POST("", courseController.CreateCourse)
			courses.DELETE("/:id", courseController.DeleteCourse)
		}

		faculty := admin.Group("/faculty")
		{
			faculty.GET("", facultyController.ListFaculty)
			faculty.POST("", facultyController.CreateFaculty)
			faculty.DELETE("/:id", facultyController.DeleteFaculty)
		}

		departments := admin.Group("/departments")
		{
			departments.GET("", departmentController.ListDepartments)
			departments.POST("", departmentController.CreateDepartment)
			departments.DELETE("/:id", departmentController.DeleteDepartment)
		}

		admin.GET("/stats", dashboardController.GetStats)
	}
}
