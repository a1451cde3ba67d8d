package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/hariz/collegems/docs" // Import generated swagger docs
	appControllers "github.com/hariz/collegems/internal/app/controllers"
	appMigrations "github.com/hariz/collegems/internal/app/migrations"
	appRepos "github.com/hariz/collegems/internal/app/repositories"
	appRoutes "github.com/hariz/collegems/internal/app/routes"
	appServices "github.com/hariz/collegems/internal/app/services"
	"github.com/hariz/collegems/internal/config"
	"github.com/hariz/collegems/internal/db"
	appMiddleware "github.com/hariz/collegems/internal/middleware"
	pkgAuth "github.com/hariz/collegems/internal/pkg/auth"
	"github.com/hariz/collegems/internal/pkg/logger"
	"github.com/hariz/collegems/internal/seed"
)

// allowedOrigins are the browser origins permitted to call the API with
// credentials. The deployed frontend plus the local Vite dev server.
var allowedOrigins = []string{
	"https://end-clgmanagementsystem-react.netlify.app",
	"http://localhost:5173",
}

// corsConfig builds the cross-origin policy: fixed origin allowlist with
// credentials enabled, so the allowed origin is echoed back per request.
func corsConfig() cors.Config {
	return cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	StudentService       appServices.StudentService
	CourseService        appServices.CourseService
	FacultyService       appServices.FacultyService
	DepartmentService    appServices.DepartmentService
	StatsService         appServices.StatsService
	AuthController       *appControllers.AuthController
	StudentController    *appControllers.StudentController
	CourseController     *appControllers.CourseController
	FacultyController    *appControllers.FacultyController
	DepartmentController *appControllers.DepartmentController
	DashboardController  *appControllers.DashboardController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default department records.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed default data after migrations. A failure here is logged but does
	// not abort startup.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    cfg.TokenExpiration(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.JWTService,
		appServices.AdminCredentials{
			Email:    cfg.Admin.Email,
			Password: cfg.Admin.Password,
		},
		lgr,
	)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.CourseService = appServices.NewCourseService(deps.Repos.CourseRepository)
	deps.FacultyService = appServices.NewFacultyService(deps.Repos.FacultyRepository)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository)
	deps.StatsService = appServices.NewStatsService(
		deps.Repos.StudentRepository,
		deps.Repos.CourseRepository,
		deps.Repos.FacultyRepository,
		deps.Repos.DepartmentRepository,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.Logger)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.FacultyController = appControllers.NewFacultyController(deps.FacultyService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.DashboardController = appControllers.NewDashboardController(deps.StatsService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	production := strings.ToLower(cfg.Server.Mode) == "production"
	if production {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	// Unhandled errors only carry detail in the response outside production.
	appMiddleware.SetDebugErrors(!production)

	router := gin.New()
	router.Use(gin.Recovery())

	router.Use(cors.New(corsConfig()))

	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.CourseController,
		deps.FacultyController,
		deps.DepartmentController,
		deps.DashboardController,
		deps.AuthMiddleware,
	)

	// Liveness endpoint
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "College Management System API"})
	})

	// Connectivity smoke test, disabled in production since it writes a row.
	if !production {
		router.GET("/test-db", deps.DashboardController.TestDatabase)
	}

	return router
}
