package bootstrap

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	appControllers "github.com/yigit/coursedesk/internal/app/controllers"
	appMigrations "github.com/yigit/coursedesk/internal/app/migrations"
	appRepos "github.com/yigit/coursedesk/internal/app/repositories"
	appRoutes "github.com/yigit/coursedesk/internal/app/routes"
	appServices "github.com/yigit/coursedesk/internal/app/services"
	"github.com/yigit/coursedesk/internal/config"
	"github.com/yigit/coursedesk/internal/db"
	appMiddleware "github.com/yigit/coursedesk/internal/middleware"
	pkgAuth "github.com/yigit/coursedesk/internal/pkg/auth"
	"github.com/yigit/coursedesk/internal/pkg/helpers"
	"github.com/yigit/coursedesk/internal/pkg/logger"
	"github.com/yigit/coursedesk/internal/pkg/validation"
	"github.com/yigit/coursedesk/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos          *appRepos.Repositories
	Services       *appServices.Services
	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	JWTService     *pkgAuth.JWTService
	Logger         zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Str("path", configPath).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.ParseLevel(cfg.Logging.Level)
	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: strings.EqualFold(cfg.Logging.Format, "text"),
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenDatabase establishes the connection pool.
func OpenDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Str("host", cfg.Database.Host).Str("dbname", cfg.Database.DBName).Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")
	return database, nil
}

// SetupDatabase opens the pool, applies the embedded migrations and, when
// enabled, loads the demo data.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	database, err := OpenDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := applyMigrations(ctx, appMigrations.NewMigrator(database.Pool, lgr), lgr); err != nil {
		database.Close()
		return nil, err
	}

	if cfg.Seed.Demo {
		if err := seed.CreateDemoData(ctx, appRepos.NewRepositories(database.Pool), lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to create demo data, proceeding anyway...")
		}
	}

	return database, nil
}

// schemaMigrator is the part of migrations.Migrator used at startup.
type schemaMigrator interface {
	Up(ctx context.Context) error
	Close() error
}

// applyMigrations runs m.Up and always closes m. The migrator holds a pool
// connection through database/sql until closed, and pgxpool.Close waits for it.
func applyMigrations(ctx context.Context, m schemaMigrator, lgr zerolog.Logger) error {
	defer func() {
		if err := m.Close(); err != nil {
			lgr.Warn().Err(err).Msg("Failed to close migrator")
		}
	}()

	lgr.Info().Msg("Running database migrations...")
	if err := m.Up(ctx); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}
	deps.Repos = appRepos.NewRepositories(database.Pool)

	if cfg.Auth.Enabled {
		deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
			SecretKey:      cfg.Auth.JWTSecret,
			AccessTokenExp: helpers.ParseDuration(cfg.Auth.TokenExpiration, 12*time.Hour),
			TokenIssuer:    cfg.Auth.Issuer,
		})
	}

	deps.Services = appServices.NewServices(deps.Repos, deps.JWTService, appServices.AdminCredentials{
		Username:     cfg.Auth.Username,
		PasswordHash: cfg.Auth.PasswordHash,
	})

	if cfg.Auth.Enabled {
		deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.Services.AuthService)
		lgr.Info().Str("username", cfg.Auth.Username).Msg("Bearer token authentication enabled")
	}

	deps.Controllers = appRoutes.Controllers{
		Course:     appControllers.NewCourseController(deps.Services.CourseService),
		Student:    appControllers.NewStudentController(deps.Services.StudentService),
		Assignment: appControllers.NewAssignmentController(deps.Services.AssignmentService),
		Report:     appControllers.NewReportController(deps.Services.ReportService),
		Auth:       appControllers.NewAuthController(deps.Services.AuthService),
		Health:     appControllers.NewHealthController(database.Pool),
	}

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	validation.Register()

	router := gin.New()
	router.RedirectTrailingSlash = true
	router.Use(appMiddleware.RequestID(), appMiddleware.AccessLog(), appMiddleware.Recovery())

	appRoutes.SetupSwagger(router)
	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware)

	return router
}
