package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	appAuth "github.com/mverbeke/campushub/internal/app/auth"
	appControllers "github.com/mverbeke/campushub/internal/app/controllers"
	appMigrations "github.com/mverbeke/campushub/internal/app/migrations"
	appRepos "github.com/mverbeke/campushub/internal/app/repositories"
	appRoutes "github.com/mverbeke/campushub/internal/app/routes"
	appServices "github.com/mverbeke/campushub/internal/app/services"
	"github.com/mverbeke/campushub/internal/config"
	"github.com/mverbeke/campushub/internal/db"
	appMiddleware "github.com/mverbeke/campushub/internal/middleware"
	pkgAuth "github.com/mverbeke/campushub/internal/pkg/auth"
	"github.com/mverbeke/campushub/internal/pkg/cache"
	"github.com/mverbeke/campushub/internal/pkg/helpers"
	"github.com/mverbeke/campushub/internal/pkg/logger"
	"github.com/mverbeke/campushub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	IdentityService      *appAuth.IdentityService
	DeadlineService      *appServices.DeadlineService
	DepartmentService    *appServices.DepartmentService
	RestoService         *appServices.RestoService
	CourseService        *appServices.CourseService
	DeadlineController   *appControllers.DeadlineController
	DepartmentController *appControllers.DepartmentController
	RestoController      *appControllers.RestoController
	CourseController     *appControllers.CourseController
	AuthMiddleware       *appMiddleware.AuthMiddleware
	Repos                *appRepos.Repositories
	JWTService           *pkgAuth.JWTService
	Redis                *cache.Redis
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, zerolog.Logger{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	lgr := logger.New(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})
	lgr.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the default dataset.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg, lgr)
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
	migrator := appMigrations.NewMigrator(dbPool, lgr)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	// Seed after migrations. A partially failed seed is logged but never
	// blocks startup.
	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool, lgr)

	// The Redis cache is optional; a nil cache disables caching without
	// touching any call sites.
	if cfg.Redis.Enabled {
		deps.Redis = cache.NewRedis(cache.RedisConfig{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, lgr)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.IdentityService = appAuth.NewIdentityService(deps.Repos.StudentRepository, lgr)

	deps.DeadlineService = appServices.NewDeadlineService(deps.IdentityService, deps.Repos.DeadlineRepository, lgr)
	deps.DepartmentService = appServices.NewDepartmentService(deps.Repos.DepartmentRepository, lgr)
	deps.RestoService = appServices.NewRestoService(deps.Repos.RestoRepository, deps.Redis, lgr)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.CourseRepository,
		deps.Repos.StudentRepository,
		deps.Repos.DeadlineRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.DeadlineController = appControllers.NewDeadlineController(deps.DeadlineService)
	deps.DepartmentController = appControllers.NewDepartmentController(deps.DepartmentService)
	deps.RestoController = appControllers.NewRestoController(deps.RestoService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	appRoutes.SetupRouter(router,
		deps.DeadlineController,
		deps.DepartmentController,
		deps.RestoController,
		deps.CourseController,
		deps.AuthMiddleware,
	)

	return router
}
