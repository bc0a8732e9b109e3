// Package bootstrap wires configuration, storage, repositories, services and
// controllers together.
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
	"github.com/rs/zerolog/log"

	appControllers "github.com/campushub/placement-portal/internal/app/controllers"
	appMigrations "github.com/campushub/placement-portal/internal/app/migrations"
	appRepos "github.com/campushub/placement-portal/internal/app/repositories"
	appRoutes "github.com/campushub/placement-portal/internal/app/routes"
	appServices "github.com/campushub/placement-portal/internal/app/services"
	"github.com/campushub/placement-portal/internal/config"
	"github.com/campushub/placement-portal/internal/db"
	appMiddleware "github.com/campushub/placement-portal/internal/middleware"
	pkgAuth "github.com/campushub/placement-portal/internal/pkg/auth"
	"github.com/campushub/placement-portal/internal/pkg/filestorage"
	"github.com/campushub/placement-portal/internal/pkg/helpers"
	"github.com/campushub/placement-portal/internal/pkg/logger"
	"github.com/campushub/placement-portal/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService          appServices.AuthService
	StudentService       appServices.StudentService
	AdminService         appServices.AdminService
	EventService         appServices.EventService
	ParticipationService appServices.ParticipationService
	MessageService       appServices.MessageService

	AuthController          *appControllers.AuthController
	StudentController       *appControllers.StudentController
	AdminController         *appControllers.AdminController
	EventController         *appControllers.EventController
	ParticipationController *appControllers.ParticipationController
	MessageController       *appControllers.MessageController

	AuthMiddleware *appMiddleware.AuthMiddleware
	Repos          *appRepos.Repositories
	JWTService     *pkgAuth.JWTService
	FileStorage    *filestorage.LocalStorage
	Logger         zerolog.Logger
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
// seeds default data.
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

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, cfg, lgr); err != nil {
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Storage.UploadDir, cfg.Storage.BaseURL)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExp:    helpers.ParseDuration(cfg.JWT.TokenExpiration, 24*time.Hour),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.AdminRepository,
		deps.Repos.CompanyRepository,
		deps.JWTService,
		lgr,
	)

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository, deps.FileStorage)
	deps.AdminService = appServices.NewAdminService(
		deps.Repos.AdminRepository,
		deps.Repos.StudentRepository,
		deps.Repos.CompanyRepository,
		deps.Repos.EventRepository,
		deps.Repos.ParticipationRepository,
		lgr,
	)
	deps.EventService = appServices.NewEventService(deps.Repos.EventRepository)
	deps.ParticipationService = appServices.NewParticipationService(
		deps.Repos.ParticipationRepository,
		deps.Repos.StudentRepository,
		deps.Repos.EventRepository,
	)
	deps.MessageService = appServices.NewMessageService(deps.Repos.MessageRepository)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.AdminController = appControllers.NewAdminController(deps.AdminService)
	deps.EventController = appControllers.NewEventController(deps.EventService)
	deps.ParticipationController = appControllers.NewParticipationController(deps.ParticipationService)
	deps.MessageController = appControllers.NewMessageController(deps.MessageService)

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
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(appMiddleware.Recovery(lgr))
	router.Use(appMiddleware.CORS())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.StudentController,
		deps.AdminController,
		deps.EventController,
		deps.ParticipationController,
		deps.MessageController,
		deps.AuthMiddleware,
	)

	return router
}
