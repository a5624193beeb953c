package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	appControllers "github.com/yigit/jobtracker/internal/app/controllers"
	appMigrations "github.com/yigit/jobtracker/internal/app/migrations"
	appRepos "github.com/yigit/jobtracker/internal/app/repositories"
	"github.com/yigit/jobtracker/internal/app/repositories/memory"
	appRoutes "github.com/yigit/jobtracker/internal/app/routes"
	appServices "github.com/yigit/jobtracker/internal/app/services"
	"github.com/yigit/jobtracker/internal/config"
	"github.com/yigit/jobtracker/internal/db"
	appMiddleware "github.com/yigit/jobtracker/internal/middleware"
	pkgAuth "github.com/yigit/jobtracker/internal/pkg/auth"
	"github.com/yigit/jobtracker/internal/pkg/filestorage"
	"github.com/yigit/jobtracker/internal/pkg/geocoder"
	"github.com/yigit/jobtracker/internal/pkg/helpers"
	"github.com/yigit/jobtracker/internal/pkg/logger"
	"github.com/yigit/jobtracker/internal/pkg/metrics"
	"github.com/yigit/jobtracker/internal/pkg/sessionstore"
	"github.com/yigit/jobtracker/internal/seed"
	"github.com/yigit/jobtracker/migrations"
	"github.com/yigit/jobtracker/web"
)

// DefaultConfigPath is where the YAML configuration is read from
const DefaultConfigPath = "configs/config.yaml"

// Database is the application state opened at startup
type Database struct {
	Store appRepos.Store
	// Postgres is nil for the memory driver
	Postgres *db.PostgresDB
}

// Close releases the connection pool
func (d *Database) Close() {
	if d != nil && d.Postgres != nil {
		d.Postgres.Close()
	}
}

// Dependencies holds all the application dependencies
type Dependencies struct {
	JobService        *appServices.JobService
	UserService       *appServices.UserService
	DepartmentService *appServices.DepartmentService
	CategoryService   *appServices.CategoryService
	AuthService       *appServices.AuthService
	MapService        *appServices.MapService

	Controllers    appRoutes.Controllers
	AuthMiddleware *appMiddleware.AuthMiddleware
	Metrics        *metrics.Metrics
	Logger         zerolog.Logger

	redisClient *redis.Client
}

// Close releases connections held by the dependencies
func (d *Dependencies) Close() {
	if d.redisClient != nil {
		if err := d.redisClient.Close(); err != nil {
			d.Logger.Warn().Err(err).Msg("Failed to close Redis client")
		}
	}
}

// LoadConfigAndSetupLogger loads .env, the configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	lgr := logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// OpenDatabase connects the configured driver
func OpenDatabase(cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	if cfg.Database.Driver == config.DriverMemory {
		lgr.Warn().Msg("Using the in-memory store; data is lost on restart")
		return &Database{Store: memory.New()}, nil
	}

	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	return &Database{Store: appRepos.NewPostgresStore(database), Postgres: database}, nil
}

// Migrate applies the embedded migrations; the memory driver needs none
func (d *Database) Migrate(ctx context.Context, lgr zerolog.Logger) error {
	if d.Postgres == nil {
		return nil
	}

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(d.Postgres.Pool, lgr)
	if err := migrator.Migrate(ctx, migrations.Files); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")
	return nil
}

// SetupDatabase opens the store, runs migrations and seeds the categories.
func SetupDatabase(ctx context.Context, cfg *config.Config, lgr zerolog.Logger) (*Database, error) {
	database, err := OpenDatabase(cfg, lgr)
	if err != nil {
		return nil, err
	}

	if err := database.Migrate(ctx, lgr); err != nil {
		database.Close()
		return nil, err
	}

	if _, err := seed.CreateDefaultCategories(ctx, database.Store, lgr); err != nil {
		database.Close()
		return nil, fmt.Errorf("failed to seed categories: %w", err)
	}

	return database, nil
}

// BuildDependencies initializes services, controllers and middleware.
func BuildDependencies(ctx context.Context, cfg *config.Config, store appRepos.Store, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger:  lgr,
		Metrics: metrics.New("jobtracker"),
	}

	fileStorage, err := filestorage.NewLocalStorage(cfg.Server.StaticPath, "/static", lgr)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	revoked, err := deps.sessionStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	sessions := pkgAuth.NewSessionService(pkgAuth.SessionConfig{
		SecretKey:   cfg.Session.Secret,
		TTL:         helpers.ParseDuration(cfg.Session.TTL, 12*time.Hour),
		RememberTTL: helpers.ParseDuration(cfg.Session.RememberTTL, 720*time.Hour),
		Issuer:      cfg.Session.Issuer,
	})

	maps := geocoder.NewClient(geocoder.Config{
		GeocodeURL:   cfg.Geocoder.GeocodeURL,
		GeocodeKey:   cfg.Geocoder.GeocodeKey,
		StaticMapURL: cfg.Geocoder.StaticMapURL,
		StaticMapKey: cfg.Geocoder.StaticMapKey,
		Span:         cfg.Geocoder.Span,
		Timeout:      helpers.ParseDuration(cfg.Geocoder.Timeout, 10*time.Second),
	}, deps.Metrics)

	deps.JobService = appServices.NewJobService(store, lgr)
	deps.UserService = appServices.NewUserService(store, lgr)
	deps.DepartmentService = appServices.NewDepartmentService(store, lgr)
	deps.CategoryService = appServices.NewCategoryService(store)
	deps.AuthService = appServices.NewAuthService(store, sessions, revoked, lgr)
	deps.MapService = appServices.NewMapService(store, maps, fileStorage, lgr)

	cookie := appMiddleware.SessionCookie{Name: cfg.Session.CookieName, Secure: cfg.Session.Secure}
	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.AuthService, cookie)

	deps.Controllers = appRoutes.Controllers{
		Auth:       appControllers.NewAuthController(deps.AuthService, cookie),
		JobPages:   appControllers.NewJobPageController(deps.JobService, deps.UserService, deps.CategoryService),
		Department: appControllers.NewDepartmentController(deps.DepartmentService, deps.UserService),
		Map:        appControllers.NewMapController(deps.MapService),
		Job:        appControllers.NewJobController(deps.JobService),
		User:       appControllers.NewUserController(deps.UserService),
		Category:   appControllers.NewCategoryController(deps.CategoryService),
		Health:     appControllers.NewHealthController(store),
	}

	return deps, nil
}

// sessionStore uses Redis when an address is configured and process memory otherwise
func (d *Dependencies) sessionStore(ctx context.Context, cfg *config.Config) (sessionstore.Store, error) {
	if cfg.Redis.Addr == "" {
		d.Logger.Info().Msg("Redis not configured; revoked sessions are kept in memory")
		return sessionstore.NewMemoryStore(), nil
	}

	client, err := sessionstore.NewRedisClient(ctx, sessionstore.RedisOptions{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		d.Logger.Error().Err(err).Str("addr", cfg.Redis.Addr).Msg("Failed to connect to Redis")
		return nil, err
	}
	d.redisClient = client
	return sessionstore.NewRedisStore(client), nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) (*gin.Engine, error) {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	}

	router := gin.New()
	router.Use(gin.Recovery(), appMiddleware.RequestLogger(lgr))

	templates, err := web.ParseTemplates()
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	router.SetHTMLTemplate(templates)

	appRoutes.SetupRouter(router, deps.Controllers, deps.AuthMiddleware, appRoutes.Options{
		AllowedOrigins: cfg.Server.AllowedOrigins,
		StaticPath:     cfg.Server.StaticPath,
		Metrics:        deps.Metrics,
	})

	return router, nil
}
