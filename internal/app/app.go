package app

import (
	"context"
	"errors"
	"homework_check_backend/internal/config"
	"homework_check_backend/internal/controller"
	"homework_check_backend/internal/repository"
	"homework_check_backend/internal/service"
	"homework_check_backend/pkg/configwatcher"
	"homework_check_backend/pkg/database"
	"homework_check_backend/pkg/logger"
	"homework_check_backend/pkg/monitoring"
	"homework_check_backend/pkg/security"
	"homework_check_backend/pkg/tracing"
	"net/http"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Storage         repository.Storage
	services        *services
	origins         *security.Origins
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type services struct {
	auth       *service.AuthService
	class      *service.ClassService
	folder     *service.FolderService
	assignment *service.AssignmentService
	answerKey  *service.AnswerKeyService
	regrade    *service.RegradeService
	submission *service.SubmissionService
	settings   *service.SettingsService
}

type controllers struct {
	auth       *controller.AuthController
	class      *controller.ClassController
	folder     *controller.FolderController
	assignment *controller.AssignmentController
	answerKey  *controller.AnswerKeyController
	submission *controller.SubmissionController
	settings   *controller.SettingsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// ApplyConfig hands a reloaded config to every registered callback.
func (a *App) ApplyConfig(cfg *config.Config) {
	for _, cb := range a.configCallbacks {
		cb(cfg)
	}
	a.Config = cfg
}

func (a *App) initServices(store repository.Storage, cfg *config.Config) *services {
	s := &services{}

	s.auth = service.NewAuthService(cfg)
	s.class = service.NewClassService(store)
	s.folder = service.NewFolderService(store)
	s.assignment = service.NewAssignmentService(store, store)
	s.regrade = service.NewRegradeService(store, logger.Log.Named("regrade"))
	s.answerKey = service.NewAnswerKeyService(store, store, s.regrade)
	s.settings = service.NewSettingsService(store, cfg.Defaults)
	s.submission = service.NewSubmissionService(store, store, store, s.settings)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		class:      controller.NewClassController(s.class),
		folder:     controller.NewFolderController(s.folder),
		assignment: controller.NewAssignmentController(s.assignment, s.regrade),
		answerKey:  controller.NewAnswerKeyController(s.answerKey),
		submission: controller.NewSubmissionController(s.submission),
		settings:   controller.NewSettingsController(s.settings),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// NewApp connects the configured database and redis and builds the app.
func NewApp(cfg *config.Config) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode == "debug")
	if err != nil {
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		return nil, err
	}

	store := repository.WithSettingsCache(repository.NewGormStorage(db), rdb, cfg.Redis.CacheTTL)

	app := New(cfg, store, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(cfg.Tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			return nil, err
		}
		app.tracer = tp
	}

	return app, nil
}

// New builds the router over an existing storage. db and rdb may be nil.
func New(cfg *config.Config, store repository.Storage, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config:  cfg,
		DB:      db,
		Redis:   rdb,
		Storage: store,
		origins: security.NewOrigins(cfg.CORS.AllowedOrigins),
	}

	app.services = app.initServices(store, cfg)
	controllers := app.initControllers(app.services, db)

	app.RegisterConfigCallback(func(c *config.Config) {
		app.origins.Set(c.CORS.AllowedOrigins)
	})
	app.RegisterConfigCallback(app.services.auth.Reload)

	// 监控初始化
	monitoring.Init()

	if cfg.Server.Mode != "" {
		gin.SetMode(cfg.Server.Mode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == "debug" {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, controllers)

	return app
}

// Run serves until SIGINT/SIGTERM and watches configPath for changes.
func (a *App) Run(configPath string) error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		if err := configwatcher.WatchConfig(ctx, filepath.Join(configPath, "config.yaml"), a.ApplyConfig); err != nil {
			logger.Log.Error("Config watcher stopped", zap.Error(err))
		}
	}()

	serveErr := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		return err
	case <-ctx.Done():
	}
	logger.Log.Info("Shutting down server...")

	// 等待请求处理完毕（5秒超时）
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(shutdownCtx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}

	logger.Log.Info("Server exiting")
	_ = logger.Log.Sync()
	return nil
}

// Close releases the database connection. Used by migrate-only runs.
func (a *App) Close() {
	if a.DB != nil {
		if sqlDB, err := a.DB.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	if a.Redis != nil {
		_ = a.Redis.Close()
	}
}
