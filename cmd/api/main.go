package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"buildboard/internal/config"
	"buildboard/internal/database"
	"buildboard/internal/middleware"
	"buildboard/internal/modules/auth"
	"buildboard/internal/modules/clientnotify"
	"buildboard/internal/modules/notification"
	"buildboard/internal/modules/objects"
	"buildboard/internal/modules/payment"
	"buildboard/internal/modules/photo"
	"buildboard/internal/modules/project"
	"buildboard/internal/modules/task"
	jwtsvc "buildboard/internal/pkg/jwt"
	"buildboard/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := newLogger(cfg.AppEnv)
	defer func() { _ = logger.Sync() }()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connect failed", zap.Error(err))
	}
	if err := repository.Migrate(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
		if err := rdb.Ping(context.Background()).Err(); err != nil {
			logger.Warn("redis unreachable, totals cache disabled", zap.Error(err))
			rdb = nil
		}
	}

	if cfg.AppEnv == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := buildRouter(cfg, db, rdb, logger)

	srv := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	go func() {
		logger.Info("server starting", zap.String("addr", cfg.Addr), zap.String("env", cfg.AppEnv))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(env string) *zap.Logger {
	var (
		logger *zap.Logger
		err    error
	)
	if env == "prod" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return logger
}

func buildRouter(cfg *config.Config, db *gorm.DB, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS())
	r.Use(middleware.Metrics())

	// repositories
	userRepo := repository.NewUserRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	photoRepo := repository.NewPhotoRepository(db)
	scheduleRepo := repository.NewPaymentScheduleRepository(db)
	installmentRepo := repository.NewPaymentInstallmentRepository(db)
	receiptRepo := repository.NewPaymentReceiptRepository(db)
	documentRepo := repository.NewPaymentDocumentRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settingRepo := repository.NewNotificationSettingRepository(db)

	j := jwtsvc.New(cfg.JWTSecret, cfg.JWTTTL)

	// services and handlers
	authService := auth.NewService(userRepo, j)
	authHandler := auth.NewHandler(authService)

	objectsService := objects.NewService(objects.NewRepository(db), cfg.UploadsDir, cfg.StaticBase, cfg.PublicURL)
	objectsHandler := objects.NewHandler(objectsService)

	hub := notification.NewHub()
	notificationService := notification.NewService(notificationRepo, hub, logger)
	notificationHandler := notification.NewHandler(notificationService, hub, j, logger)

	var totals payment.TotalsCache = payment.NoopTotalsCache{}
	if rdb != nil {
		totals = payment.NewRedisTotalsCache(rdb, cfg.TotalsCacheTTL, logger)
	}
	paymentService := payment.NewService(
		scheduleRepo, installmentRepo, receiptRepo, documentRepo,
		projectRepo, objectsService, notificationService, totals, logger,
	)
	paymentHandler := payment.NewHandler(paymentService)

	projectService := project.NewService(projectRepo, logger)
	projectHandler := project.NewHandler(projectService)

	taskService := task.NewService(taskRepo, projectRepo, userRepo, logger)
	taskHandler := task.NewHandler(taskService)

	photoService := photo.NewService(photoRepo, projectRepo, objectsService, logger)
	photoHandler := photo.NewHandler(photoService)

	clientNotifyService := clientnotify.NewService(settingRepo, projectRepo, logger)
	clientNotifyHandler := clientnotify.NewHandler(clientNotifyService)

	// ops endpoints
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/readyz", func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	r.Static(cfg.StaticBase, cfg.UploadsDir)

	api := r.Group("/api")
	{
		authHandler.RegisterPublicRoutes(api)
		notificationHandler.RegisterStreamRoute(api)

		protected := api.Group("/")
		protected.Use(middleware.JWTAuth(j))
		{
			authHandler.RegisterProtectedRoutes(protected)
			objectsHandler.RegisterRoutes(protected)
			projectHandler.RegisterRoutes(protected)
			taskHandler.RegisterRoutes(protected)
			photoHandler.RegisterRoutes(protected)
			paymentHandler.RegisterRoutes(protected)
			notificationHandler.RegisterRoutes(protected)
			clientNotifyHandler.RegisterRoutes(protected)
		}
	}

	return r
}
