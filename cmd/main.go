package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/shenikar/resilink/internal/access"
	"github.com/shenikar/resilink/internal/config"
	v1 "github.com/shenikar/resilink/internal/handler/http/v1"
	"github.com/shenikar/resilink/internal/metrics"
	"github.com/shenikar/resilink/internal/repository"
	"github.com/shenikar/resilink/internal/repository/memory"
	"github.com/shenikar/resilink/internal/service"
	"github.com/shenikar/resilink/internal/webhook"
	"github.com/shenikar/resilink/pkg/logger"
	"github.com/shenikar/resilink/pkg/postgres"
	redisclient "github.com/shenikar/resilink/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/shenikar/resilink/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// repositories - набор хранилищ, выбранный STORAGE_DRIVER
type repositories struct {
	incidents service.IncidentRepository
	alerts    service.AlertRepository
	resources service.ResourceRepository
	auditLogs service.AuditLogRepository
}

// openStorage подключает выбранное хранилище. Возвращаемая функция освобождает ресурсы.
func openStorage(ctx context.Context, cfg *config.Config, log *logrus.Logger) (repositories, func(), error) {
	if cfg.StorageDriver == config.StorageDriverMemory {
		log.Warn("Using in-memory storage, data will be lost on restart")
		return repositories{
			incidents: memory.NewIncidentRepository(),
			alerts:    memory.NewAlertRepository(),
			resources: memory.NewResourceRepository(),
			auditLogs: memory.NewAuditLogRepository(),
		}, func() {}, nil
	}

	log.Info("Running database migrations...")
	if err := postgres.RunMigrations(cfg.MigrationsPath, cfg.DatabaseURL); err != nil {
		return repositories{}, nil, err
	}
	log.Info("Database migrations applied successfully")

	dbpool, err := postgres.NewPostgresDB(ctx, cfg.DatabaseURL)
	if err != nil {
		return repositories{}, nil, err
	}
	log.Info("Successfully connected to PostgreSQL")

	return repositories{
		incidents: repository.NewIncidentRepository(dbpool),
		alerts:    repository.NewAlertRepository(dbpool),
		resources: repository.NewResourceRepository(dbpool),
		auditLogs: repository.NewAuditLogRepository(dbpool),
	}, dbpool.Close, nil
}

// @title Resilink API
// @version 1.0
// @description Civic crisis coordination: incidents, alerts, community resources and audit log.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	if len(cfg.APIKeys) == 0 {
		log.Warn("API_KEYS is empty, every protected request will be rejected")
	}

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	m := metrics.New(prometheus.DefaultRegisterer)

	repos, closeStorage, err := openStorage(ctx, cfg, log)
	if err != nil {
		log.Fatalf("Failed to open %s storage: %v", cfg.StorageDriver, err)
	}
	defer closeStorage()

	// Redis необязателен: без него рассылка пишется в лог, а трекер работает в памяти
	var (
		publisher webhook.AlertPublisher = webhook.NewLogAlertPublisher(log)
		tracker   access.Tracker         = access.NewMemoryTracker(cfg.AccessMarkInterval)
		rdb       *redis.Client
	)
	if cfg.RedisAddr != "" {
		rdb, err = redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer rdb.Close()
		log.Info("Successfully connected to Redis")

		publisher = webhook.NewRedisAlertPublisher(rdb)
		tracker = access.NewRedisTracker(rdb, cfg.AccessMarkInterval)

		// Инициализация и запуск воркера вебхуков
		webhook.NewWebhookWorker(rdb, log, cfg).Start(ctx)
	} else {
		log.Info("REDIS_ADDR is not set, alerts are broadcast to the log only")
	}

	// Инициализация сервисов
	auditService := service.NewAuditService(repos.auditLogs, log, m)
	services := v1.Services{
		Incidents: service.NewIncidentService(repos.incidents, auditService, log, m),
		Alerts:    service.NewAlertService(repos.alerts, auditService, publisher, log, m),
		Resources: service.NewResourceService(repos.resources, auditService, log, m),
		Reports: service.NewReportService(repos.incidents, repos.alerts, repos.auditLogs,
			auditService, log, m, cfg.ActiveUsersWindow),
		Audit: auditService,
	}

	// Инициализация хэндлеров
	handler := v1.NewHandler(services, tracker, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:              serverAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	// Останавливаем воркер до закрытия соединений
	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
