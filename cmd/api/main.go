package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/scholar-portal/internal/api/http"
	"github.com/spec-kit/scholar-portal/internal/api/http/handlers"
	"github.com/spec-kit/scholar-portal/internal/auth"
	"github.com/spec-kit/scholar-portal/internal/config"
	"github.com/spec-kit/scholar-portal/internal/events"
	"github.com/spec-kit/scholar-portal/internal/observability"
	"github.com/spec-kit/scholar-portal/internal/persistence"
	"github.com/spec-kit/scholar-portal/internal/repository"
	"github.com/spec-kit/scholar-portal/internal/service"
	"github.com/spec-kit/scholar-portal/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	pool := pg.PoolHandle()
	userRepo := repository.NewUserRepository(pool)
	studentRepo := repository.NewStudentRepository(pool)
	institutionRepo := repository.NewInstitutionRepository(pool)

	dispatcher := events.NewInMemoryDispatcher()
	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	authService := service.NewAuthService(cfg.Auth, userRepo, dispatcher)
	studentService := service.NewStudentService(studentRepo)
	institutionService := service.NewInstitutionService(institutionRepo, dispatcher)
	chatService := service.NewChatService(cfg.Gemini, logger)

	authMiddleware := auth.NewAuthMiddleware(authService.TokenManager(), userRepo)
	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.CORS, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health: handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version,
			handlers.Check{Name: "postgres", Ping: pg.Ping},
			handlers.Check{Name: "redis", Ping: redis.Ping},
		),
		Auth:           handlers.NewAuthHandler(authService),
		Students:       handlers.NewStudentHandler(studentService),
		Institutions:   handlers.NewInstitutionHandler(institutionService),
		Chat:           handlers.NewChatHandler(chatService),
		AuthMiddleware: authMiddleware,
		RateLimiter:    httptransport.RateLimiter(cfg.RateLimit, redis.Client, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
