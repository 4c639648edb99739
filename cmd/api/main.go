package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/spec-kit/worker-directory/internal/api/http"
	"github.com/spec-kit/worker-directory/internal/api/http/handlers"
	"github.com/spec-kit/worker-directory/internal/auth"
	"github.com/spec-kit/worker-directory/internal/config"
	"github.com/spec-kit/worker-directory/internal/events"
	"github.com/spec-kit/worker-directory/internal/observability"
	"github.com/spec-kit/worker-directory/internal/persistence"
	"github.com/spec-kit/worker-directory/internal/repository"
	"github.com/spec-kit/worker-directory/internal/service"
	"github.com/spec-kit/worker-directory/internal/worker"
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

	resolver := buildResolver(cfg.Auth, redis)

	dispatcher := events.NewInMemoryDispatcher()
	worker.StartAuditWorker(dispatcher, logger)

	workerRepo := repository.NewWorkerRepository(pg.PoolHandle())
	workerService := service.NewWorkerService(workerRepo, dispatcher)

	app := fiber.New(fiber.Config{
		AppName:               cfg.App.Name,
		DisableStartupMessage: cfg.App.Env == "production",
	})
	metrics := observability.NewMetrics()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:   handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Workers:  handlers.NewWorkersHandler(workerService),
		AuthGate: auth.NewMiddleware(resolver, logger),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

// buildResolver picks the credential backend: mode "creds" queries the
// external credential service, mode "static" verifies signed tokens locally.
// A nonzero cache TTL layers the Redis cache on top of either.
func buildResolver(cfg config.AuthConfig, redis *persistence.Redis) auth.Resolver {
	var resolver auth.Resolver
	switch cfg.Mode {
	case "static":
		resolver = auth.NewJWTResolver(cfg.JWTSecret)
	default:
		resolver = auth.NewCredsResolver(cfg.CredsAPIURL, cfg.CredsTimeout())
	}
	return auth.NewCachingResolver(resolver, redis.Client, cfg.CacheTTL())
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
