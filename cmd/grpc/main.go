package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	grpctransport "github.com/spec-kit/worker-directory/internal/api/grpc"
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

	server, err := grpctransport.NewServer(
		cfg.GRPC,
		grpctransport.NewWorkerServer(workerService, logger),
		resolver,
		logger,
	)
	if err != nil {
		logger.Fatal("failed to build rpc server", zap.Error(err))
	}

	go func() {
		if err := server.Serve(); err != nil {
			logger.Fatal("rpc serve", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	server.Stop()
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
