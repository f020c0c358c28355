package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/wfl/dashboard-api/internal/app"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/mongo"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/redis"
	"github.com/wfl/dashboard-api/internal/infrastructure/http/handlers"
	"github.com/wfl/dashboard-api/internal/infrastructure/queue"
	"github.com/wfl/dashboard-api/internal/pkg/config"
	"github.com/wfl/dashboard-api/pkg/logger"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dashboard-api: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.IsDevelopment(),
		Service: cfg.AppName,
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
		AppName:  cfg.AppName,
		Timeout:  cfg.Mongo.Timeout,
	})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = mongoClient.Disconnect(dctx)
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	rdb, err := redis.Connect(ctx, redis.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		return err
	}
	defer rdb.Close()

	// The dispatcher outlives the request context so in-flight requests can
	// still record during shutdown.
	auditCtx, stopAudit := context.WithCancel(context.Background())
	defer stopAudit()
	audit := queue.NewDispatcher(cfg.Audit.Workers, mongo.NewAuditRepository(db), logger.Component("audit"))
	audit.Start(auditCtx)

	e, err := app.NewHandler(app.Options{
		Config:   cfg,
		Repos:    app.MongoRepositories(db),
		Throttle: redis.NewLoginThrottle(rdb, cfg.Auth.LoginMaxAttempts, cfg.Auth.LoginLockout),
		Audit:    audit,
		Readiness: map[string]handlers.Check{
			"mongodb": mongo.HealthCheck(db),
			"redis":   redis.HealthCheck(rdb),
		},
		Logger: log,
	})
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info().Str("port", cfg.Port).Msg("http server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info().Msg("shutting down")

		sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		err := e.Shutdown(sctx)

		stopAudit()
		audit.Wait()
		return err
	})

	return g.Wait()
}
