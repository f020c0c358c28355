package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/wfl/dashboard-api/internal/app"
	"github.com/wfl/dashboard-api/internal/core/service"
	"github.com/wfl/dashboard-api/internal/infrastructure/db/mongo"
	"github.com/wfl/dashboard-api/internal/pkg/config"
	"github.com/wfl/dashboard-api/pkg/logger"
)

func main() {
	adminPassword := flag.String("admin-password", "admin-change-me", "password for the seeded admin account")
	userPassword := flag.String("user-password", "user-change-me", "password for the seeded non-admin accounts")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err := run(ctx, *adminPassword, *userPassword); err != nil {
		fmt.Fprintf(os.Stderr, "seed: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, adminPassword, userPassword string) error {
	cfg, err := config.Load(ctx)
	if err != nil {
		return err
	}
	log := logger.Init(logger.Options{Level: cfg.LogLevel, Pretty: cfg.IsDevelopment(), Service: "seed"})

	client, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database, Timeout: cfg.Mongo.Timeout})
	if err != nil {
		return err
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(dctx)
	}()
	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		return err
	}

	s := seeder{
		repos:  app.MongoRepositories(db),
		hasher: service.BcryptHasher{Cost: cfg.Auth.BcryptCost},
		now:    time.Now().UTC(),
		log:    log,
	}
	return s.run(ctx, adminPassword, userPassword)
}
