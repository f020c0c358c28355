package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type Config struct {
	Addr     string
	Password string
	DB       int
	// Timeout bounds dialing and the initial ping; zero means 5s.
	Timeout time.Duration
}

// Connect returns a client for the login throttle store, or an error when
// the server does not answer a ping.
func Connect(ctx context.Context, cfg Config) (*redis.Client, error) {
	wait := cfg.Timeout
	if wait <= 0 {
		wait = 5 * time.Second
	}

	client := redis.NewClient(&redis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: wait,
	})

	pingCtx, cancel := context.WithTimeout(ctx, wait)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", cfg.Addr, err)
	}
	return client, nil
}

// HealthCheck is the readiness probe for client.
func HealthCheck(client *redis.Client) func(context.Context) error {
	return func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	}
}
