package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisOptions is the subset of connection settings the service exposes.
type RedisOptions struct {
	Addr     string
	Password string
	DB       int
}

// ConnectRedis opens a client and checks it with PING so a bad address fails at
// startup instead of on the first invoice.
func ConnectRedis(ctx context.Context, opts RedisOptions) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:         opts.Addr,
		Password:     opts.Password,
		DB:           opts.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping %s: %w", opts.Addr, err)
	}
	log.Printf("[storage][redis] connected addr=%s db=%d", opts.Addr, opts.DB)
	return client, nil
}
