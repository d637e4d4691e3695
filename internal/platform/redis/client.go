// Copyright (c) 2026 Bibble. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package redis opens the client behind the language cache.

Every form load and every content write reads the language list, while the
list itself only changes when an admin edits a language, so the API keeps it
in Redis. The cache fails open: when Redis misbehaves after startup the
language service falls through to PostgreSQL.
*/
package redis

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"
)

// Options tunes the client. Zero fields keep the defaults, which suit one
// small cached document.
type Options struct {
	URL string

	PoolSize int
	// OpTimeout bounds each read and write. A slow cache should degrade to a
	// database read, not stall a request.
	OpTimeout time.Duration
}

const (
	defaultPoolSize  = 4
	defaultOpTimeout = 500 * time.Millisecond
	dialTimeout      = 3 * time.Second
	pingTimeout      = 2 * time.Second
)

// NewClient connects and pings once so a wrong URL stops startup.
func NewClient(ctx context.Context, opts Options, logger *slog.Logger) (*redis.Client, error) {
	options, err := redis.ParseURL(opts.URL)
	if err != nil {
		return nil, fmt.Errorf("redis: invalid URL: %w", err)
	}

	options.PoolSize = cmpOr(opts.PoolSize, defaultPoolSize)
	options.MinIdleConns = 1
	options.DialTimeout = dialTimeout
	options.ReadTimeout = cmpOr(opts.OpTimeout, defaultOpTimeout)
	options.WriteTimeout = options.ReadTimeout
	options.MaxRetries = 0

	client := redis.NewClient(options)
	if err := Ping(ctx, client); err != nil {
		_ = client.Close()
		return nil, err
	}

	logger.Info("redis_connected",
		slog.String("addr", options.Addr),
		slog.Int("db", options.DB),
		slog.Int("pool_size", options.PoolSize),
	)
	return client, nil
}

// Ping backs the readiness check.
func Ping(ctx context.Context, client redis.UniversalClient) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis: ping failed: %w", err)
	}
	return nil
}

func cmpOr[T int | time.Duration](value, fallback T) T {
	if value > 0 {
		return value
	}
	return fallback
}
