package cache

import (
	"context"
	"fmt"
	"time"

	"cycle-booking-service/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// NewRedisClient connects to the reservation cache. Operation timeouts are kept
// short: callers treat a Redis error as "cache unavailable" and go to the database.
func NewRedisClient(cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	opTimeout := cfg.OpTimeout
	if opTimeout <= 0 {
		opTimeout = 500 * time.Millisecond
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  opTimeout,
		ReadTimeout:  opTimeout,
		WriteTimeout: opTimeout,
		MaxRetries:   1,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	log.WithFields(logrus.Fields{
		"addr":       client.Options().Addr,
		"db":         cfg.DB,
		"op_timeout": opTimeout,
	}).Info("Connected to Redis")

	return client, nil
}
