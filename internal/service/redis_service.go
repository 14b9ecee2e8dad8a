package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/khaild19/10AI/internal/config"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

var (
	redisOnce   sync.Once
	redisClient *redis.Client
	redisReady  bool
)

// GetRedisClient returns the shared client, or nil when redis is disabled or
// was unreachable at first use.
func GetRedisClient() *redis.Client {
	redisOnce.Do(initRedisClient)
	if !redisReady {
		return nil
	}
	return redisClient
}

// RedisKey joins parts under the configured prefix with ':'.
func RedisKey(parts ...string) string {
	prefix := config.Get().Redis.Prefix
	if prefix == "" {
		prefix = "catalog"
	}
	if len(parts) == 0 {
		return prefix
	}
	return prefix + ":" + strings.Join(parts, ":")
}

func initRedisClient() {
	cfg := config.Get()
	if !cfg.Redis.Enabled {
		redisReady = false
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		redisReady = false
		_ = client.Close()
		zap.L().Warn("redis unavailable, using in-memory cache", zap.Error(err))
		return
	}

	redisClient = client
	redisReady = true
	zap.L().Info("redis connected", zap.String("addr", cfg.Redis.Addr), zap.Int("db", cfg.Redis.DB))
}

func CloseRedisClient() error {
	if redisClient == nil {
		return nil
	}
	if err := redisClient.Close(); err != nil {
		return fmt.Errorf("close redis failed: %w", err)
	}
	return nil
}
