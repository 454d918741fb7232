// File: utils/cache.go
package utils

import (
	"context"
	"log"
	"time"

	"github.com/go-redis/redis/v8"

	"paintbook/config"
)

var (
	// AuthCacheClient is the dedicated client for auth token caching.
	AuthCacheClient *redis.Client
	// MetricsCacheClient is the dedicated client for painter responsiveness metrics.
	MetricsCacheClient *redis.Client
)

// AuthTokenKey is the cache key holding a user's current token hash.
func AuthTokenKey(userID string) string {
	return "auth:token:" + userID
}

func newRedisClient(db int) *redis.Client {
	client := redis.NewClient(&redis.Options{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       db,
	})
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis (db %d): %v", db, err)
	}
	return client
}

// InitRedis initializes all Redis clients.
func InitRedis() {
	AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	MetricsCacheClient = newRedisClient(config.AppConfig.RedisMetricsDB)
}

// GetAuthCacheClient returns the Redis client for auth token caching.
func GetAuthCacheClient() *redis.Client {
	if AuthCacheClient == nil {
		AuthCacheClient = newRedisClient(config.AppConfig.RedisAuthDB)
	}
	return AuthCacheClient
}

// GetMetricsCacheClient returns the Redis client for responsiveness metrics.
func GetMetricsCacheClient() *redis.Client {
	if MetricsCacheClient == nil {
		MetricsCacheClient = newRedisClient(config.AppConfig.RedisMetricsDB)
	}
	return MetricsCacheClient
}
