package infrastructure

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
)

// RedisService caches credential lookups (credential value -> user id) in
// front of the database. It is advisory only: the credentials table stays
// the source of truth, and a nil client disables caching entirely when
// Redis is unreachable.
type RedisService struct {
	client *redis.Client
}

func NewRedisService() *RedisService {
	host := GetEnvAsString("REDIS_HOST", "localhost")
	port := GetEnvAsString("REDIS_PORT", "6379")
	password := os.Getenv("REDIS_PASSWORD")
	db := GetEnvAsInt("REDIS_DB", 0)

	// Alternative: use REDIS_URL if provided
	redisURL := os.Getenv("REDIS_URL")
	if redisURL != "" {
		opt, err := redis.ParseURL(redisURL)
		if err == nil {
			client := redis.NewClient(opt)
			if err := client.Ping(context.Background()).Err(); err == nil {
				return &RedisService{client: client}
			}
			fmt.Printf("Warning: Redis connection failed with REDIS_URL: %v\n", err)
		}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%s", host, port),
		Password: password,
		DB:       db,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		fmt.Printf("Warning: Redis connection failed: %v\n", err)
		fmt.Printf("Credential caching is disabled; lookups will hit the database.\n")
		return &RedisService{client: nil}
	}

	return &RedisService{client: client}
}

// NewDisabledRedisService returns a service with no client: every lookup
// behaves as a cache miss. Used where Redis is intentionally absent.
func NewDisabledRedisService() *RedisService {
	return &RedisService{client: nil}
}

func (r *RedisService) SetCredential(ctx context.Context, value, userID string, ttl time.Duration) error {
	if r.client == nil {
		return nil // Redis disabled
	}
	return r.client.Set(ctx, "credential:"+value, userID, ttl).Err()
}

func (r *RedisService) GetCredential(ctx context.Context, value string) (string, error) {
	if r.client == nil {
		return "", redis.Nil // Redis disabled, behave as a cache miss
	}
	return r.client.Get(ctx, "credential:"+value).Result()
}

func (r *RedisService) Close() error {
	if r.client == nil {
		return nil
	}
	return r.client.Close()
}
