package database

import (
	"context"
	"fmt"
	"time"

	"wm-genai-governance/config"

	"github.com/go-redis/redis/v8"
)

// RedisClient backs the summary cache. It is nil when no cache is configured
// or the server was unreachable at start-up.
var (
	RedisClient *redis.Client
	Ctx         = context.Background()
)

const redisDialTimeout = 2 * time.Second

// ConnectRedis opens the cache client and pings it. On failure the client is
// closed and RedisClient is left nil.
func ConnectRedis(ctx context.Context, cfg *config.Config) error {
	client := redis.NewClient(&redis.Options{
		Addr:        cfg.RedisFullAddr(),
		Password:    cfg.RedisPassword,
		DialTimeout: redisDialTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, redisDialTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return fmt.Errorf("redis %s: %w", cfg.RedisFullAddr(), err)
	}

	RedisClient = client
	return nil
}

func CloseRedis() error {
	if RedisClient == nil {
		return nil
	}
	err := RedisClient.Close()
	RedisClient = nil
	return err
}
