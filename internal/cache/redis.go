package cache

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Domenick1991/airops/config"
	"github.com/redis/go-redis/v9"
)

type RedisCache struct {
	client *redis.Client
}

func NewRedisCache(cfg config.RedisConfig) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
	}
}

func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

func (c *RedisCache) Close() error {
	return c.client.Close()
}

// AcquireResetCooldown claims the password-reset slot for email. It returns
// false while an earlier claim has not expired.
func (c *RedisCache) AcquireResetCooldown(ctx context.Context, email string, ttl time.Duration) (bool, error) {
	return c.client.SetNX(ctx, resetCooldownKey(email), time.Now().UTC().Format(time.RFC3339), ttl).Result()
}

// ReleaseResetCooldown frees the slot, used when the reset could not be completed.
func (c *RedisCache) ReleaseResetCooldown(ctx context.Context, email string) error {
	return c.client.Del(ctx, resetCooldownKey(email)).Err()
}

func resetCooldownKey(email string) string {
	return fmt.Sprintf("cooldown:password-reset:%s", strings.ToLower(email))
}
