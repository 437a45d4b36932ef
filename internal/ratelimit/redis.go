package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const defaultKeyPrefix = "finance-flow:rate:"

// fixedWindow starts a window on the first attempt and counts until the key
// expires. Returns 1 when the attempt is allowed and 0 otherwise.
var fixedWindow = redis.NewScript(`
	local current = redis.call("GET", KEYS[1])
	if current == false then
		redis.call("SET", KEYS[1], 1, "PX", ARGV[2])
		return 1
	end
	if tonumber(current) >= tonumber(ARGV[1]) then
		return 0
	end
	redis.call("INCR", KEYS[1])
	return 1
`)

var resetWindow = redis.NewScript(`return redis.call("DEL", KEYS[1])`)

// RedisRateLimiter keeps counters in Redis.
type RedisRateLimiter struct {
	client    redis.Scripter
	keyPrefix string
}

// NewRedisRateLimiter returns a limiter over client. An empty keyPrefix
// selects the default one.
func NewRedisRateLimiter(client redis.Scripter, keyPrefix string) *RedisRateLimiter {
	if keyPrefix == "" {
		keyPrefix = defaultKeyPrefix
	}
	return &RedisRateLimiter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisRateLimiter) key(key string) string {
	return r.keyPrefix + key
}

func (r *RedisRateLimiter) CheckAndIncrement(ctx context.Context, key string, limit int, window time.Duration) error {
	if limit <= 0 {
		return ErrRateLimitExceeded
	}

	result, err := fixedWindow.Run(ctx, r.client, []string{r.key(key)}, limit, window.Milliseconds()).Int()
	if err != nil {
		return fmt.Errorf("error running rate limit script: %w", err)
	}

	if result == 0 {
		return ErrRateLimitExceeded
	}
	return nil
}

func (r *RedisRateLimiter) Reset(ctx context.Context, key string) error {
	if err := resetWindow.Run(ctx, r.client, []string{r.key(key)}).Err(); err != nil {
		return fmt.Errorf("error resetting rate limit: %w", err)
	}
	return nil
}
