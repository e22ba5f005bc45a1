package ratelimit

import (
	"context"
	"log/slog"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

const keyPrefix = "rl:ip:"

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: current count
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
return count
`

// RedisStore is the shared fixed-window counter for multi-instance
// deployments. It fails open: when Redis is unreachable the request is
// allowed and the error is logged.
type RedisStore struct {
	client *goredis.Client
	window time.Duration
	logger *slog.Logger
}

func NewRedisStore(client *goredis.Client, window time.Duration, logger *slog.Logger) *RedisStore {
	return &RedisStore{
		client: client,
		window: window,
		logger: logger,
	}
}

func (s *RedisStore) Limited(ctx context.Context, identity string, limit int) bool {
	ttlSeconds := int(s.window.Seconds())

	result, err := s.client.Eval(ctx, rateLimitLuaScript, []string{keyPrefix + identity}, ttlSeconds).Result()
	if err != nil {
		if s.logger != nil {
			s.logger.Error("rate limit eval failed, failing open", "identity", identity, "error", err)
		}
		return false
	}

	count, ok := result.(int64)
	if !ok {
		if s.logger != nil {
			s.logger.Error("unexpected redis result format, failing open", "identity", identity)
		}
		return false
	}

	return count > int64(limit)
}

func (s *RedisStore) Clear(ctx context.Context, identity string) {
	if err := s.client.Del(ctx, keyPrefix+identity).Err(); err != nil && s.logger != nil {
		s.logger.Error("rate limit clear failed", "identity", identity, "error", err)
	}
}
