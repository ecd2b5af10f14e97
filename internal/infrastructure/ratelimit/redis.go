package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rahulupadhyay22/Restaurant-Pos/pkg/logger"
)

const webhookKeyPrefix = "ratelimit:webhook:"

// fixedWindowScript counts requests per key and sets the window TTL on the
// first hit, atomically, so a burst cannot slip past between INCR and EXPIRE.
var fixedWindowScript = redis.NewScript(`
local key = KEYS[1]
local limit = tonumber(ARGV[1])
local window_ms = tonumber(ARGV[2])

local count = redis.call('INCR', key)
if count == 1 then
	redis.call('PEXPIRE', key, window_ms)
end

if count > limit then
	return 0
end
return 1
`)

// RedisLimiter is a fixed-window rate limiter keyed per delivery platform.
//
// It fails open: when Redis is unreachable the webhook is let through, since
// dropping real orders is worse than briefly losing burst protection.
type RedisLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	log    logger.Logger
}

func NewRedisLimiter(client *redis.Client, limit int, window time.Duration, log logger.Logger) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  limit,
		window: window,
		log:    log,
	}
}

// Allow reports whether another webhook from this platform fits in the
// current window.
func (l *RedisLimiter) Allow(ctx context.Context, platform string) bool {
	if l.client == nil || l.limit <= 0 {
		return true
	}

	key := fmt.Sprintf("%s%s", webhookKeyPrefix, platform)
	allowed, err := fixedWindowScript.Run(ctx, l.client, []string{key},
		l.limit, l.window.Milliseconds()).Int()
	if err != nil {
		l.log.Warn("rate limiter unavailable, allowing request",
			logger.String("platform", platform),
			logger.Error(err),
		)
		return true
	}
	if allowed == 0 {
		l.log.Warn("webhook rate limit exceeded", logger.String("platform", platform))
		return false
	}
	return true
}
