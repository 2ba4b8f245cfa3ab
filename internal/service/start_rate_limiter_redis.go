package service

import (
	"context"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
)

// StartRateLimiter limita la creación de sesiones por origen (IP).
// nil significa sin límite.
type StartRateLimiter interface {
	Allow(key string) bool
}

const redisStartAllowScript = `
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("EXPIRE", KEYS[1], ARGV[1])
end
return current
`

type redisStartRateLimiter struct {
	client redisEvaler
	window time.Duration
	max    int
	prefix string
}

type redisEvaler interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

func NewRedisStartRateLimiter(client *redis.Client, window time.Duration, max int) StartRateLimiter {
	if client == nil {
		return nil
	}
	if window <= 0 {
		window = time.Minute
	}
	if max <= 0 {
		max = 1
	}
	return &redisStartRateLimiter{
		client: client,
		window: window,
		max:    max,
		prefix: "survey:rl:",
	}
}

// Allow falla abierto: ante errores de redis la sesión se permite.
func (l *redisStartRateLimiter) Allow(key string) bool {
	if l == nil || l.client == nil {
		return true
	}
	normalizedKey := strings.ToLower(strings.TrimSpace(key))
	if normalizedKey == "" {
		return false
	}
	ctx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
	defer cancel()

	redisKey := l.prefix + normalizedKey
	seconds := int(l.window.Seconds())
	if seconds <= 0 {
		seconds = 60
	}
	count, err := l.client.Eval(ctx, redisStartAllowScript, []string{redisKey}, seconds).Int()
	if err != nil {
		return true
	}
	return count <= l.max
}
