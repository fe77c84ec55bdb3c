package ratelimit

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/preston-bernstein/nhl-query-service/internal/timeutil"
)

const defaultKeyPrefix = "ratelimit"

// allowScript checks every window before incrementing any of them.
// KEYS are the window counters; ARGV holds the limits followed by the TTLs in ms.
// It returns the admission flag followed by the pre-request count of each window.
var allowScript = redis.NewScript(`
local n = #KEYS
local result = {1}
for i = 1, n do
  local c = tonumber(redis.call('GET', KEYS[i]) or '0')
  result[i + 1] = c
  if c + 1 > tonumber(ARGV[i]) then
    result[1] = 0
  end
end
if result[1] == 1 then
  for i = 1, n do
    if redis.call('INCR', KEYS[i]) == 1 then
      redis.call('PEXPIRE', KEYS[i], ARGV[n + i])
    end
  end
end
return result
`)

// RedisLimiter keeps fixed-window counters in Redis so several processes share one quota.
type RedisLimiter struct {
	client  redis.Scripter
	windows []Window
	prefix  string
	now     func() time.Time
}

// NewRedisLimiter constructs a limiter backed by client.
func NewRedisLimiter(client redis.Scripter, windows []Window, now func() time.Time) *RedisLimiter {
	if now == nil {
		now = time.Now
	}
	return &RedisLimiter{
		client:  client,
		windows: append([]Window(nil), windows...),
		prefix:  defaultKeyPrefix,
		now:     now,
	}
}

// Allow implements Limiter.
func (l *RedisLimiter) Allow(ctx context.Context, key string) (Decision, error) {
	now := l.now()
	keys := make([]string, len(l.windows))
	args := make([]any, 0, 2*len(l.windows))
	for i, w := range l.windows {
		start := timeutil.WindowStart(now, w.Length)
		// The hash tag keeps one client's windows in a single cluster slot.
		keys[i] = fmt.Sprintf("%s:{%s}:%s:%d", l.prefix, key, w.Name, start.Unix())
		args = append(args, strconv.Itoa(w.Limit))
	}
	for _, w := range l.windows {
		args = append(args, strconv.FormatInt(w.Length.Milliseconds(), 10))
	}

	raw, err := allowScript.Run(ctx, l.client, keys, args...).Int64Slice()
	if err != nil {
		return Decision{}, fmt.Errorf("ratelimit: redis allow: %w", err)
	}
	if len(raw) != len(l.windows)+1 {
		return Decision{}, fmt.Errorf("ratelimit: unexpected script reply length %d", len(raw))
	}

	counts := make([]int, len(l.windows))
	for i := range counts {
		counts[i] = int(raw[i+1])
	}
	d := decide(l.windows, counts, now)
	// The script is authoritative; it saw the counters atomically.
	d.Allowed = raw[0] == 1
	return d, nil
}

// Close is a no-op; the Redis client is owned by the caller.
func (l *RedisLimiter) Close() {}
