package security

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"workbook-auth/app/port"
)

// incrementScript applies the fixed-window rule server-side so the
// read-modify-write stays atomic per key across instances. Returns
// {allowed, count, ttl_ms}.
var incrementScript = redis.NewScript(`
local count = redis.call('GET', KEYS[1])
if not count then
  redis.call('SET', KEYS[1], 1, 'PX', ARGV[2])
  return {1, 1, tonumber(ARGV[2])}
end
count = tonumber(count)
local ttl = redis.call('PTTL', KEYS[1])
if count >= tonumber(ARGV[1]) then
  return {0, count, ttl}
end
count = redis.call('INCR', KEYS[1])
return {1, count, ttl}
`)

// RedisStore is the shared CounterStore for multi-instance deployments.
// Counters live in Redis keyed by action:identity with the window as TTL,
// so all instances see the same counts.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore creates a Redis-backed counter store.
func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{
		client: client,
		prefix: "workbook-auth:ratelimit:",
	}
}

// Increment implements port.CounterStore.
func (s *RedisStore) Increment(ctx context.Context, key string, limit int, window time.Duration) (bool, port.CounterRecord, error) {
	result, err := incrementScript.Run(ctx, s.client,
		[]string{s.prefix + key},
		limit, window.Milliseconds(),
	).Int64Slice()
	if err != nil {
		return false, port.CounterRecord{}, fmt.Errorf("redis increment: %w", err)
	}
	if len(result) != 3 {
		return false, port.CounterRecord{}, fmt.Errorf("redis increment: unexpected reply %v", result)
	}

	rec := port.CounterRecord{
		Count:         int(result[1]),
		WindowResetAt: time.Now().Add(time.Duration(result[2]) * time.Millisecond),
	}
	return result[0] == 1, rec, nil
}

// Get implements port.CounterStore.
func (s *RedisStore) Get(ctx context.Context, key string) (port.CounterRecord, bool, error) {
	pipe := s.client.Pipeline()
	getCmd := pipe.Get(ctx, s.prefix+key)
	ttlCmd := pipe.PTTL(ctx, s.prefix+key)
	if _, err := pipe.Exec(ctx); err != nil {
		if err == redis.Nil {
			return port.CounterRecord{}, false, nil
		}
		return port.CounterRecord{}, false, fmt.Errorf("redis get: %w", err)
	}

	count, err := getCmd.Int()
	if err != nil {
		return port.CounterRecord{}, false, fmt.Errorf("redis get: %w", err)
	}

	rec := port.CounterRecord{
		Count:         count,
		WindowResetAt: time.Now().Add(ttlCmd.Val()),
	}
	return rec, true, nil
}
