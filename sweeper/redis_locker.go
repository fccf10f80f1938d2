package sweeper

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// unlockScript deletes the key only if this instance still owns it.
var unlockScript = redis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

type RedisLocker struct {
	client redis.Cmdable
	owner  string
}

func NewRedisLocker(client redis.Cmdable) *RedisLocker {
	return &RedisLocker{client: client, owner: uuid.NewString()}
}

func (l *RedisLocker) TryLock(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	ok, err := l.client.SetNX(ctx, key, l.owner, ttl).Result()

	if err != nil {
		return false, fmt.Errorf("failed to acquire lock '%v': %w", key, err)
	}

	return ok, nil
}

func (l *RedisLocker) Unlock(ctx context.Context, key string) error {
	if err := unlockScript.Run(ctx, l.client, []string{key}, l.owner).Err(); err != nil {
		return fmt.Errorf("failed to release lock '%v': %w", key, err)
	}

	return nil
}
