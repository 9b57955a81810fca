package kvstore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const lockSuffix = ":write_lock"

// Redis stores values as plain Redis strings. Writes to the same key are
// serialized with a redsync mutex so concurrent servers do not interleave.
type Redis struct {
	client *redis.Client
	locker *redsync.Redsync
	ttl    time.Duration
	prefix string
}

// RedisOption configures a Redis store.
type RedisOption func(*Redis)

// WithTTL sets the expiration of stored values. Zero keeps them forever.
func WithTTL(ttl time.Duration) RedisOption {
	return func(r *Redis) {
		r.ttl = ttl
	}
}

// WithPrefix prepends prefix to every key.
func WithPrefix(prefix string) RedisOption {
	return func(r *Redis) {
		r.prefix = prefix
	}
}

// NewRedis creates a store on top of an existing client.
func NewRedis(client *redis.Client, opts ...RedisOption) *Redis {
	r := &Redis{
		client: client,
		locker: redsync.New(goredis.NewPool(client)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Put implements i.SaveStore.
func (r *Redis) Put(ctx context.Context, key string, value []byte) error {
	mutex := r.locker.NewMutex(r.key(key) + lockSuffix)
	if err := mutex.LockContext(ctx); err != nil {
		return fmt.Errorf("locking %s: %w", key, err)
	}
	defer func() {
		// Release even if ctx was canceled after the write.
		_, _ = mutex.UnlockContext(context.WithoutCancel(ctx))
	}()

	if err := r.client.Set(ctx, r.key(key), value, r.ttl).Err(); err != nil {
		return fmt.Errorf("writing %s to redis: %w", key, err)
	}
	return nil
}

// Get implements i.SaveStore.
func (r *Redis) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, i.ErrNotFound
		}
		return nil, fmt.Errorf("reading %s from redis: %w", key, err)
	}
	return val, nil
}

func (r *Redis) key(key string) string {
	return r.prefix + key
}
