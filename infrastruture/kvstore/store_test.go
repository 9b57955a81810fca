package kvstore

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/beka-birhanu/vinom-maze/service/i"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runStoreContract checks the behavior every SaveStore must share.
func runStoreContract(t *testing.T, store i.SaveStore) {
	ctx := context.Background()

	t.Run("Missing key", func(t *testing.T) {
		_, err := store.Get(ctx, "vinom:maze:missing")
		assert.ErrorIs(t, err, i.ErrNotFound)
	})

	t.Run("Put then Get", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "vinom:maze:a", []byte(`{"a":1}`)))
		got, err := store.Get(ctx, "vinom:maze:a")
		require.NoError(t, err)
		assert.Equal(t, []byte(`{"a":1}`), got)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, store.Put(ctx, "vinom:maze:b", []byte("old")))
		require.NoError(t, store.Put(ctx, "vinom:maze:b", []byte("new")))
		got, err := store.Get(ctx, "vinom:maze:b")
		require.NoError(t, err)
		assert.Equal(t, []byte("new"), got)
	})

	t.Run("Concurrent writers", func(t *testing.T) {
		var wg sync.WaitGroup
		for n := range 8 {
			wg.Add(1)
			go func() {
				defer wg.Done()
				key := fmt.Sprintf("vinom:maze:c%d", n)
				assert.NoError(t, store.Put(ctx, key, []byte(key)))
			}()
		}
		wg.Wait()

		for n := range 8 {
			key := fmt.Sprintf("vinom:maze:c%d", n)
			got, err := store.Get(ctx, key)
			require.NoError(t, err)
			assert.Equal(t, []byte(key), got)
		}
	})
}

func TestMemory(t *testing.T) {
	runStoreContract(t, NewMemory())

	t.Run("Values are copied", func(t *testing.T) {
		m := NewMemory()
		value := []byte("abc")
		require.NoError(t, m.Put(context.Background(), "k", value))
		value[0] = 'x'

		got, err := m.Get(context.Background(), "k")
		require.NoError(t, err)
		assert.Equal(t, []byte("abc"), got)
	})
}

func TestFile(t *testing.T) {
	store, err := NewFile(t.TempDir())
	require.NoError(t, err)
	runStoreContract(t, store)

	t.Run("Canceled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		assert.ErrorIs(t, store.Put(ctx, "k", nil), context.Canceled)
	})
}

func TestRedis(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer client.Close()

	runStoreContract(t, NewRedis(client))

	t.Run("TTL and prefix", func(t *testing.T) {
		store := NewRedis(client, WithTTL(time.Minute), WithPrefix("test:"))
		require.NoError(t, store.Put(context.Background(), "ttl", []byte("v")))

		assert.True(t, mr.Exists("test:ttl"))
		assert.Equal(t, time.Minute, mr.TTL("test:ttl"))

		mr.FastForward(2 * time.Minute)
		_, err := store.Get(context.Background(), "ttl")
		assert.ErrorIs(t, err, i.ErrNotFound)
	})

	t.Run("Lock released after write", func(t *testing.T) {
		store := NewRedis(client)
		require.NoError(t, store.Put(context.Background(), "locked", []byte("v")))
		assert.False(t, mr.Exists("locked"+lockSuffix))
	})

	t.Run("Lock released when context is canceled after write", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()

		hooked := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer hooked.Close()
		hooked.AddHook(cancelAfterSet{key: "canceled", cancel: cancel})

		store := NewRedis(hooked)
		require.NoError(t, store.Put(ctx, "canceled", []byte("v")))
		assert.ErrorIs(t, ctx.Err(), context.Canceled)
		assert.True(t, mr.Exists("canceled"))
		assert.False(t, mr.Exists("canceled"+lockSuffix))
	})
}

// cancelAfterSet cancels a context once the SET of key has been applied.
type cancelAfterSet struct {
	key    string
	cancel context.CancelFunc
}

func (h cancelAfterSet) DialHook(next redis.DialHook) redis.DialHook {
	return next
}

func (h cancelAfterSet) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		err := next(ctx, cmd)
		if args := cmd.Args(); cmd.Name() == "set" && len(args) > 1 && args[1] == h.key {
			h.cancel()
		}
		return err
	}
}

func (h cancelAfterSet) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}
