package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInvalidateResourceOnlyTouchesOneTenant(t *testing.T) {
	c := New(16, time.Minute)
	a, b := uuid.New(), uuid.New()

	c.Set(Key("ativos", a, "p1"), 1)
	c.Set(Key("ativos", a, "p2"), 2)
	c.Set(Key("ativos", b, "p1"), 3)
	c.Set(Key("chamados", a, "p1"), 4)

	assert.Equal(t, 2, c.InvalidateResource(a, "ativos"))

	_, ok := c.Get(Key("ativos", a, "p1"))
	assert.False(t, ok)
	_, ok = c.Get(Key("ativos", b, "p1"))
	assert.True(t, ok)
	_, ok = c.Get(Key("chamados", a, "p1"))
	assert.True(t, ok)
}

func TestInvalidateTenant(t *testing.T) {
	c := New(16, time.Minute)
	a, b := uuid.New(), uuid.New()
	c.Set(Key("ativos", a, ""), 1)
	c.Set(Key("os", a, ""), 2)
	c.Set(Key("os", b, ""), 3)

	assert.Equal(t, 2, c.InvalidateTenant(a))
	assert.Equal(t, 1, c.Len())
}

func TestInvalidateEverywhere(t *testing.T) {
	c := New(16, time.Minute)
	a, b := uuid.New(), uuid.New()
	c.Set(Key("templates", a, "all"), 1)
	c.Set(Key("templates", b, "all"), 2)
	c.Set(Key("ativos", a, ""), 3)

	assert.Equal(t, 2, c.InvalidateEverywhere("templates"))
	_, ok := c.Get(Key("ativos", a, ""))
	assert.True(t, ok)
}

func TestFetchLoadsOnceAndCaches(t *testing.T) {
	c := New(16, time.Minute)
	key := Key("ativos", uuid.New(), "")
	var calls int32

	load := func(context.Context) ([]string, error) {
		atomic.AddInt32(&calls, 1)
		time.Sleep(10 * time.Millisecond)
		return []string{"elevador"}, nil
	}

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			v, err := Fetch(context.Background(), c, key, load)
			assert.NoError(t, err)
			assert.Equal(t, []string{"elevador"}, v)
		}()
	}
	wg.Wait()
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	_, err := Fetch(context.Background(), c, key, load)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestFetchDoesNotCacheErrors(t *testing.T) {
	c := New(16, time.Minute)
	key := Key("os", uuid.New(), "")
	boom := errors.New("db down")

	_, err := Fetch(context.Background(), c, key, func(context.Context) (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)

	v, err := Fetch(context.Background(), c, key, func(context.Context) (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestFetchNilCacheAlwaysLoads(t *testing.T) {
	v, err := Fetch(context.Background(), nil, "k", func(context.Context) (string, error) { return "x", nil })
	require.NoError(t, err)
	assert.Equal(t, "x", v)
}

func TestEntriesExpire(t *testing.T) {
	c := New(16, 20*time.Millisecond)
	key := Key("ativos", uuid.New(), "")
	c.Set(key, 1)
	assert.Eventually(t, func() bool {
		_, ok := c.Get(key)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestFetchAfterInvalidateIgnoresLoadInFlight(t *testing.T) {
	c := New(16, time.Minute)
	tenant := uuid.New()
	key := Key("ativos", tenant, "")

	var mu sync.Mutex
	db := "old"
	read := func() string {
		mu.Lock()
		defer mu.Unlock()
		return db
	}

	started := make(chan struct{})
	release := make(chan struct{})
	first := make(chan string, 1)
	go func() {
		v, err := Fetch(context.Background(), c, key, func(context.Context) (string, error) {
			v := read()
			close(started)
			<-release
			return v, nil
		})
		assert.NoError(t, err)
		first <- v
	}()
	<-started

	mu.Lock()
	db = "new"
	mu.Unlock()
	c.InvalidateResource(tenant, "ativos")

	v, err := Fetch(context.Background(), c, key, func(context.Context) (string, error) { return read(), nil })
	require.NoError(t, err)
	assert.Equal(t, "new", v)

	close(release)
	assert.Equal(t, "old", <-first)

	cached, ok := c.Get(key)
	require.True(t, ok)
	assert.Equal(t, "new", cached)

	v, err = Fetch(context.Background(), c, key, func(context.Context) (string, error) { return "unused", nil })
	require.NoError(t, err)
	assert.Equal(t, "new", v)
}

func TestFetchInvalidatedLoadIsNotStored(t *testing.T) {
	c := New(16, time.Minute)
	tenant := uuid.New()
	key := Key("os", tenant, "")

	v, err := Fetch(context.Background(), c, key, func(context.Context) (int, error) {
		c.InvalidateTenant(tenant)
		return 1, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, ok := c.Get(key)
	assert.False(t, ok)
}

func TestFetchCancelledCallerDoesNotFailOthers(t *testing.T) {
	c := New(16, time.Minute)
	key := Key("chamados", uuid.New(), "")

	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once
	load := func(ctx context.Context) (string, error) {
		once.Do(func() { close(started) })
		select {
		case <-release:
			return "ok", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	ctx, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := Fetch(ctx, c, key, load)
		firstErr <- err
	}()
	<-started

	second := make(chan string, 1)
	go func() {
		v, err := Fetch(context.Background(), c, key, load)
		assert.NoError(t, err)
		second <- v
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	assert.Equal(t, "ok", <-second)
}
