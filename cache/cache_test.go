package cache_test

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ani18605/GRAPH-ANALYZER/cache"
	"github.com/ani18605/GRAPH-ANALYZER/core"
)

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := cache.NewNullCache()

	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, data)
	assert.NoError(t, c.Delete(ctx, "k"))
	assert.NoError(t, c.Clear(ctx))
	assert.NoError(t, c.Close())
}

func TestFileCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	_, ok, err := c.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, c.Set(ctx, "k", []byte("payload"), 0))
	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("payload"), data)

	require.NoError(t, c.Delete(ctx, "k"))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
	assert.NoError(t, c.Delete(ctx, "k"))
}

func TestFileCache_Expiry(t *testing.T) {
	ctx := context.Background()
	c, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Millisecond))
	time.Sleep(10 * time.Millisecond)

	_, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileCache_Clear(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	c, err := cache.NewFileCache(dir)
	require.NoError(t, err)

	for _, k := range []string{"a", "b", "c"} {
		require.NoError(t, c.Set(ctx, k, []byte(k), 0))
	}
	require.NoError(t, c.Clear(ctx))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
	_, ok, err := c.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestReportKey(t *testing.T) {
	spec := core.Spec{NodeCount: 2, RawEdges: []core.RawEdge{{From: 0, To: 1}}}

	k1 := cache.ReportKey(spec, "kruskal", -1)
	assert.Equal(t, k1, cache.ReportKey(spec, "kruskal", -1))
	assert.Regexp(t, `^report:v1:[0-9a-f]{64}$`, k1)
	assert.NotEqual(t, k1, cache.ReportKey(spec, "prim", -1))
	assert.NotEqual(t, k1, cache.ReportKey(spec, "kruskal", 0))

	other := spec
	other.Directed = true
	assert.NotEqual(t, k1, cache.ReportKey(other, "kruskal", -1))
}

func TestOpen(t *testing.T) {
	c, err := cache.Open(cache.BackendNone, "", cache.RedisOptions{})
	require.NoError(t, err)
	assert.IsType(t, &cache.NullCache{}, c)

	c, err = cache.Open(cache.BackendFile, t.TempDir(), cache.RedisOptions{})
	require.NoError(t, err)
	assert.IsType(t, &cache.FileCache{}, c)

	c, err = cache.Open(cache.BackendRedis, "", cache.RedisOptions{Addr: "127.0.0.1:6379"})
	require.NoError(t, err)
	assert.IsType(t, &cache.RedisCache{}, c)
	require.NoError(t, c.Close())

	_, err = cache.Open("memcached", "", cache.RedisOptions{})
	assert.ErrorIs(t, err, cache.ErrUnknownBackend)
}

func TestRedisCache_Unreachable(t *testing.T) {
	c := cache.NewRedisCache(cache.RedisOptions{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond})
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_, ok, err := c.Get(ctx, "k")
	assert.Error(t, err)
	assert.False(t, ok)
}

// TestRedisCache_Live runs against a real server when GRAPHALYZE_TEST_REDIS_ADDR is set.
func TestRedisCache_Live(t *testing.T) {
	addr := os.Getenv("GRAPHALYZE_TEST_REDIS_ADDR")
	if addr == "" {
		t.Skip("GRAPHALYZE_TEST_REDIS_ADDR not set")
	}
	ctx := context.Background()
	c := cache.NewRedisCache(cache.RedisOptions{Addr: addr, Prefix: "graphalyze-test:"})
	defer c.Close()
	require.NoError(t, c.Ping(ctx))

	require.NoError(t, c.Set(ctx, "k", []byte("v"), time.Minute))
	data, ok, err := c.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), data)

	require.NoError(t, c.Clear(ctx))
	_, ok, err = c.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

type countingHooks struct {
	mu                        sync.Mutex
	hits, misses, sets, fails int
}

func (h *countingHooks) OnCacheHit(context.Context)  { h.mu.Lock(); h.hits++; h.mu.Unlock() }
func (h *countingHooks) OnCacheMiss(context.Context) { h.mu.Lock(); h.misses++; h.mu.Unlock() }
func (h *countingHooks) OnCacheSet(context.Context, int) {
	h.mu.Lock()
	h.sets++
	h.mu.Unlock()
}
func (h *countingHooks) OnCacheError(context.Context, string) {
	h.mu.Lock()
	h.fails++
	h.mu.Unlock()
}

func TestInstrumented(t *testing.T) {
	ctx := context.Background()
	fc, err := cache.NewFileCache(t.TempDir())
	require.NoError(t, err)
	h := &countingHooks{}
	c := cache.Instrumented(fc, h)

	_, _, _ = c.Get(ctx, "k")
	require.NoError(t, c.Set(ctx, "k", []byte("v"), 0))
	_, _, _ = c.Get(ctx, "k")

	broken := cache.Instrumented(cache.NewRedisCache(cache.RedisOptions{Addr: "127.0.0.1:1", DialTimeout: 100 * time.Millisecond}), h)
	defer broken.Close()
	_, _, err = broken.Get(ctx, "k")
	assert.Error(t, err)

	assert.Equal(t, 1, h.hits)
	assert.Equal(t, 1, h.misses)
	assert.Equal(t, 1, h.sets)
	assert.Equal(t, 1, h.fails)
	assert.Same(t, fc, cache.Instrumented(fc, nil))
}
