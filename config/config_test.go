package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ani18605/GRAPH-ANALYZER/config"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))

	return p
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "kruskal", cfg.Engine.MSTMethod)
	assert.Equal(t, -1, cfg.Engine.NegativeCycleSource)
	assert.Equal(t, config.DefaultMaxNodes, cfg.Limits.MaxNodes)
	assert.Equal(t, 2000, cfg.Limits.MaxNodes)
	assert.Equal(t, "file", cfg.Cache.Backend)
	assert.Equal(t, 24*time.Hour, cfg.Cache.TTL.Duration)
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_File(t *testing.T) {
	p := writeFile(t, `
[log]
level = "debug"

[engine]
parallel = true
mst_method = "prim"
negative_cycle_source = 0

[limits]
max_nodes = 1000
max_edges = 5000
max_body_bytes = 1024

[cache]
backend = "redis"
ttl = "90s"

[cache.redis]
addr = "cache:6379"
db = 2
prefix = "g:"

[server]
addr = "127.0.0.1:9000"
read_timeout = "5s"
`)
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvCacheBackend, "")
	t.Setenv(config.EnvRedisAddr, "")
	t.Setenv(config.EnvServerAddr, "")

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Engine.Parallel)
	assert.Equal(t, "prim", cfg.Engine.MSTMethod)
	assert.Equal(t, 0, cfg.Engine.NegativeCycleSource)
	assert.Equal(t, config.Limits{MaxNodes: 1000, MaxEdges: 5000, MaxBodyBytes: 1024}, cfg.Limits)
	assert.Equal(t, "redis", cfg.Cache.Backend)
	assert.Equal(t, 90*time.Second, cfg.Cache.TTL.Duration)
	assert.Equal(t, config.Redis{Addr: "cache:6379", DB: 2, Prefix: "g:"}, cfg.Cache.Redis)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Second, cfg.Server.ReadTimeout.Duration)
	// untouched keys keep defaults
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout.Duration)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	p := writeFile(t, "[log]\nlevel = \"warn\"\n")
	t.Setenv(config.EnvLogLevel, "ERROR")
	t.Setenv(config.EnvCacheBackend, "none")
	t.Setenv(config.EnvRedisAddr, "redis:1234")
	t.Setenv(config.EnvServerAddr, ":7070")

	cfg, err := config.Load(p)
	require.NoError(t, err)

	assert.Equal(t, "error", cfg.Log.Level)
	assert.Equal(t, "none", cfg.Cache.Backend)
	assert.Equal(t, "redis:1234", cfg.Cache.Redis.Addr)
	assert.Equal(t, ":7070", cfg.Server.Addr)
}

func TestLoad_Errors(t *testing.T) {
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvCacheBackend, "")
	t.Setenv(config.EnvRedisAddr, "")
	t.Setenv(config.EnvServerAddr, "")

	tests := []struct {
		name string
		body string
		want error
	}{
		{"unknown key", "[engine]\nmst = \"prim\"\n", config.ErrUnknownKeys},
		{"bad level", "[log]\nlevel = \"loud\"\n", config.ErrInvalid},
		{"bad method", "[engine]\nmst_method = \"boruvka\"\n", config.ErrInvalid},
		{"bad source", "[engine]\nnegative_cycle_source = -2\n", config.ErrInvalid},
		{"too many nodes", "[limits]\nmax_nodes = 200001\n", config.ErrInvalid},
		{"bad backend", "[cache]\nbackend = \"memcached\"\n", config.ErrInvalid},
		{"redis without addr", "[cache]\nbackend = \"redis\"\n[cache.redis]\naddr = \"\"\n", config.ErrInvalid},
		{"file without dir", "[cache]\ndir = \"\"\n", config.ErrInvalid},
		{"empty server addr", "[server]\naddr = \"\"\n", config.ErrInvalid},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := config.Load(writeFile(t, tc.body))
			require.Error(t, err)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestLoad_BadDuration(t *testing.T) {
	_, err := config.Load(writeFile(t, "[cache]\nttl = \"soon\"\n"))
	assert.Error(t, err)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "nope.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_NoFileUsesDefaults(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	t.Setenv(config.EnvLogLevel, "")
	t.Setenv(config.EnvCacheBackend, "")
	t.Setenv(config.EnvRedisAddr, "")
	t.Setenv(config.EnvServerAddr, "")

	cfg, err := config.Load("")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Engine, cfg.Engine)
}
