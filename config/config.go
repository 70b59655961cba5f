package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
)

// Environment overrides.
const (
	EnvLogLevel     = "GRAPHALYZE_LOG_LEVEL"
	EnvCacheBackend = "GRAPHALYZE_CACHE_BACKEND"
	EnvRedisAddr    = "GRAPHALYZE_REDIS_ADDR"
	EnvServerAddr   = "GRAPHALYZE_SERVER_ADDR"
)

// DefaultMaxNodes caps nodeCount for the CLI and server. The adjacency and
// distance matrices are dense, so memory grows with nodeCount². The hard
// ceiling stays core.MaxNodeCount; raise max_nodes towards it only on hosts
// that can hold several n² float64 buffers.
const DefaultMaxNodes = 2000

var (
	// ErrUnknownKeys is returned when the file holds keys no field accepts.
	ErrUnknownKeys = errors.New("config: unknown keys")

	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid")
)

// Config is the full settings tree.
type Config struct {
	Log    Log    `toml:"log"`
	Engine Engine `toml:"engine"`
	Limits Limits `toml:"limits"`
	Cache  Cache  `toml:"cache"`
	Server Server `toml:"server"`
}

// Log configures the root logger.
type Log struct {
	Level string `toml:"level" validate:"oneof=debug info warn error"`
}

// Engine mirrors the analyzer options.
type Engine struct {
	Parallel            bool   `toml:"parallel"`
	MSTMethod           string `toml:"mst_method" validate:"oneof=kruskal prim"`
	NegativeCycleSource int    `toml:"negative_cycle_source" validate:"gte=-1"`
}

// Limits bounds accepted input. Zero MaxEdges means unlimited.
type Limits struct {
	MaxNodes     int   `toml:"max_nodes" validate:"gte=0,lte=200000"`
	MaxEdges     int   `toml:"max_edges" validate:"gte=0"`
	MaxBodyBytes int64 `toml:"max_body_bytes" validate:"gt=0"`
}

// Cache selects and configures the report cache.
type Cache struct {
	Backend string   `toml:"backend" validate:"oneof=none file redis"`
	Dir     string   `toml:"dir"`
	TTL     Duration `toml:"ttl"`
	Redis   Redis    `toml:"redis"`
}

// Redis configures the redis backend.
type Redis struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db" validate:"gte=0"`
	Prefix   string `toml:"prefix"`
}

// Server configures the HTTP API.
type Server struct {
	Addr         string   `toml:"addr" validate:"required"`
	ReadTimeout  Duration `toml:"read_timeout"`
	WriteTimeout Duration `toml:"write_timeout"`
}

// Duration is a time.Duration written as "30s" or "2m" in TOML.
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Log:    Log{Level: "info"},
		Engine: Engine{MSTMethod: "kruskal", NegativeCycleSource: -1},
		Limits: Limits{MaxNodes: DefaultMaxNodes, MaxBodyBytes: 64 << 20},
		Cache: Cache{
			Backend: "file",
			Dir:     defaultCacheDir(),
			TTL:     Duration{24 * time.Hour},
			Redis:   Redis{Addr: "localhost:6379"},
		},
		Server: Server{
			Addr:         ":8080",
			ReadTimeout:  Duration{30 * time.Second},
			WriteTimeout: Duration{2 * time.Minute},
		},
	}
}

// DefaultPath is $XDG_CONFIG_HOME/graphalyze/config.toml (or the OS equivalent).
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "graphalyze", "config.toml")
}

func defaultCacheDir() string {
	dir, err := os.UserCacheDir()
	if err != nil {
		return filepath.Join(os.TempDir(), "graphalyze")
	}

	return filepath.Join(dir, "graphalyze")
}

// Load builds the effective configuration.
//
// Steps:
//  1. Start from Default().
//  2. Decode path; an empty path tries DefaultPath() and skips it if absent.
//  3. Apply environment overrides.
//  4. Validate.
func Load(path string) (*Config, error) {
	cfg := Default()

	// 2. File.
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if err := cfg.decodeFile(path, explicit); err != nil {
			return nil, err
		}
	}

	// 3-4. Environment, then validation.
	cfg.ApplyEnv(os.LookupEnv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) decodeFile(path string, explicit bool) error {
	md, err := toml.DecodeFile(path, c)
	if errors.Is(err, os.ErrNotExist) && !explicit {
		return nil
	}
	if err != nil {
		return fmt.Errorf("config: load %q: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)

		return fmt.Errorf("%w in %q: %s", ErrUnknownKeys, path, strings.Join(keys, ", "))
	}

	return nil
}

// ApplyEnv overrides fields from the GRAPHALYZE_* variables found by lookup.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}
	if v, ok := lookup(EnvCacheBackend); ok && v != "" {
		c.Cache.Backend = strings.ToLower(v)
	}
	if v, ok := lookup(EnvRedisAddr); ok && v != "" {
		c.Cache.Redis.Addr = v
	}
	if v, ok := lookup(EnvServerAddr); ok && v != "" {
		c.Server.Addr = v
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate checks field tags and the cross-field rules.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("%w: %s fails %q (got %v)", ErrInvalid, fe.Namespace(), fe.Tag(), fe.Value())
		}

		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch {
	case c.Cache.Backend == "file" && c.Cache.Dir == "":
		return fmt.Errorf("%w: cache.dir is required for the file backend", ErrInvalid)
	case c.Cache.Backend == "redis" && c.Cache.Redis.Addr == "":
		return fmt.Errorf("%w: cache.redis.addr is required for the redis backend", ErrInvalid)
	case c.Cache.TTL.Duration < 0:
		return fmt.Errorf("%w: cache.ttl must not be negative", ErrInvalid)
	}

	return nil
}
