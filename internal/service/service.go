// Package service runs analyses behind the report cache and input limits.
// Both the CLI and the HTTP server go through a Service.
package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ani18605/GRAPH-ANALYZER/analyzer"
	"github.com/ani18605/GRAPH-ANALYZER/cache"
	"github.com/ani18605/GRAPH-ANALYZER/core"
)

// Limits bounds accepted specs. Zero fields mean no extra bound beyond core.
type Limits struct {
	MaxNodes int
	MaxEdges int
}

// Options configures a Service.
type Options struct {
	Logger *log.Logger
	TTL    time.Duration
	Limits Limits
}

// Option mutates Options.
type Option func(*Options)

// WithLogger sets the logger; nil discards.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithTTL sets the cache entry lifetime; 0 never expires.
func WithTTL(ttl time.Duration) Option { return func(o *Options) { o.TTL = ttl } }

// WithLimits sets the input limits.
func WithLimits(l Limits) Option { return func(o *Options) { o.Limits = l } }

// Result is one served analysis.
type Result struct {
	Report *analyzer.Report
	Key    string
	Cached bool
}

// Service is safe for concurrent use when its Cache is.
type Service struct {
	engine *analyzer.Engine
	cache  cache.Cache
	opts   Options
}

// New builds a Service. A nil cache disables caching.
func New(engine *analyzer.Engine, c cache.Cache, opts ...Option) *Service {
	o := Options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if engine == nil {
		engine = analyzer.NewEngine()
	}

	return &Service{engine: engine, cache: c, opts: o}
}

// Analyze serves spec from the cache or runs the engine.
//
// Steps:
//  1. Enforce limits and validate; failures are INVALID_INPUT.
//  2. Look up the report; backend or decode failures degrade to a miss.
//  3. Run the engine.
//  4. Store the envelope; a failed write is logged only.
func (s *Service) Analyze(ctx context.Context, spec core.Spec) (*Result, error) {
	start := time.Now()
	logger := s.opts.Logger

	// 1. Input.
	if err := s.checkLimits(spec); err != nil {
		return nil, err
	}
	if err := core.Validate(spec); err != nil {
		return nil, Wrap(ErrCodeInvalidInput, err, "invalid graph spec")
	}

	// 2. Cache lookup.
	eo := s.engine.Options()
	key := cache.ReportKey(spec, eo.MSTMethod, eo.NegativeCycleSource)
	if rep, ok := s.lookup(ctx, key); ok {
		logger.Info("report served", "nodes", spec.NodeCount, "cached", true,
			"elapsed", time.Since(start).Round(time.Microsecond))
		return &Result{Report: rep, Key: key, Cached: true}, nil
	}

	// 3. Engine.
	rep, err := s.engine.Analyze(ctx, spec)
	if err != nil {
		return nil, classify(err)
	}

	// 4. Store.
	s.store(ctx, key, rep)
	logger.Info("report served", "nodes", spec.NodeCount, "cached", false,
		"elapsed", time.Since(start).Round(time.Microsecond))

	return &Result{Report: rep, Key: key}, nil
}

// ClearCache drops every cached report.
func (s *Service) ClearCache(ctx context.Context) error {
	if err := s.cache.Clear(ctx); err != nil {
		return Wrap(ErrCodeInternal, err, "clear cache")
	}

	return nil
}

// Close releases the cache.
func (s *Service) Close() error { return s.cache.Close() }

func (s *Service) checkLimits(spec core.Spec) error {
	l := s.opts.Limits
	if l.MaxNodes > 0 && spec.NodeCount > l.MaxNodes {
		return NewError(ErrCodeInvalidInput, "nodeCount %d exceeds limit %d", spec.NodeCount, l.MaxNodes)
	}
	if l.MaxEdges > 0 && len(spec.RawEdges) > l.MaxEdges {
		return NewError(ErrCodeInvalidInput, "%d edges exceed limit %d", len(spec.RawEdges), l.MaxEdges)
	}

	return nil
}

func (s *Service) lookup(ctx context.Context, key string) (*analyzer.Report, bool) {
	data, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.opts.Logger.Warn("cache read failed", "key", key, "err", err)
		return nil, false
	}
	if !ok {
		s.opts.Logger.Debug("cache miss", "key", key)
		return nil, false
	}

	rep := &analyzer.Report{}
	if err := rep.UnmarshalBinary(data); err != nil {
		s.opts.Logger.Warn("cache entry unreadable", "key", key, "err", err)
		_ = s.cache.Delete(ctx, key)
		return nil, false
	}
	s.opts.Logger.Debug("cache hit", "key", key)

	return rep, true
}

func (s *Service) store(ctx context.Context, key string, rep *analyzer.Report) {
	data, err := rep.MarshalBinary()
	if err != nil {
		s.opts.Logger.Warn("report encode failed", "key", key, "err", err)
		return
	}
	if err := s.cache.Set(ctx, key, data, s.opts.TTL); err != nil {
		s.opts.Logger.Warn("cache write failed", "key", key, "err", err)
	}
}

// classify maps engine errors onto codes.
func classify(err error) error {
	switch {
	case core.IsValidation(err), errors.Is(err, analyzer.ErrInvalidOptions):
		return Wrap(ErrCodeInvalidInput, err, "analysis rejected")
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return Wrap(ErrCodeCanceled, err, "analysis canceled")
	default:
		return Wrap(ErrCodeInternal, err, "analysis failed")
	}
}
