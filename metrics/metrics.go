package metrics

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ani18605/GRAPH-ANALYZER/analyzer"
	"github.com/ani18605/GRAPH-ANALYZER/cache"
	"github.com/ani18605/GRAPH-ANALYZER/core"
)

const namespace = "graphalyze"

// Result labels of AnalysesTotal.
const (
	ResultSuccess = "success"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Event labels of CacheEvents.
const (
	CacheHit   = "hit"
	CacheMiss  = "miss"
	CacheSet   = "set"
	CacheError = "error"
)

var durationBuckets = []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30}

// Metrics holds every collector.
type Metrics struct {
	AnalysesTotal    *prometheus.CounterVec
	AnalysisDuration prometheus.Histogram
	StageDuration    *prometheus.HistogramVec
	GraphNodes       prometheus.Histogram
	GraphEdges       prometheus.Histogram
	CacheEvents      *prometheus.CounterVec
	CacheBytes       prometheus.Counter
	HTTPRequests     *prometheus.CounterVec
	HTTPDuration     *prometheus.HistogramVec
}

// New creates and registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)

	return &Metrics{
		AnalysesTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Analyses by result (success, invalid, error).",
		}, []string{"result"}),
		AnalysisDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Wall time of one analysis.",
			Buckets:   durationBuckets,
		}),
		StageDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time per analysis stage.",
			Buckets:   durationBuckets,
		}, []string{"stage"}),
		GraphNodes: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_nodes",
			Help:      "Node count of analyzed graphs.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 6),
		}),
		GraphEdges: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "graph_edges",
			Help:      "Normalized edge count of analyzed graphs.",
			Buckets:   prometheus.ExponentialBuckets(1, 10, 7),
		}),
		CacheEvents: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_events_total",
			Help:      "Report cache events (hit, miss, set, error).",
		}, []string{"event"}),
		CacheBytes: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cache_written_bytes_total",
			Help:      "Bytes written to the report cache.",
		}),
		HTTPRequests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by route and status code.",
		}, []string{"route", "code"}),
		HTTPDuration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   durationBuckets,
		}, []string{"route"}),
	}
}

// Handler serves the metrics gathered by g.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}

// OnAnalyzeStart records the graph size.
func (m *Metrics) OnAnalyzeStart(_ context.Context, nodeCount, edgeCount int) {
	m.GraphNodes.Observe(float64(nodeCount))
	m.GraphEdges.Observe(float64(edgeCount))
}

// OnStageComplete records the stage duration.
func (m *Metrics) OnStageComplete(_ context.Context, stage string, d time.Duration, _ error) {
	m.StageDuration.WithLabelValues(stage).Observe(d.Seconds())
}

// OnAnalyzeComplete counts the analysis by result.
func (m *Metrics) OnAnalyzeComplete(_ context.Context, d time.Duration, err error) {
	m.AnalysisDuration.Observe(d.Seconds())
	m.AnalysesTotal.WithLabelValues(resultLabel(err)).Inc()
}

func resultLabel(err error) string {
	switch {
	case err == nil:
		return ResultSuccess
	case core.IsValidation(err):
		return ResultInvalid
	default:
		return ResultError
	}
}

// OnCacheHit counts a hit.
func (m *Metrics) OnCacheHit(context.Context) { m.CacheEvents.WithLabelValues(CacheHit).Inc() }

// OnCacheMiss counts a miss.
func (m *Metrics) OnCacheMiss(context.Context) { m.CacheEvents.WithLabelValues(CacheMiss).Inc() }

// OnCacheSet counts a write and its size.
func (m *Metrics) OnCacheSet(_ context.Context, size int) {
	m.CacheEvents.WithLabelValues(CacheSet).Inc()
	m.CacheBytes.Add(float64(size))
}

// OnCacheError counts a failed backend call.
func (m *Metrics) OnCacheError(context.Context, string) {
	m.CacheEvents.WithLabelValues(CacheError).Inc()
}

// ObserveHTTP records one served request.
func (m *Metrics) ObserveHTTP(route string, code int, d time.Duration) {
	m.HTTPRequests.WithLabelValues(route, strconv.Itoa(code)).Inc()
	m.HTTPDuration.WithLabelValues(route).Observe(d.Seconds())
}

var (
	_ analyzer.Hooks = (*Metrics)(nil)
	_ cache.Hooks    = (*Metrics)(nil)
)
