// Package server exposes the analyzer over HTTP.
//
// Routes:
//
//	POST /v1/analyze  spec in (JSON, or YAML by Content-Type), report out
//	GET  /healthz     liveness and version
//	GET  /metrics     Prometheus exposition
//
// Errors are JSON {code, message}: 400 for undecodable bodies, 413 for
// oversized ones, 422 for specs that fail validation.
package server

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/ani18605/GRAPH-ANALYZER/buildinfo"
	"github.com/ani18605/GRAPH-ANALYZER/internal/service"
	"github.com/ani18605/GRAPH-ANALYZER/metrics"
	"github.com/ani18605/GRAPH-ANALYZER/specio"
)

// DefaultMaxBodyBytes bounds request bodies when Config leaves it zero.
const DefaultMaxBodyBytes int64 = 64 << 20

// HeaderCache reports HIT or MISS for /v1/analyze.
const HeaderCache = "X-Cache"

// Config wires the router's collaborators. Service is required.
type Config struct {
	Service      *service.Service
	Logger       *log.Logger         // nil discards
	Metrics      *metrics.Metrics    // nil disables HTTP metrics
	Gatherer     prometheus.Gatherer // nil disables /metrics
	MaxBodyBytes int64
}

type handler struct {
	svc     *service.Service
	logger  *log.Logger
	maxBody int64
}

// NewRouter builds the chi router.
func NewRouter(cfg Config) http.Handler {
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}
	h := &handler{svc: cfg.Service, logger: cfg.Logger, maxBody: cfg.MaxBodyBytes}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(chimiddleware.RealIP)
	r.Use(chimiddleware.Recoverer)
	r.Use(accessLog(cfg.Logger, cfg.Metrics))

	r.Get("/healthz", h.health)
	if cfg.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler(cfg.Gatherer))
	}
	r.Route("/v1", func(r chi.Router) {
		r.Post("/analyze", h.analyze)
	})

	return r
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok", "version": buildinfo.Resolved()})
}

func (h *handler) analyze(w http.ResponseWriter, r *http.Request) {
	// 1. Decode.
	in := specio.FormatJSON
	if isYAML(r.Header.Get("Content-Type")) {
		in = specio.FormatYAML
	}
	spec, err := specio.ReadSpec(http.MaxBytesReader(w, r.Body, h.maxBody), in)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, service.ErrCodeInvalidInput, "request body too large")
			return
		}
		writeError(w, http.StatusBadRequest, service.ErrCodeInvalidInput, err.Error())
		return
	}

	// 2. Analyze.
	res, err := h.svc.Analyze(r.Context(), spec)
	if err != nil {
		code := service.GetCode(err)
		status := statusFor(code)
		if status == http.StatusInternalServerError {
			h.logger.Error("analysis failed", "err", err, "request_id", RequestID(r.Context()))
		}
		writeError(w, status, code, service.UserMessage(err))
		return
	}

	// 3. Encode.
	if res.Cached {
		w.Header().Set(HeaderCache, "HIT")
	} else {
		w.Header().Set(HeaderCache, "MISS")
	}
	if isYAML(r.Header.Get("Accept")) {
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		if err := specio.WriteReport(w, res.Report, specio.FormatYAML); err != nil {
			h.logger.Warn("write response", "err", err)
		}
		return
	}
	writeJSON(w, http.StatusOK, res.Report)
}

func statusFor(code service.Code) int {
	switch code {
	case service.ErrCodeInvalidInput:
		return http.StatusUnprocessableEntity
	case service.ErrCodeCanceled:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func isYAML(mediaType string) bool {
	return strings.Contains(mediaType, "yaml")
}

type errorBody struct {
	Code    service.Code `json:"code"`
	Message string       `json:"message"`
}

func writeError(w http.ResponseWriter, status int, code service.Code, msg string) {
	if code == "" {
		code = service.ErrCodeInternal
	}
	writeJSON(w, status, errorBody{Code: code, Message: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
