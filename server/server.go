// Package server exposes the clustering pipeline over HTTP. It is a thin
// adapter: per request it stores the posted tabs, embeds them, runs the
// pipeline, names the clusters, and returns the export shape.
package server

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/klauspost/compress/gzhttp"
	"golang.org/x/time/rate"

	"github.com/hupe1980/tabgroup"
	"github.com/hupe1980/tabgroup/embedding"
	"github.com/hupe1980/tabgroup/model"
	"github.com/hupe1980/tabgroup/naming"
	"github.com/hupe1980/tabgroup/store"
)

// Service wires the pipeline and its collaborators behind a chi router.
type Service struct {
	pipeline *tabgroup.Pipeline
	embedder embedding.Embedder
	namer    naming.Namer
	logger   *tabgroup.Logger
	limiter  *rate.Limiter
	router   chi.Router
}

// Options configures a Service.
type Options struct {
	// RateLimit is the sustained requests-per-second budget; Burst the
	// instantaneous allowance. RateLimit == 0 disables limiting.
	RateLimit float64
	Burst     int

	// Logger defaults to a noop logger.
	Logger *tabgroup.Logger
}

// New creates a Service around the given pipeline and collaborators.
func New(pipeline *tabgroup.Pipeline, embedder embedding.Embedder, namer naming.Namer, opts Options) *Service {
	if opts.Logger == nil {
		opts.Logger = tabgroup.NoopLogger()
	}

	s := &Service{
		pipeline: pipeline,
		embedder: embedder,
		namer:    namer,
		logger:   opts.Logger,
		router:   chi.NewRouter(),
	}
	if opts.RateLimit > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.RateLimit), max(opts.Burst, 1))
	}

	s.setupRoutes()
	return s
}

// Handler returns the service's HTTP handler with response compression.
func (s *Service) Handler() http.Handler {
	return gzhttp.GzipHandler(s.router)
}

func (s *Service) setupRoutes() {
	s.router.Use(s.logRequests)
	s.router.Use(s.rateLimit)

	s.router.Post("/cluster", s.handleCluster)
	s.router.Get("/healthz", s.handleHealthz)
}

func (s *Service) handleHealthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleCluster accepts a JSON array of {id, name} tab records and returns a
// JSON array of cluster exports. An empty result is a 200 with []; any
// internal failure is a generic 500.
func (s *Service) handleCluster(w http.ResponseWriter, r *http.Request) {
	var tabs []model.Tab
	if err := json.NewDecoder(r.Body).Decode(&tabs); err != nil {
		writeError(w, http.StatusBadRequest, "request body must be a JSON array of {id, name} records")
		return
	}

	exports := []model.ClusterExport{}
	if len(tabs) == 0 {
		writeJSON(w, http.StatusOK, exports)
		return
	}

	ctx := r.Context()

	tabStore := store.New()
	tabStore.AddTabs(tabs)

	embeddings, err := embedding.EmbedTabs(ctx, s.embedder, tabs)
	if err != nil {
		s.logger.ErrorContext(ctx, "embedding failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}
	for _, e := range embeddings {
		tabStore.AddEmbedding(e)
	}

	result, err := s.pipeline.Run(ctx, embeddings)
	if err != nil {
		s.logger.ErrorContext(ctx, "clustering failed", "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}

	names, err := s.namer.NameClusters(ctx, result.Clusters, tabStore)
	if err != nil {
		s.logger.ErrorContext(ctx, "cluster naming failed", "run_id", result.RunID, "error", err)
		writeError(w, http.StatusInternalServerError, "an unexpected error occurred")
		return
	}
	naming.Apply(result.Clusters, names)

	for _, c := range result.Clusters {
		tabStore.AddCluster(c)
	}

	exports = append(exports, tabgroup.Export(result.Clusters, tabStore)...)
	writeJSON(w, http.StatusOK, exports)
}

func (s *Service) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			writeError(w, http.StatusTooManyRequests, "too many requests")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Service) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.InfoContext(r.Context(), "request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
