// Package server provides the HTTP API for moviefy recommendations.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/jonathan/moviefy/internal/types"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// Recommender is the engine surface the API depends on.
type Recommender interface {
	Recommend(ctx context.Context, raw map[string]any, topN int) []types.Recommendation
	Rebuild(ctx context.Context) error
	Stats() types.CatalogStats
}

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	engine     Recommender
	topN       int
	logger     zerolog.Logger
}

// Config holds server configuration
type Config struct {
	Port        int
	CORSOrigins []string
	RateLimit   int // requests per RateWindow per client IP; 0 disables
	RateWindow  time.Duration
	DefaultTopN int // used when a request omits top_n
}

// New creates a new server instance
//
//nolint:gocritic // zerolog.Logger is passed by value by convention
func New(cfg Config, engine Recommender, logger zerolog.Logger) *Server {
	s := &Server{
		engine: engine,
		topN:   cfg.DefaultTopN,
		logger: logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api", s.handleHealth)
	mux.HandleFunc("GET /api/", s.handleHealth)
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /api/recommendations", s.handleRecommendations)
	mux.HandleFunc("GET /api/index", s.handleIndexStats)
	mux.HandleFunc("POST /api/index/rebuild", s.handleIndexRebuild)
	mux.Handle("GET /metrics", promhttp.Handler())

	var handler http.Handler = mux
	handler = s.withLogging(handler)
	handler = withCORS(cfg.CORSOrigins)(handler)
	handler = withRateLimit(cfg.RateLimit, cfg.RateWindow)(handler)
	handler = withRequestID(handler)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
	return s
}

// Handler returns the fully wrapped HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves until ctx is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.httpServer.Addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", s.httpServer.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("server starting")
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}

// withCORS wraps go-chi/cors. An empty origin list allows any origin.
func withCORS(origins []string) func(http.Handler) http.Handler {
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", requestIDHeader},
		ExposedHeaders: []string{requestIDHeader},
		MaxAge:         300,
	})
}

// withRateLimit limits requests per client IP with go-chi/httprate.
func withRateLimit(requests int, window time.Duration) func(http.Handler) http.Handler {
	if requests <= 0 || window <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(
		requests,
		window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusTooManyRequests, map[string]string{
				"error":   "rate_limit_exceeded",
				"message": "Rate limit exceeded. Please try again later.",
			})
		}),
	)
}
