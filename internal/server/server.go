// Package server exposes the cutting-plan engine and the saved
// configuration library over a JSON HTTP API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"

	"github.com/piwi3910/TrimCut/internal/engine"
	"github.com/piwi3910/TrimCut/internal/store"
)

// Options configures a Server. Store may be nil, in which case the
// configuration routes answer 503. A nil Cache disables plan caching and a
// zero RateLimit disables rate limiting.
type Options struct {
	Store     *store.Store
	Optimizer *engine.Optimizer
	Logger    *slog.Logger
	Metrics   *Metrics
	Cache     *PlanCache
	RateLimit float64 // requests per second
	RateBurst int
}

// Server holds the gin engine and its dependencies.
type Server struct {
	store     *store.Store
	optimizer *engine.Optimizer
	logger    *slog.Logger
	metrics   *Metrics
	cache     *PlanCache
	router    *gin.Engine
}

// New builds a Server and registers all routes.
func New(opts Options) *Server {
	s := &Server{
		store:     opts.Store,
		optimizer: opts.Optimizer,
		logger:    opts.Logger,
		metrics:   opts.Metrics,
		cache:     opts.Cache,
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.optimizer == nil {
		s.optimizer = &engine.Optimizer{Logger: s.logger}
	}
	if s.metrics == nil {
		s.metrics = NewMetrics()
	}

	r := gin.New()
	r.Use(gin.Recovery(), requestLogger(s.logger), httpMetrics(s.metrics, "/metrics", "/healthz"))
	if opts.RateLimit > 0 {
		burst := opts.RateBurst
		if burst <= 0 {
			burst = int(opts.RateLimit) + 1
		}
		r.Use(rateLimit(rate.NewLimiter(rate.Limit(opts.RateLimit), burst), s.logger, "/metrics", "/healthz"))
	}

	r.GET("/healthz", s.health)
	r.GET("/metrics", gin.WrapH(s.metrics.Handler()))

	api := r.Group("/api/v1")
	api.POST("/plan", s.plan)
	api.POST("/compare", s.compare)
	api.POST("/import/csv", s.importCSV)
	api.GET("/configs", s.listConfigs)
	api.POST("/configs", s.saveConfig)
	api.GET("/configs/:name", s.getConfig)
	api.DELETE("/configs/:name", s.deleteConfig)
	api.POST("/configs/:name/plan", s.planSaved)

	s.router = r
	return s
}

// Handler returns the HTTP handler, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run listens on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	s.logger.Info("http server shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http server shutdown: %w", err)
	}
	return nil
}
