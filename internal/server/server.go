// Package server exposes plan building and page rendering over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/huangsam/dashviz/core"
	"github.com/huangsam/dashviz/internal/contract"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

const (
	requestTimeout  = 30 * time.Second
	shutdownTimeout = 10 * time.Second
	maxBodyBytes    = 2 << 20
)

// Server serves the dashviz HTTP API.
type Server struct {
	cfg         *contract.Config
	logger      logrus.FieldLogger
	metrics     *Metrics
	plannerOpts []core.PlannerOption
}

// Option configures a Server.
type Option func(*Server)

// WithPlannerOptions adds options applied to every per-request planner.
func WithPlannerOptions(opts ...core.PlannerOption) Option {
	return func(s *Server) { s.plannerOpts = append(s.plannerOpts, opts...) }
}

// New creates a server for the validated config.
func New(cfg *contract.Config, logger logrus.FieldLogger, opts ...Option) *Server {
	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: NewMetrics(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Router builds the HTTP handler with all middleware and routes.
func (s *Server) Router() http.Handler {
	origins := s.cfg.CORSOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.observe, middleware.Recoverer)
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type"},
		ExposedHeaders: []string{"Content-Length"},
		MaxAge:         300,
	}))

	r.Route("/api", func(ar chi.Router) {
		ar.Post("/plan", s.handlePlan)
		ar.Post("/render", s.handleRender)
		ar.Get("/labels", s.handleLabels)
	})
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
	return r
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.WithField("addr", s.cfg.Addr).Info("Listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return errors.Wrap(err, "server stopped")
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.logger.Info("Shutting down")
	return errors.Wrap(srv.Shutdown(shutdownCtx), "graceful shutdown failed")
}

// observe records metrics and a log line per request.
func (s *Server) observe(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		elapsed := time.Since(start)
		s.metrics.ObserveRequest(route, r.Method, status, elapsed.Seconds())
		s.requestLogger(r).WithFields(logrus.Fields{
			"status":   status,
			"duration": elapsed,
		}).Debug("Handled request")
	})
}

func (s *Server) requestLogger(r *http.Request) logrus.FieldLogger {
	return s.logger.WithFields(logrus.Fields{
		"request_id": middleware.GetReqID(r.Context()),
		"method":     r.Method,
		"path":       r.URL.Path,
	})
}

func (s *Server) planner(logger logrus.FieldLogger) *core.Planner {
	opts := append([]core.PlannerOption{core.WithLogger(logger)}, s.plannerOpts...)
	return core.NewPlanner(opts...)
}
