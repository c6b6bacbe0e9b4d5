// Package api implements the lightbox sidecar HTTP service. UI hosts post
// layout requests and get back computed geometry; the heavy work stays off
// their thread and behind the pipeline's caches.
package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/mkoester/lightbox/pkg/pipeline"
)

// DefaultAddr is the default listen address.
const DefaultAddr = "localhost:8391"

// Server is the sidecar HTTP service.
type Server struct {
	runner *pipeline.Runner
	logger *log.Logger
	addr   string
}

// Config configures the server.
type Config struct {
	Addr   string
	Runner *pipeline.Runner
	Logger *log.Logger
}

// NewServer creates a server. A nil runner gets a cacheless default; a nil
// logger uses the package default.
func NewServer(cfg Config) *Server {
	if cfg.Runner == nil {
		cfg.Runner = pipeline.NewRunner(nil, nil, cfg.Logger)
	}
	if cfg.Logger == nil {
		cfg.Logger = log.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	registerHooks()
	return &Server{
		runner: cfg.Runner,
		logger: cfg.Logger,
		addr:   cfg.Addr,
	}
}

// Router builds the chi route tree.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(s.requestID)
	r.Use(metricsMiddleware)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", metricsHandler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/layout", s.handleLayout)
		r.Post("/window", s.handleWindow)
	})

	return r
}

// ListenAndServe runs the server until ctx is canceled, then drains
// in-flight requests.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.addr,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

type ctxKey string

const requestIDKey ctxKey = "request_id"

// requestID tags every request with a uuid for log correlation.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.NewString()
		w.Header().Set("X-Request-ID", id)
		ctx := context.WithValue(r.Context(), requestIDKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// reqID extracts the request id from a context.
func reqID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}
