// Package server provides the HTTP server exposing the multiplication
// engine as a small JSON API with Prometheus metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/ntmul/internal/config"
	apperrors "github.com/agbru/ntmul/internal/errors"
	"github.com/agbru/ntmul/internal/logging"
)

// MaxRequestBodyBytes bounds the size of an API request body. Operands
// can legitimately be tens of millions of digits; anything beyond the
// engine's own size limit is rejected before it is even decoded.
const MaxRequestBodyBytes = 128 << 20

// Server represents the HTTP server for the multiplier API. It wraps
// the standard http.Server and adds application-specific configuration
// and graceful shutdown capabilities.
type Server struct {
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	shutdownSignal chan os.Signal
	metrics        *Metrics
	timeouts       Timeouts
}

// NewServer creates a new Server instance with the given configuration.
// It initializes the HTTP server with timeouts and a request multiplexer.
//
// Parameters:
//   - cfg: The application configuration (port, engine options).
//   - opts: Optional functional options for customizing the server
//     (e.g., WithLogger).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server"),
		shutdownSignal: make(chan os.Signal, 1),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
	}

	for _, opt := range opts {
		opt(s)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/multiply", s.wrapWithMiddleware(s.handleMultiply))
	mux.HandleFunc("/api/v1/square", s.wrapWithMiddleware(s.handleSquare))
	mux.HandleFunc("/healthz", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}

	return s
}

// wrapWithMiddleware applies the middleware chain to a handler:
// logging, then metrics, then the handler itself.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	return wrapped
}

// Start initializes and starts the HTTP server. It listens for
// incoming requests on the configured port and handles system signals
// (SIGINT, SIGTERM) to ensure a graceful shutdown.
//
// Returns:
//   - error: An error if the server fails to start or shuts down unexpectedly.
func (s *Server) Start() error {
	signal.Notify(s.shutdownSignal, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting server",
			logging.String("addr", s.httpServer.Addr),
			logging.Int("parallel_threshold", s.cfg.ParallelThreshold))
		s.logger.Println("Available endpoints:")
		s.logger.Println("  POST /api/v1/multiply")
		s.logger.Println("  POST /api/v1/square")
		s.logger.Println("  GET  /healthz")
		s.logger.Println("  GET  /metrics")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-s.shutdownSignal:
		s.logger.Println("Shutdown signal received, initiating graceful shutdown...")
	case err := <-errCh:
		return apperrors.NewServerError("server failed to start", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return apperrors.NewServerError("failed to gracefully shutdown server", err)
	}

	s.logger.Println("Server stopped gracefully")
	return nil
}

// Shutdown triggers a graceful shutdown programmatically, as if a
// termination signal had been received. Useful for tests.
func (s *Server) Shutdown() {
	select {
	case s.shutdownSignal <- syscall.SIGTERM:
	default:
	}
}
