package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/agbru/fibduality/internal/analog"
	"github.com/agbru/fibduality/internal/config"
	apperrors "github.com/agbru/fibduality/internal/errors"
	"github.com/agbru/fibduality/internal/service"
)

// Timeouts groups the HTTP server timeout settings.
type Timeouts struct {
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// DefaultServerTimeouts returns conservative defaults: the simulation
// itself is fast, so short request deadlines are appropriate.
func DefaultServerTimeouts() Timeouts {
	return Timeouts{
		ReadTimeout:     5 * time.Second,
		WriteTimeout:    10 * time.Second,
		IdleTimeout:     60 * time.Second,
		RequestTimeout:  5 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

// Option customizes a Server.
type Option func(*Server)

// WithLogger replaces the default logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(s *Server) { s.logger = logger }
}

// WithService replaces the default simulation service, mainly for tests.
func WithService(svc service.Service) Option {
	return func(s *Server) { s.service = svc }
}

// WithTimeouts replaces the default timeout settings.
func WithTimeouts(t Timeouts) Option {
	return func(s *Server) { s.timeouts = t }
}

// Server wraps the standard http.Server with the simulation service,
// structured logging, and Prometheus metrics.
type Server struct {
	cfg        config.AppConfig
	service    service.Service
	httpServer *http.Server
	logger     zerolog.Logger
	metrics    *Metrics
	timeouts   Timeouts
}

// NewServer creates a Server with the given configuration. Each server
// owns its simulator: the analog core is single-threaded, and request
// handlers serialize access to it through the service.
//
// Parameters:
//   - cfg: The application configuration (port, table size, noise).
//   - opts: Optional functional options (e.g., WithLogger).
//
// Returns:
//   - *Server: A pointer to the initialized Server.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		cfg:      cfg,
		logger:   zerolog.New(os.Stdout).With().Str("component", "server").Timestamp().Logger(),
		metrics:  NewMetrics(),
		timeouts: DefaultServerTimeouts(),
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.service == nil {
		simOpts := []analog.Option{analog.WithLogger(s.logger)}
		if cfg.NoiseStd == 0 {
			simOpts = append(simOpts, analog.WithNoiseSource(analog.Noiseless()))
		}
		s.service = newSerializedService(
			service.NewSimulationService(analog.New(cfg.ToSimulatorOptions(), simOpts...)),
		)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/multiply", s.wrapWithMiddleware(s.handleMultiply))
	mux.HandleFunc("/api/v1/gcd", s.wrapWithMiddleware(s.handleGCD))
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
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

// Handler returns the server's root handler, for tests.
func (s *Server) Handler() http.Handler { return s.httpServer.Handler }

// wrapWithMiddleware applies the middleware chain to a handler:
// logging, then metrics, then the handler itself.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	return wrapped
}

// Start runs the HTTP server until the context is canceled, then shuts
// down gracefully.
//
// Returns:
//   - error: An error if the server fails to start or shuts down
//     unexpectedly; nil after a clean shutdown.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	go func() {
		s.logger.Info().
			Str("addr", s.httpServer.Addr).
			Int("sim_table_size", s.cfg.SimTableSize).
			Float64("noise_std", s.cfg.NoiseStd).
			Msg("starting server")
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		s.logger.Info().Msg("shutdown signal received, stopping server")
	case err := <-errCh:
		return apperrors.NewServerError("server failed to start", err)
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return apperrors.NewServerError("graceful shutdown failed", err)
	}
	s.logger.Info().Msg("server stopped")
	return nil
}
