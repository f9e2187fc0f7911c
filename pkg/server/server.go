package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/server/handlers"
	"mercator-hq/callisto/pkg/store"
	"mercator-hq/callisto/pkg/telemetry/metrics"
)

// Server is the Callisto HTTP API server.
type Server struct {
	cfg     *config.Config
	httpSrv *http.Server
	logger  *slog.Logger
}

// New assembles the server from its dependencies. The store may be nil when
// analysis history is disabled.
func New(cfg *config.Config, collector *metrics.Collector, st *store.Store, logger *slog.Logger) *Server {
	registry := handlers.NewModelRegistry()
	modelHandler := handlers.NewModelHandler(registry, cfg, collector, st, logger)

	limiter := newAnalysisLimiter(cfg.Server.MaxConcurrentAnalyses)

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/models", withAnalysisLimit(limiter, modelHandler.Upload))
	mux.HandleFunc("GET /api/v1/models/{id}", withAnalysisLimit(limiter, modelHandler.Get))
	mux.HandleFunc("POST /api/v1/models/{id}/validate", withAnalysisLimit(limiter, modelHandler.Validate))
	mux.HandleFunc("GET /healthz", handlers.Healthz)
	mux.HandleFunc("GET /readyz", handlers.Readyz)
	if cfg.Telemetry.Metrics.Enabled {
		mux.Handle("GET "+cfg.Telemetry.Metrics.Path, collector.Handler())
	}

	var handler http.Handler = mux
	handler = withCORS(cfg.Server.CORS, handler)
	handler = withLogging(logger.With("component", "server"), handler)
	handler = withRequestID(handler)

	return &Server{
		cfg: cfg,
		httpSrv: &http.Server{
			Addr:         cfg.Server.ListenAddress,
			Handler:      handler,
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
			IdleTimeout:  cfg.Server.IdleTimeout,
		},
		logger: logger.With("component", "server"),
	}
}

// Run serves until the context is cancelled, then shuts down gracefully
// within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", "address", s.httpSrv.Addr)
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := s.httpSrv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
