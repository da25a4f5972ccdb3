// Package wellnestservice assembles and runs the wellness tracker HTTP
// service.
package wellnestservice

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/wellnest/wellnest/internal/api"
	"github.com/wellnest/wellnest/internal/config"
	"github.com/wellnest/wellnest/internal/factory"
	"github.com/wellnest/wellnest/internal/health"
	"github.com/wellnest/wellnest/internal/logger"
)

// Run starts the HTTP server and blocks until shutdown or error.
func Run() error {
	log := logger.New("wellnest-service")

	cfg, err := config.New()
	if err != nil {
		log.Error().Err(err).Msg("Failed to load configuration")
		return err
	}

	log.Info().
		Str("db_driver", cfg.DBDriver).
		Str("environment", string(cfg.Environment)).
		Int("http_port", cfg.HTTPPort).
		Msg("Wellness service starting")

	// Cancellable root context bound to SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	st, err := factory.NewStore(ctx, cfg, log)
	if err != nil {
		log.Error().Stack().Err(err).Msg("Store adapter unavailable")
		return err
	}

	if closer, ok := st.(io.Closer); ok {
		defer func() { _ = closer.Close() }()
	}

	router := api.NewRouter(st)

	// Health monitoring: probe the store and bind the aggregate to /api/health.
	interval := time.Duration(cfg.HealthIntervalSeconds) * time.Second
	probeTimeout := time.Duration(cfg.HealthProbeTimeoutSeconds) * time.Second
	var checkers []health.HealthChecker
	if p, ok := st.(health.HealthPinger); ok {
		storeChecker := health.NewChecker("store", p.HealthPing, log, probeTimeout)
		go storeChecker.Start(ctx, interval)
		checkers = append(checkers, storeChecker)
	}
	svcHealth := health.NewServiceHealthChecker(log, checkers...)
	go svcHealth.Start(ctx, interval)
	api.BindServiceHealth(svcHealth.IsHealthy)

	server := &http.Server{
		Addr:              cfg.GetHTTPAddr(),
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Int("port", cfg.HTTPPort).Msg("HTTP server starting")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("Shutting down server")
		ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctxShutdown); err != nil {
			log.Error().Stack().Err(err).Msg("Server forced to shutdown")
			return err
		}
		log.Info().Msg("Server exited")
		return nil
	case err := <-errCh:
		log.Error().Stack().Err(err).Msg("HTTP server failed")
		return fmt.Errorf("http server: %w", err)
	}
}
