// Package runtime wires configuration, logging, the core application, and the
// HTTP server into a runnable process.
package runtime

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/receiptworks/points-service/internal/api/httpserver"
	app "github.com/receiptworks/points-service/internal/app"
	"github.com/receiptworks/points-service/internal/app/httpapi"
	"github.com/receiptworks/points-service/internal/app/metrics"
	"github.com/receiptworks/points-service/internal/config"
	"github.com/receiptworks/points-service/internal/middleware"
	"github.com/receiptworks/points-service/pkg/logger"
)

// Application wires core dependencies and manages the HTTP server lifecycle.
type Application struct {
	cfg        *config.Config
	log        *logger.Logger
	core       *app.Application
	httpServer *httpserver.Server
}

// NewApplication constructs a new application instance with default wiring.
func NewApplication() (*Application, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.LoggingConfig{
		Level:      cfg.Logging.Level,
		Format:     cfg.Logging.Format,
		Output:     cfg.Logging.Output,
		FilePrefix: cfg.Logging.FilePrefix,
	})

	core, err := app.New(app.Stores{}, log)
	if err != nil {
		return nil, fmt.Errorf("build application: %w", err)
	}

	handler := buildHandler(cfg, log, core)
	httpSrv := httpserver.New(cfg.Server, log, handler)

	return &Application{
		cfg:        cfg,
		log:        log,
		core:       core,
		httpServer: httpSrv,
	}, nil
}

// buildHandler assembles the middleware chain around the API router.
func buildHandler(cfg *config.Config, log *logger.Logger, core *app.Application) http.Handler {
	handler := httpapi.NewHandler(core)

	handler = middleware.LoggingMiddleware(log)(handler)

	if cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log)
		limiter.StartCleanup(time.Minute)
		handler = limiter.Handler(handler)
	}

	handler = middleware.NewCORSMiddleware(cfg.CORS.AllowedOrigins).Handler(handler)
	handler = metrics.InstrumentHandler(handler)

	return handler
}

// Run starts the core services and the HTTP server, blocking until the
// context is cancelled or the server fails.
func (a *Application) Run(ctx context.Context) error {
	if err := a.core.Start(ctx); err != nil {
		return fmt.Errorf("start services: %w", err)
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Infof("HTTP server listening on %s", a.httpServer.Addr())
		if err := a.httpServer.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return err
	}
}

// Shutdown gracefully stops the HTTP server and the core services.
func (a *Application) Shutdown(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := a.httpServer.Shutdown(shutdownCtx); err != nil {
		a.log.WithError(err).Warn("error shutting down HTTP server")
	}

	return a.core.Stop(shutdownCtx)
}
