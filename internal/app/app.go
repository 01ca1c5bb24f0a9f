package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/cryptopulse/config"
	"github.com/guttosm/cryptopulse/internal/api"
	"github.com/guttosm/cryptopulse/internal/recorder"
	"github.com/guttosm/cryptopulse/internal/service"
	"github.com/guttosm/cryptopulse/internal/store"
)

// openRecorder builds the upload audit recorder selected by configuration.
// Indirection for unit testing.
var openRecorder = func(cfg config.Config) (recorder.Recorder, error) {
	switch cfg.Audit.Driver {
	case "sqlite":
		return recorder.NewSQLite(cfg.Audit.SQLitePath)
	case "postgres":
		return recorder.NewPostgres(cfg.Postgres.URL)
	default:
		return recorder.NewNoop(), nil
	}
}

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, the service for out-of-band ingestion
// (directory preload), a cleanup function for graceful shutdown, and any
// error encountered during initialization.
//
// Responsibilities:
//   - Opens the configured upload audit recorder (noop, sqlite, or postgres).
//   - Creates the in-memory analytics store with the configured time zone.
//   - Creates the service layer with the symbol allow-list.
//   - Configures the Gin router with all API routes.
//   - Registers health and readiness probes.
//   - Provides a cleanup function to close resources.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - service.CryptoService: the upload/query service.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, service.CryptoService, func(), error) {
	// Load global configuration
	cfg := config.AppConfig

	// Open the audit backend (noop when AUDIT_DRIVER=none)
	rec, err := openRecorder(cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize audit recorder: %w", err)
	}

	// The single shared mutable state: the in-memory analytics store
	st := store.New(cfg.Analytics.Location)

	// Initialize service layer (validation + orchestration)
	svc := service.NewCryptoService(st, rec, cfg.Analytics.AllowedSymbols)

	// Initialize HTTP handler layer (business logic to HTTP mapping)
	handler := api.NewHandler(svc)

	// Setup Gin router with routes
	router := api.NewRouter(handler)

	// Register health and readiness probes
	healthHandler := api.NewHealthHandler(rec.Ping)
	healthHandler.Register(router)

	// Cleanup resources on shutdown
	cleanup := func() {
		_ = rec.Close()
	}

	return router, svc, cleanup, nil
}
