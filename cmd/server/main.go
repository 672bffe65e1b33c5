package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/bodegalabs/recuento/backend/internal/analytics"
	"github.com/bodegalabs/recuento/backend/internal/api"
	"github.com/bodegalabs/recuento/backend/internal/config"
	"github.com/bodegalabs/recuento/backend/internal/dataset"
	"github.com/bodegalabs/recuento/backend/internal/format"
	"github.com/bodegalabs/recuento/backend/internal/metrics"
	"github.com/bodegalabs/recuento/backend/internal/source"
	"github.com/bodegalabs/recuento/backend/pkg/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Configure logger
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	// Set log level
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.Warn().Str("level", cfg.LogLevel).Msg("invalid log level, using info")
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	log.Info().
		Str("port", cfg.Port).
		Strs("allowed_origins", cfg.AllowedOrigins).
		Str("log_level", cfg.LogLevel).
		Msg("starting recuento backend server")

	// Create dataset store
	store := dataset.NewStore()

	// Preload a workbook from disk when configured
	if cfg.DataFile != "" {
		if err := loadDataFile(store, cfg.DataFile); err != nil {
			log.Warn().Err(err).Str("file", cfg.DataFile).Msg("could not load initial dataset")
		}
	}

	// Create handlers
	datasetHandler := api.NewDatasetHandler(store, cfg.MaxUploadBytes(), log.Logger)
	reportHandler := api.NewReportHandler(store, log.Logger)
	exportHandler := api.NewExportHandler(store, log.Logger)

	// Create router
	r := chi.NewRouter()

	// Add middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Collector())
	r.Use(middleware.CORS(cfg.AllowedOrigins))

	// Register public routes
	r.Get("/health", healthHandler)
	r.Get("/metrics", metrics.Get().Handler())

	r.Route("/api", func(r chi.Router) {
		r.Post("/datasets", datasetHandler.HandleUpload)
		r.Get("/datasets/current", datasetHandler.HandleCurrent)
		r.Get("/report", reportHandler.HandleReport)
		r.Get("/report/kpis", reportHandler.HandleKPIs)
		r.Get("/report/contributors", reportHandler.HandleContributors)
		r.Get("/report/breakdowns", reportHandler.HandleBreakdowns)
		r.Get("/export", exportHandler.HandleExport)
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info().Msgf("server listening on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shut down the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down server...")

	// Create shutdown context with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Attempt graceful shutdown
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server stopped")
}

// loadDataFile ingests a workbook from disk so the server starts with a
// dataset already in place.
func loadDataFile(store *dataset.Store, path string) error {
	table, err := source.ReadFile(path)
	if err != nil {
		return err
	}
	ds, err := dataset.Build(filepath.Base(path), table.Headers, table.Rows)
	if err != nil {
		return err
	}
	store.Set(ds)
	metrics.Get().RecordDatasetLoaded(len(ds.Records), ds.DegradedCells)

	kpis := analytics.ComputeKPIs(ds.Records)
	log.Info().
		Str("dataset_id", ds.ID).
		Str("file", filepath.Base(path)).
		Int("rows", len(ds.Records)).
		Int("distinct_inventories", kpis.DistinctInventories).
		Str("total_hours", format.Number(kpis.TotalHours, 2)).
		Msg("initial dataset loaded")
	return nil
}

// healthHandler handles health check requests
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","service":"recuento-backend"}`)
}
