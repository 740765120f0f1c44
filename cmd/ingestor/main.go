package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"hotel_ontology/internal/adapters/csvfile"
	"hotel_ontology/internal/adapters/manifest"
	"hotel_ontology/internal/adapters/observability"
	"hotel_ontology/internal/app"
	"hotel_ontology/internal/shared"
)

func main() {
	cfg, err := shared.Load()

	// 1) initialize global logger (console in dev, JSON otherwise)
	log.Logger = observability.NewLogger(cfg.AppEnv, os.Stderr)
	if err != nil {
		log.Fatal().Err(err).Msg("config load failed")
	}
	runID := uuid.NewString()
	log.Logger = log.With().Str("run_id", runID).Logger()

	// run returns only after its deferred cleanup, so Fatal below cannot skip it
	if err := run(context.Background(), cfg, runID, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("ingestion failed")
	}
	log.Info().Msg("ingestion completed")
}

func run(ctx context.Context, cfg shared.Config, runID string, stdout io.Writer) error {
	log.Info().
		Str("input", cfg.InputPath).
		Str("out_dir", cfg.OutputDir).
		Bool("cost_simulation", cfg.CostSimulation).
		Uint64("seed", cfg.Seed).
		Msg("ingestor starting")

	comma, err := cfg.Comma()
	if err != nil {
		return err
	}

	reg := observability.InitRegistry()
	if cfg.MetricsAddr != "" {
		srv := observability.Serve(cfg.MetricsAddr, reg)
		defer observability.Shutdown(srv)
	}

	ing := app.NewIngestionService(
		csvfile.NewReader(cfg.InputPath, comma),
		csvfile.NewWriter(cfg.OutputDir, comma),
		app.Options{CostSimulation: cfg.CostSimulation, Seed: cfg.Seed},
	)

	rep, err := ing.Run(ctx)
	observability.ObserveRun(err)
	flushMetrics(cfg.MetricsTextfile, reg)
	if err != nil {
		return err
	}

	if err := rep.Print(stdout); err != nil {
		log.Warn().Err(err).Msg("print summary failed")
	}

	if cfg.ManifestPath != "" {
		m := manifest.New(runID, cfg.InputPath, cfg.Seed, cfg.CostSimulation, rep.Loaded, rep.Exports, time.Now())
		if err := manifest.Write(cfg.ManifestPath, m); err != nil {
			return fmt.Errorf("write manifest %s: %w", cfg.ManifestPath, err)
		}
		log.Info().Str("path", cfg.ManifestPath).Msg("manifest written")
	}
	return nil
}

func flushMetrics(path string, reg *prometheus.Registry) {
	if path == "" {
		return
	}
	if err := observability.WriteTextfile(path, reg); err != nil {
		log.Warn().Err(err).Str("path", path).Msg("metrics textfile write failed")
	}
}
