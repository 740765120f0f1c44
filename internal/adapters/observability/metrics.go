package observability

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
)

var (
	RowsLoaded = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "hotel_ontology", Name: "rows_loaded_total", Help: "Input rows loaded."},
	)
	CellsFilled = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel_ontology", Name: "cells_filled_total", Help: "Missing cells replaced by a default."},
		[]string{"column"},
	)
	RowsExported = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel_ontology", Name: "rows_exported_total", Help: "Rows written per projection."},
		[]string{"projection"},
	)
	NullCells = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{Namespace: "hotel_ontology", Name: "null_cells", Help: "Null cells found by the last audit."},
		[]string{"projection"},
	)
	StageLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "hotel_ontology", Name: "stage_duration_seconds",
			Help:    "Pipeline stage duration seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"stage"},
	)
	Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "hotel_ontology", Name: "runs_total", Help: "Pipeline runs by outcome."},
		[]string{"status"}, // status: ok|failed
	)
)

func InitRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(RowsLoaded, CellsFilled, RowsExported, NullCells, StageLatency, Runs)
	return reg
}

func MetricsHandler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}

// Router exposes /metrics and /healthz.
func Router(reg *prometheus.Registry) http.Handler {
	m := chi.NewRouter()
	m.Use(chimw.Recoverer)
	m.Use(requestLogger)
	m.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(200); _, _ = w.Write([]byte("ok")) })
	m.Method(http.MethodGet, "/metrics", MetricsHandler(reg))
	return m
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("path", r.URL.Path).
			Str("method", r.Method).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Msg("http_request")
	})
}

// Serve starts the metrics listener in the background. Stop it with Shutdown.
func Serve(addr string, reg *prometheus.Registry) *http.Server {
	srv := &http.Server{
		Addr:              addr,
		Handler:           Router(reg),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info().Str("addr", addr).Msg("metrics server listening")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error().Err(err).Msg("metrics server failed")
		}
	}()
	return srv
}

func Shutdown(srv *http.Server) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Warn().Err(err).Msg("metrics server shutdown")
	}
}

// WriteTextfile dumps the registry for the node_exporter textfile collector.
func WriteTextfile(path string, reg *prometheus.Registry) error {
	return prometheus.WriteToTextfile(path, reg)
}

func ObserveLoaded(rows int) { RowsLoaded.Add(float64(rows)) }

func ObserveFilled(column string, n int) { CellsFilled.WithLabelValues(column).Add(float64(n)) }

func ObserveExported(projection string, rows int) {
	RowsExported.WithLabelValues(projection).Add(float64(rows))
}

func ObserveNulls(projection string, n int) { NullCells.WithLabelValues(projection).Set(float64(n)) }

func ObserveStage(stage string, dur time.Duration) {
	StageLatency.WithLabelValues(stage).Observe(dur.Seconds())
}

func ObserveRun(err error) {
	if err != nil {
		Runs.WithLabelValues("failed").Inc()
		return
	}
	Runs.WithLabelValues("ok").Inc()
}
