package app

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_ontology/internal/adapters/observability"
	"hotel_ontology/internal/domain"
)

type Options struct {
	CostSimulation bool
	Seed           uint64
}

type IngestionService struct {
	src  domain.BookingSource
	sink domain.ProjectionSink
	opts Options
}

func NewIngestionService(src domain.BookingSource, sink domain.ProjectionSink, opts Options) *IngestionService {
	return &IngestionService{src: src, sink: sink, opts: opts}
}

// Run loads, enriches, validates and exports the bookings. Every check runs
// before the first file is written, so a failed run exports nothing.
func (s *IngestionService) Run(ctx context.Context) (Report, error) {
	var rep Report

	// 1) Load
	raw, err := stage("load", func() ([]domain.RawBooking, error) { return s.src.Load(ctx) })
	if err != nil {
		return rep, fmt.Errorf("load bookings: %w", err)
	}
	rep.Loaded = len(raw)
	observability.ObserveLoaded(len(raw))
	log.Info().Int("rows", len(raw)).Msg("bookings loaded")

	// 2) Null-safety on children
	clean, filled := Sanitize(raw)
	rep.ChildrenFilled = filled
	observability.ObserveFilled(domain.ColChildren, filled)
	if filled > 0 {
		log.Info().Int("filled", filled).Str("column", domain.ColChildren).Msg("missing values set to 0")
	}

	// 3) Derived columns (and simulated cost, one draw per row in input order)
	var sim *CostSimulator
	if s.opts.CostSimulation {
		sim = NewCostSimulator(NewSeededJitter(s.opts.Seed))
	}
	bookings, _ := stage("derive", func() ([]domain.Booking, error) { return Derive(clean, sim), nil })

	// 4) Identifier uniqueness
	if err := CheckUniqueIDs(bookings); err != nil {
		return rep, err
	}
	rep.UniqueIDs = len(bookings)
	log.Info().Int("unique", len(bookings)).Msg("booking ids distinct")

	// 5) Projections + null audit
	projections, err := stage("validate", func() ([]domain.Projection, error) {
		ps, err := Project(bookings, Projections(s.opts.CostSimulation)...)
		if err != nil {
			return nil, err
		}
		return ps, CheckNullFree(ps)
	})
	if err != nil {
		return rep, err
	}

	// 6) Export
	for _, p := range projections {
		res, err := stage("export", func() (domain.ExportResult, error) { return s.sink.Write(ctx, p) })
		if err != nil {
			return rep, fmt.Errorf("export %s: %w", p.Name, err)
		}
		observability.ObserveExported(p.Name, res.Rows)
		log.Info().
			Str("projection", res.Name).
			Str("path", res.Path).
			Int("rows", res.Rows).
			Int("columns", res.Columns).
			Msg("projection exported")
		rep.Exports = append(rep.Exports, res)
	}
	return rep, nil
}

func stage[T any](name string, fn func() (T, error)) (T, error) {
	start := time.Now()
	v, err := fn()
	observability.ObserveStage(name, time.Since(start))
	return v, err
}
