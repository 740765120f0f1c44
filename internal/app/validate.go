package app

import (
	"github.com/rs/zerolog/log"

	"hotel_ontology/internal/adapters/observability"
	"hotel_ontology/internal/domain"
)

// CheckUniqueIDs fails when two bookings share a booking_id.
func CheckUniqueIDs(bookings []domain.Booking) error {
	seen := make(map[string]struct{}, len(bookings))
	for _, b := range bookings {
		seen[b.BookingID] = struct{}{}
	}
	if len(seen) != len(bookings) {
		return &domain.DuplicateIDError{Unique: len(seen), Rows: len(bookings)}
	}
	return nil
}

// CheckNullFree audits every projection and fails on the first one holding nulls.
func CheckNullFree(projections []domain.Projection) error {
	for _, p := range projections {
		nulls := p.NullCount()
		observability.ObserveNulls(p.Name, nulls)
		if nulls != 0 {
			return &domain.NullValuesError{Projection: p.Name, Nulls: nulls}
		}
		log.Info().
			Str("projection", p.Name).
			Int("rows", len(p.Rows)).
			Int("nulls", nulls).
			Msg("null audit ok")
	}
	return nil
}
