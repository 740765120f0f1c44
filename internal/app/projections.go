package app

import (
	"fmt"

	"hotel_ontology/internal/domain"
)

type ProjectionDef struct {
	Name    string
	Columns []string
}

var (
	BookingsCore = ProjectionDef{
		Name: "bookings_core",
		Columns: []string{
			domain.ColBookingID, domain.ColHotel, domain.ColIsCanceled,
			domain.ColLeadTime, domain.ColTotalGuests, domain.ColStayDuration,
		},
	}
	ArrivalMetadata = ProjectionDef{
		Name: "arrival_metadata",
		Columns: []string{
			domain.ColBookingID, domain.ColArrivalYear, domain.ColArrivalMonth,
			domain.ColArrivalDay, domain.ColWeekendNights,
		},
	}
	BookingFinancials = ProjectionDef{
		Name: "booking_financials",
		Columns: []string{
			domain.ColBookingID, domain.ColHotel, domain.ColIsCanceled,
			domain.ColStayDuration, domain.ColTotalCost,
		},
	}
)

// Projections returns the output set for the chosen variant.
func Projections(costSimulation bool) []ProjectionDef {
	if costSimulation {
		return []ProjectionDef{BookingsCore, ArrivalMetadata, BookingFinancials}
	}
	return []ProjectionDef{BookingsCore, ArrivalMetadata}
}

// Project selects each definition's columns from bookings, keeping row order.
func Project(bookings []domain.Booking, defs ...ProjectionDef) ([]domain.Projection, error) {
	out := make([]domain.Projection, 0, len(defs))
	for _, def := range defs {
		p := domain.Projection{
			Name:    def.Name,
			Columns: append([]string(nil), def.Columns...),
			Rows:    make([][]any, len(bookings)),
		}
		for i, b := range bookings {
			row := make([]any, len(def.Columns))
			for j, col := range def.Columns {
				v, err := b.Value(col)
				if err != nil {
					return nil, fmt.Errorf("projection %s: %w", def.Name, err)
				}
				row[j] = v
			}
			p.Rows[i] = row
		}
		out = append(out, p)
	}
	return out, nil
}
