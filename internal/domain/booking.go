package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Column names shared by the input file and the exported projections.
const (
	ColBookingID     = "booking_id"
	ColHotel         = "hotel"
	ColIsCanceled    = "is_canceled"
	ColLeadTime      = "lead_time"
	ColArrivalYear   = "arrival_date_year"
	ColArrivalMonth  = "arrival_date_month"
	ColArrivalDay    = "arrival_date_day_of_month"
	ColWeekendNights = "stays_in_weekend_nights"
	ColWeekNights    = "stays_in_week_nights"
	ColAdults        = "adults"
	ColChildren      = "children"
	ColBabies        = "babies"
	ColTotalGuests   = "total_guests"
	ColStayDuration  = "stay_duration"
	ColTotalCost     = "total_cost"
)

// RequiredColumns must be present in the header of the source file.
var RequiredColumns = []string{
	ColHotel, ColIsCanceled, ColLeadTime,
	ColAdults, ColChildren, ColBabies,
	ColWeekendNights, ColWeekNights,
	ColArrivalYear, ColArrivalMonth, ColArrivalDay,
}

// RawBooking is one reservation as read from the source file.
// A nil field is a cell that was empty or an NA marker.
type RawBooking struct {
	Row           int // zero-based position in the input
	Hotel         *string
	IsCanceled    *int
	LeadTime      *int
	ArrivalYear   *int
	ArrivalMonth  *string // full English month name
	ArrivalDay    *int
	WeekendNights *int
	WeekNights    *int
	Adults        *int
	Children      *int
	Babies        *int
}

// Booking is a RawBooking plus derived fields.
type Booking struct {
	RawBooking
	ArrivalMonthNum *int
	TotalGuests     *int
	StayDuration    *int
	TotalCost       *decimal.Decimal // set only when costs are simulated
	BookingID       string
}

// Value returns the cell for col, or nil when the cell is null.
func (b Booking) Value(col string) (any, error) {
	switch col {
	case ColBookingID:
		if b.BookingID == "" {
			return nil, nil
		}
		return b.BookingID, nil
	case ColHotel:
		return strOrNil(b.Hotel), nil
	case ColIsCanceled:
		return intOrNil(b.IsCanceled), nil
	case ColLeadTime:
		return intOrNil(b.LeadTime), nil
	case ColArrivalYear:
		return intOrNil(b.ArrivalYear), nil
	case ColArrivalMonth:
		return intOrNil(b.ArrivalMonthNum), nil
	case ColArrivalDay:
		return intOrNil(b.ArrivalDay), nil
	case ColWeekendNights:
		return intOrNil(b.WeekendNights), nil
	case ColWeekNights:
		return intOrNil(b.WeekNights), nil
	case ColAdults:
		return intOrNil(b.Adults), nil
	case ColChildren:
		return intOrNil(b.Children), nil
	case ColBabies:
		return intOrNil(b.Babies), nil
	case ColTotalGuests:
		return intOrNil(b.TotalGuests), nil
	case ColStayDuration:
		return intOrNil(b.StayDuration), nil
	case ColTotalCost:
		if b.TotalCost == nil {
			return nil, nil
		}
		return *b.TotalCost, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, col)
}

func intOrNil(p *int) any {
	if p == nil {
		return nil
	}
	return *p
}

func strOrNil(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}
