package app

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"

	"hotel_ontology/internal/domain"
)

var monthNumbers = map[string]int{
	"January": 1, "February": 2, "March": 3, "April": 4,
	"May": 5, "June": 6, "July": 7, "August": 8,
	"September": 9, "October": 10, "November": 11, "December": 12,
}

// MonthNumber maps a full English month name to 1..12.
func MonthNumber(name string) (int, bool) {
	n, ok := monthNumbers[name]
	return n, ok
}

// BookingID hashes "row|lead|year|day" with SHA-256 and returns the hex digest.
// The row position keeps ids distinct when the other three fields repeat.
func BookingID(row int, leadTime, year, day *int) string {
	key := strings.Join([]string{
		strconv.Itoa(row),
		intText(leadTime),
		intText(year),
		intText(day),
	}, "|")
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])
}

// Derive enriches each record in input order. When sim is nil no cost is set.
func Derive(in []domain.RawBooking, sim *CostSimulator) []domain.Booking {
	out := make([]domain.Booking, len(in))
	for i, r := range in {
		b := domain.Booking{RawBooking: r}
		if r.ArrivalMonth != nil {
			if m, ok := MonthNumber(*r.ArrivalMonth); ok {
				b.ArrivalMonthNum = &m
			}
		}
		b.TotalGuests = sumInts(r.Adults, r.Children, r.Babies)
		b.StayDuration = sumInts(r.WeekendNights, r.WeekNights)
		b.BookingID = BookingID(r.Row, r.LeadTime, r.ArrivalYear, r.ArrivalDay)
		if sim != nil {
			b.TotalCost = sim.Quote(b)
		}
		out[i] = b
	}
	return out
}

// sumInts adds the values; a nil addend makes the sum nil.
func sumInts(vs ...*int) *int {
	total := 0
	for _, v := range vs {
		if v == nil {
			return nil
		}
		total += *v
	}
	return &total
}

func intText(p *int) string {
	if p == nil {
		return "nan"
	}
	return strconv.Itoa(*p)
}
