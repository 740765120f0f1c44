package app

import (
	"math/rand/v2"
	"strconv"

	"github.com/shopspring/decimal"

	"hotel_ontology/internal/domain"
)

const (
	defaultBaseRate = 150.0
	cancellationFee = 0.20
	jitterLow       = 0.85
	jitterHigh      = 1.15
)

// Nightly base rates (USD) per hotel type.
var baseRates = map[string]float64{
	"Resort Hotel": 220,
	"City Hotel":   130,
}

// Peak Jun-Aug, shoulder Apr-May and Sep-Oct, low Nov-Mar.
var seasonMultipliers = map[int]float64{
	1: 0.80, 2: 0.80, 3: 0.85,
	4: 0.95, 5: 1.00,
	6: 1.20, 7: 1.35, 8: 1.30,
	9: 1.10, 10: 0.95,
	11: 0.85, 12: 0.90,
}

// BaseRate returns the nightly rate for a hotel type, or the default rate.
func BaseRate(hotel *string) float64 {
	if hotel != nil {
		if r, ok := baseRates[*hotel]; ok {
			return r
		}
	}
	return defaultBaseRate
}

// SeasonMultiplier returns the demand multiplier for a month number, 1.0 if unknown.
func SeasonMultiplier(month *int) float64 {
	if month != nil {
		if m, ok := seasonMultipliers[*month]; ok {
			return m
		}
	}
	return 1.0
}

type JitterSource interface {
	Jitter() float64
}

// SeededJitter draws uniformly from [0.85, 1.15) using a PCG generator.
type SeededJitter struct{ rng *rand.Rand }

func NewSeededJitter(seed uint64) *SeededJitter {
	return &SeededJitter{rng: rand.New(rand.NewPCG(seed, 0))}
}

func (s *SeededJitter) Jitter() float64 {
	return jitterLow + (jitterHigh-jitterLow)*s.rng.Float64()
}

// CostSimulator prices bookings. It draws exactly one jitter per Quote call,
// so reproducing a run requires quoting bookings in input order.
type CostSimulator struct {
	jitter JitterSource
}

func NewCostSimulator(j JitterSource) *CostSimulator {
	return &CostSimulator{jitter: j}
}

// Quote returns the simulated total cost of b, or nil when its stay length is unknown.
func (s *CostSimulator) Quote(b domain.Booking) *decimal.Decimal {
	jitter := s.jitter.Jitter()
	if b.StayDuration == nil {
		return nil
	}
	nightly := BaseRate(b.Hotel) * SeasonMultiplier(b.ArrivalMonthNum) * jitter
	canceled := b.IsCanceled != nil && *b.IsCanceled == 1
	cost := Price(nightly, *b.StayDuration, canceled)
	return &cost
}

// Price bills at least one night and charges 20% of the full cost on cancellation.
func Price(nightly float64, stay int, canceled bool) decimal.Decimal {
	nights := max(stay, 1)
	full := roundCents(nightly * float64(nights))
	if !canceled {
		return full
	}
	f, _ := full.Float64()
	return roundCents(f * cancellationFee)
}

// roundCents rounds half-to-even on the exact binary value of v.
func roundCents(v float64) decimal.Decimal {
	return decimal.RequireFromString(strconv.FormatFloat(v, 'f', 2, 64))
}
