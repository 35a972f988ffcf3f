package services

import (
	"math"
	"time"

	"orion-pms/constants"
)

// RateEngine computes the recommended nightly rate for a prospective stay.
// It is a pricing oracle only: stop-sell, min-stay and availability checks
// live in the calendar and availability services and must be run separately
// before a sale is confirmed.
type RateEngine struct {
	Calendar RateLookup
	Units    BaseRateSource
}

func NewRateEngine(calendar RateLookup, units BaseRateSource) *RateEngine {
	return &RateEngine{Calendar: calendar, Units: units}
}

// RecommendedRate combines the calendar (or default) base rate with season,
// demand and occupancy factors, then the weekend uplift, rounded half-up to
// two decimals. today is the reference date for the demand lead-time bucket,
// injected so the computation stays pure.
func (e *RateEngine) RecommendedRate(unitType string, checkIn time.Time, lengthOfStay int, currentOccupancy float64, today time.Time) (float64, error) {
	if lengthOfStay < 1 {
		return 0, ErrInvalidRange
	}

	base, err := e.Units.DefaultBaseRate(unitType)
	if err != nil {
		return 0, err
	}
	rd, err := e.Calendar.Lookup(unitType, checkIn)
	if err != nil {
		return 0, err
	}
	if rd != nil {
		base = rd.Rate
	}

	optimal := base *
		SeasonFactor(checkIn) *
		DemandFactor(DaysBetween(today, checkIn)) *
		OccupancyFactor(currentOccupancy)

	if IsWeekend(checkIn) {
		optimal *= constants.EngineWeekendMultiplier
	}

	return RoundRate(optimal), nil
}

// SeasonFactor: high season Dec-Feb, shoulder Jun/Jul/Nov, low otherwise.
func SeasonFactor(checkIn time.Time) float64 {
	switch checkIn.Month() {
	case time.December, time.January, time.February:
		return 1.5
	case time.June, time.July, time.November:
		return 1.2
	default:
		return 0.9
	}
}

// DemandFactor buckets the booking lead time. Past check-in dates fall into
// the last-minute bucket.
func DemandFactor(daysUntilCheckIn int) float64 {
	switch {
	case daysUntilCheckIn <= 7:
		return 1.8
	case daysUntilCheckIn <= 30:
		return 1.3
	default:
		return 1.0
	}
}

// OccupancyFactor prices against current occupancy; inputs outside [0, 1]
// are clamped.
func OccupancyFactor(occupancy float64) float64 {
	if occupancy > 1 {
		occupancy = 1
	}
	if occupancy < 0 {
		occupancy = 0
	}
	switch {
	case occupancy >= 0.9:
		return 1.6
	case occupancy >= 0.7:
		return 1.3
	case occupancy >= 0.5:
		return 1.1
	default:
		return 0.95
	}
}

// RoundRate rounds a positive amount to two decimals, half-up.
func RoundRate(v float64) float64 {
	return math.Floor(v*100+0.5) / 100
}
