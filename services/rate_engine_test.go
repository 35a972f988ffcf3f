package services

import (
	"errors"
	"testing"
	"time"

	"orion-pms/constants"
	"orion-pms/models"
)

func day(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(constants.DateLayout, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

type stubCalendar struct {
	days map[string]models.RateDay
}

func (s stubCalendar) Lookup(unitType string, date time.Time) (*models.RateDay, error) {
	rd, ok := s.days[unitType+"|"+DateOnly(date).Format(constants.DateLayout)]
	if !ok {
		return nil, nil
	}
	return &rd, nil
}

type stubUnits struct {
	rates map[string]float64
}

func (s stubUnits) DefaultBaseRate(unitType string) (float64, error) {
	rate, ok := s.rates[unitType]
	if !ok {
		return 0, ErrUnknownUnitType
	}
	return rate, nil
}

func newTestEngine(days map[string]models.RateDay) *RateEngine {
	return NewRateEngine(
		stubCalendar{days: days},
		stubUnits{rates: map[string]float64{
			"Standard": 250.00,
			"Luxo":     450.00,
			"Suite":    750.00,
		}},
	)
}

func TestRecommendedRateHolidayScenario(t *testing.T) {
	engine := newTestEngine(nil)

	// Dec 24 2024 is a Tuesday; booked >30 days out, occupancy 0.95.
	// 250 * 1.5 (season) * 1.0 (demand) * 1.6 (occupancy) = 600.00
	rate, err := engine.RecommendedRate("Standard", day(t, "2024-12-24"), 2, 0.95, day(t, "2024-10-01"))
	if err != nil {
		t.Fatalf("RecommendedRate: %v", err)
	}
	if rate != 600.00 {
		t.Fatalf("expected 600.00, got %v", rate)
	}
}

func TestRecommendedRateUsesCalendarOverride(t *testing.T) {
	engine := newTestEngine(map[string]models.RateDay{
		"Standard|2024-12-24": {UnitType: "Standard", Date: day(t, "2024-12-24"), Rate: 300.00},
	})

	rate, err := engine.RecommendedRate("Standard", day(t, "2024-12-24"), 2, 0.95, day(t, "2024-10-01"))
	if err != nil {
		t.Fatalf("RecommendedRate: %v", err)
	}
	if rate != 720.00 { // 300 * 1.5 * 1.0 * 1.6
		t.Fatalf("expected 720.00, got %v", rate)
	}
}

func TestRecommendedRateWeekendUplift(t *testing.T) {
	engine := newTestEngine(nil)
	today := day(t, "2025-01-02")

	// March is low season (0.9), both dates are >30 days out (1.0),
	// occupancy 0.6 gives 1.1.
	friday, err := engine.RecommendedRate("Standard", day(t, "2025-03-07"), 1, 0.6, today)
	if err != nil {
		t.Fatalf("friday: %v", err)
	}
	saturday, err := engine.RecommendedRate("Standard", day(t, "2025-03-08"), 1, 0.6, today)
	if err != nil {
		t.Fatalf("saturday: %v", err)
	}

	if friday != 247.50 {
		t.Fatalf("expected friday 247.50, got %v", friday)
	}
	// 247.5 * 1.25 = 309.375, half-up to 309.38
	if saturday != 309.38 {
		t.Fatalf("expected saturday 309.38, got %v", saturday)
	}
	if saturday < friday {
		t.Fatalf("weekend rate %v below weekday rate %v", saturday, friday)
	}
}

func TestRecommendedRateMonotonicInOccupancy(t *testing.T) {
	engine := newTestEngine(nil)
	today := day(t, "2025-01-02")
	checkIn := day(t, "2025-04-09")

	occupancies := []float64{0, 0.3, 0.49, 0.5, 0.69, 0.7, 0.89, 0.9, 1.0}
	prev := 0.0
	for i, occ := range occupancies {
		rate, err := engine.RecommendedRate("Suite", checkIn, 3, occ, today)
		if err != nil {
			t.Fatalf("occupancy %v: %v", occ, err)
		}
		if i > 0 && rate < prev {
			t.Fatalf("rate decreased from %v to %v when occupancy rose to %v", prev, rate, occ)
		}
		prev = rate
	}
}

func TestRecommendedRateValidation(t *testing.T) {
	engine := newTestEngine(nil)
	today := day(t, "2025-01-02")

	if _, err := engine.RecommendedRate("Standard", day(t, "2025-02-01"), 0, 0.5, today); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for zero nights, got %v", err)
	}
	if _, err := engine.RecommendedRate("Penthouse", day(t, "2025-02-01"), 1, 0.5, today); !errors.Is(err, ErrUnknownUnitType) {
		t.Fatalf("expected ErrUnknownUnitType, got %v", err)
	}
}

func TestSeasonFactor(t *testing.T) {
	cases := map[string]float64{
		"2024-12-15": 1.5,
		"2025-01-10": 1.5,
		"2025-02-28": 1.5,
		"2025-06-01": 1.2,
		"2025-07-20": 1.2,
		"2025-11-05": 1.2,
		"2025-03-15": 0.9,
		"2025-09-09": 0.9,
	}
	for date, want := range cases {
		if got := SeasonFactor(day(t, date)); got != want {
			t.Fatalf("SeasonFactor(%s) = %v, want %v", date, got, want)
		}
	}
}

func TestDemandFactor(t *testing.T) {
	cases := []struct {
		days int
		want float64
	}{
		{-5, 1.8}, // past check-in counts as last-minute
		{0, 1.8},
		{7, 1.8},
		{8, 1.3},
		{30, 1.3},
		{31, 1.0},
		{90, 1.0},
	}
	for _, tc := range cases {
		if got := DemandFactor(tc.days); got != tc.want {
			t.Fatalf("DemandFactor(%d) = %v, want %v", tc.days, got, tc.want)
		}
	}
}

func TestOccupancyFactor(t *testing.T) {
	cases := []struct {
		occ  float64
		want float64
	}{
		{-0.1, 0.95}, // clamped
		{0, 0.95},
		{0.49, 0.95},
		{0.5, 1.1},
		{0.69, 1.1},
		{0.7, 1.3},
		{0.89, 1.3},
		{0.9, 1.6},
		{1.0, 1.6},
		{1.2, 1.6}, // clamped
	}
	for _, tc := range cases {
		if got := OccupancyFactor(tc.occ); got != tc.want {
			t.Fatalf("OccupancyFactor(%v) = %v, want %v", tc.occ, got, tc.want)
		}
	}
}

func TestRoundRate(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{309.375, 309.38},
		{247.5, 247.5},
		{600.0, 600.0},
		{325.0, 325.0},
		{0.125, 0.13},
	}
	for _, tc := range cases {
		if got := RoundRate(tc.in); got != tc.want {
			t.Fatalf("RoundRate(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}
