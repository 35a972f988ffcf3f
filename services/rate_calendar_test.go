package services

import (
	"strings"
	"testing"
	"time"

	"orion-pms/constants"
	"orion-pms/models"
)

func TestBuildRateDaysYearEnd(t *testing.T) {
	start := day(t, "2024-12-23") // Monday
	holidays := YearEndHolidays(start, 9)

	days := BuildRateDays("Standard", 250.00, start, 9, 1.3, holidays, 1.5)
	if len(days) != 9 {
		t.Fatalf("expected 9 days, got %d", len(days))
	}

	want := map[string]float64{
		"2024-12-23": 250.00, // Monday
		"2024-12-24": 375.00, // Tuesday, holiday
		"2024-12-25": 375.00, // Wednesday, holiday
		"2024-12-26": 250.00,
		"2024-12-27": 250.00,
		"2024-12-28": 325.00, // Saturday
		"2024-12-29": 325.00, // Sunday
		"2024-12-30": 250.00,
		"2024-12-31": 375.00, // Tuesday, holiday
	}
	for _, rd := range days {
		key := rd.Date.Format(constants.DateLayout)
		if rd.Rate != want[key] {
			t.Fatalf("rate for %s = %v, want %v", key, rd.Rate, want[key])
		}
		if rd.UnitType != "Standard" {
			t.Fatalf("unit type for %s = %q", key, rd.UnitType)
		}
		if rd.MinStay != constants.DefaultMinStay || rd.MaxStay != constants.DefaultMaxStay {
			t.Fatalf("stay bounds for %s = %d/%d", key, rd.MinStay, rd.MaxStay)
		}
		if rd.StopSell {
			t.Fatalf("generated day %s must not stop-sell", key)
		}
		if rd.CutoffDays != constants.DefaultCutoffDays || rd.Availability != constants.DefaultAvailability {
			t.Fatalf("restrictions for %s = %d/%d", key, rd.CutoffDays, rd.Availability)
		}
	}
}

// Regenerating over the same key space must leave one row per key with the
// later call's values, which is what the upsert clause guarantees. Simulate
// the keyed write here.
func TestBuildRateDaysRegenerateOverwrites(t *testing.T) {
	start := day(t, "2025-02-03")
	store := make(map[string]models.RateDay)
	apply := func(days []models.RateDay) {
		for _, d := range days {
			store[d.UnitType+"|"+d.Date.Format(constants.DateLayout)] = d
		}
	}

	apply(BuildRateDays("Luxo", 450.00, start, 14, 1.3, nil, 1.5))
	apply(BuildRateDays("Luxo", 480.00, start, 14, 1.2, nil, 1.5))

	if len(store) != 14 {
		t.Fatalf("expected 14 rows after regeneration, got %d", len(store))
	}
	sat := store["Luxo|2025-02-08"]
	if sat.Rate != 576.00 { // 480 * 1.2
		t.Fatalf("expected second run to win with 576.00, got %v", sat.Rate)
	}
	mon := store["Luxo|2025-02-03"]
	if mon.Rate != 480.00 {
		t.Fatalf("expected second run to win with 480.00, got %v", mon.Rate)
	}
}

func TestRateDaySellable(t *testing.T) {
	base := models.RateDay{
		UnitType:     "Standard",
		Date:         day(t, "2024-06-10"),
		Rate:         250.00,
		MinStay:      1,
		MaxStay:      30,
		CutoffDays:   14,
		Availability: 5,
	}

	ok := base
	if !RateDaySellable(&ok, day(t, "2024-05-20")) { // 21 days lead
		t.Fatal("expected sellable with enough lead time")
	}

	late := base
	if RateDaySellable(&late, day(t, "2024-06-01")) { // 9 days lead, under cutoff
		t.Fatal("expected cutoff to block a late booking")
	}

	stopped := base
	stopped.StopSell = true
	if RateDaySellable(&stopped, day(t, "2024-05-01")) {
		t.Fatal("expected stop-sell to block regardless of lead time")
	}

	soldOut := base
	soldOut.Availability = 0
	if RateDaySellable(&soldOut, day(t, "2024-05-01")) {
		t.Fatal("expected zero availability to block")
	}
}

func TestYearEndHolidays(t *testing.T) {
	holidays := YearEndHolidays(day(t, "2024-12-20"), 15)

	for _, d := range []string{"2024-12-24", "2024-12-25", "2024-12-31"} {
		if !holidays[d] {
			t.Fatalf("expected %s to be a holiday", d)
		}
	}
	for _, d := range []string{"2024-12-26", "2025-01-01", "2025-01-02"} {
		if holidays[d] {
			t.Fatalf("did not expect %s to be a holiday", d)
		}
	}
}

func TestValidateRateDay(t *testing.T) {
	good := models.RateDay{Rate: 300, MinStay: 0, MaxStay: 30, Availability: 5, Date: day(t, "2025-03-01").Add(5 * time.Hour)}
	if err := validateRateDay(&good); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if good.MinStay != 1 {
		t.Fatalf("expected min_stay coerced to 1, got %d", good.MinStay)
	}
	if !good.Date.Equal(day(t, "2025-03-01")) {
		t.Fatalf("expected date truncated to midnight, got %v", good.Date)
	}

	bad := models.RateDay{Rate: 0, MaxStay: 30}
	if err := validateRateDay(&bad); err == nil || !strings.HasPrefix(err.Error(), "validation:") {
		t.Fatalf("expected validation error for zero rate, got %v", err)
	}

	inverted := models.RateDay{Rate: 300, MinStay: 5, MaxStay: 2}
	if err := validateRateDay(&inverted); err == nil {
		t.Fatal("expected validation error for max_stay below min_stay")
	}

	negativeCutoff := models.RateDay{Rate: 300, MaxStay: 30, CutoffDays: -1}
	if err := validateRateDay(&negativeCutoff); err == nil {
		t.Fatal("expected validation error for negative cutoff_days")
	}
}
