package services

import (
	"errors"
	"testing"

	"orion-pms/constants"
	"orion-pms/models"
)

func TestNewPeriod(t *testing.T) {
	p, err := NewPeriod(day(t, "2024-06-01"), day(t, "2024-06-08"))
	if err != nil {
		t.Fatalf("NewPeriod: %v", err)
	}
	if p.Days() != 7 {
		t.Fatalf("expected 7 days, got %d", p.Days())
	}

	if _, err := NewPeriod(day(t, "2024-06-08"), day(t, "2024-06-08")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for empty period, got %v", err)
	}
	if _, err := NewPeriod(day(t, "2024-06-08"), day(t, "2024-06-01")); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("expected ErrInvalidRange for inverted period, got %v", err)
	}
}

func TestOverlapNights(t *testing.T) {
	p := Period{Start: day(t, "2024-06-01"), End: day(t, "2024-06-08")}

	cases := []struct {
		name              string
		checkIn, checkOut string
		want              int
	}{
		{"fully inside", "2024-06-02", "2024-06-04", 2},
		{"clamped at start", "2024-05-30", "2024-06-03", 2},
		{"clamped at end", "2024-06-05", "2024-06-20", 3},
		{"spanning whole period", "2024-05-01", "2024-07-01", 7},
		{"before period", "2024-05-20", "2024-05-25", 0},
		{"after period", "2024-06-10", "2024-06-12", 0},
		{"checkout on period start", "2024-05-28", "2024-06-01", 0},
		{"checkin on period end", "2024-06-08", "2024-06-10", 0},
	}
	for _, tc := range cases {
		got := OverlapNights(day(t, tc.checkIn), day(t, tc.checkOut), p)
		if got != tc.want {
			t.Fatalf("%s: OverlapNights = %d, want %d", tc.name, got, tc.want)
		}
	}
}

func TestOccupiedNightsAndRevenue(t *testing.T) {
	p := Period{Start: day(t, "2024-06-01"), End: day(t, "2024-06-08")}
	reservations := []models.Reservation{
		{UnitID: 1, Rate: 100, CheckIn: day(t, "2024-05-30"), CheckOut: day(t, "2024-06-03")}, // 2 nights inside
		{UnitID: 2, Rate: 200, CheckIn: day(t, "2024-06-05"), CheckOut: day(t, "2024-06-20")}, // 3 nights inside
	}

	if got := OccupiedUnitNights(reservations, p); got != 5 {
		t.Fatalf("OccupiedUnitNights = %d, want 5", got)
	}
	if got := RoomRevenue(reservations, p); got != 800.00 { // 2*100 + 3*200
		t.Fatalf("RoomRevenue = %v, want 800.00", got)
	}

	if got := OccupiedUnitNights(nil, p); got != 0 {
		t.Fatalf("OccupiedUnitNights(nil) = %d, want 0", got)
	}
	if got := RoomRevenue(nil, p); got != 0 {
		t.Fatalf("RoomRevenue(nil) = %v, want 0", got)
	}
}

func TestSellableUnitNights(t *testing.T) {
	p := Period{Start: day(t, "2024-06-01"), End: day(t, "2024-06-08")}
	units := []models.Unit{
		{ID: 1, Status: constants.UnitStatusAvailable},
		{ID: 2, Status: constants.UnitStatusMaintenance}, // still part of the sellable base
		{ID: 3, Status: constants.UnitStatusOutOfService},
	}

	if got := SellableUnitNights(units, p); got != 14 { // 2 units * 7 nights
		t.Fatalf("SellableUnitNights = %d, want 14", got)
	}

	allOut := []models.Unit{{ID: 1, Status: constants.UnitStatusOutOfService}}
	if got := SellableUnitNights(allOut, p); got != 0 {
		t.Fatalf("SellableUnitNights with no sellable units = %d, want 0", got)
	}
}
