package services

import (
	"testing"
	"time"
)

func TestDateOnly(t *testing.T) {
	in := time.Date(2024, 6, 15, 23, 45, 12, 999, time.UTC)
	got := DateOnly(in)
	want := time.Date(2024, 6, 15, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnly = %v, want %v", got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	if got := DaysBetween(day(t, "2024-06-01"), day(t, "2024-06-08")); got != 7 {
		t.Fatalf("DaysBetween forward = %d, want 7", got)
	}
	if got := DaysBetween(day(t, "2024-06-08"), day(t, "2024-06-01")); got != -7 {
		t.Fatalf("DaysBetween backward = %d, want -7", got)
	}
	if got := DaysBetween(day(t, "2024-06-01"), day(t, "2024-06-01")); got != 0 {
		t.Fatalf("DaysBetween same day = %d, want 0", got)
	}
}

func TestIsWeekend(t *testing.T) {
	if IsWeekend(day(t, "2024-06-07")) { // Friday
		t.Fatal("Friday is not a weekend")
	}
	if !IsWeekend(day(t, "2024-06-08")) { // Saturday
		t.Fatal("Saturday is a weekend")
	}
	if !IsWeekend(day(t, "2024-06-09")) { // Sunday
		t.Fatal("Sunday is a weekend")
	}
	if IsWeekend(day(t, "2024-06-10")) { // Monday
		t.Fatal("Monday is not a weekend")
	}
}
