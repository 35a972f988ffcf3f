package services

import (
	"time"

	"orion-pms/constants"
	"orion-pms/models"

	"gorm.io/gorm"
)

// Period is a half-open day range [Start, End).
type Period struct {
	Start time.Time
	End   time.Time
}

func NewPeriod(start, end time.Time) (Period, error) {
	start, end = DateOnly(start), DateOnly(end)
	if !start.Before(end) {
		return Period{}, ErrInvalidRange
	}
	return Period{Start: start, End: end}, nil
}

func (p Period) Days() int {
	return DaysBetween(p.Start, p.End)
}

// DashboardSnapshot bundles the four dashboard KPIs.
type DashboardSnapshot struct {
	OccupancyRate    float64   `json:"occupancyRate"`
	AverageDailyRate float64   `json:"averageDailyRate"`
	RevPAR           float64   `json:"revPar"`
	TodayArrivals    int64     `json:"todayArrivals"`
	PeriodStart      string    `json:"periodStart"`
	PeriodEnd        string    `json:"periodEnd"`
	GeneratedAt      time.Time `json:"generatedAt"`
}

// OccupancyService derives occupancy, ADR and RevPAR from the ledger and the
// catalog. Every metric is a read-only projection; empty denominators yield
// 0, never an error.
type OccupancyService struct {
	DB *gorm.DB
}

func NewOccupancyService(db *gorm.DB) *OccupancyService {
	return &OccupancyService{DB: db}
}

// OverlapNights counts the nights of [checkIn, checkOut) falling inside the
// period.
func OverlapNights(checkIn, checkOut time.Time, p Period) int {
	start := checkIn
	if p.Start.After(start) {
		start = p.Start
	}
	end := checkOut
	if p.End.Before(end) {
		end = p.End
	}
	if !start.Before(end) {
		return 0
	}
	return DaysBetween(start, end)
}

// OccupiedUnitNights sums the in-period nights of the given reservations.
func OccupiedUnitNights(reservations []models.Reservation, p Period) int {
	nights := 0
	for _, r := range reservations {
		nights += OverlapNights(r.CheckIn, r.CheckOut, p)
	}
	return nights
}

// RoomRevenue pro-rates each reservation into the period: rate times the
// nights that fall inside it.
func RoomRevenue(reservations []models.Reservation, p Period) float64 {
	revenue := 0.0
	for _, r := range reservations {
		revenue += r.Rate * float64(OverlapNights(r.CheckIn, r.CheckOut, p))
	}
	return revenue
}

// SellableUnitNights counts unit-nights of units that can be sold; out of
// service units are excluded.
func SellableUnitNights(units []models.Unit, p Period) int {
	sellable := 0
	for _, u := range units {
		if u.Status != constants.UnitStatusOutOfService {
			sellable++
		}
	}
	return sellable * p.Days()
}

func (s *OccupancyService) loadPeriod(p Period) ([]models.Reservation, []models.Unit, error) {
	var reservations []models.Reservation
	err := s.DB.
		Where("status IN ?", activeReservationStatuses).
		Where("check_in < ? AND check_out > ?", p.End, p.Start).
		Find(&reservations).Error
	if err != nil {
		return nil, nil, err
	}
	var units []models.Unit
	if err := s.DB.Find(&units).Error; err != nil {
		return nil, nil, err
	}
	return reservations, units, nil
}

// OccupancyRate is occupied unit-nights over sellable unit-nights, as a
// percentage.
func (s *OccupancyService) OccupancyRate(p Period) (float64, error) {
	reservations, units, err := s.loadPeriod(p)
	if err != nil {
		return 0, err
	}
	sellable := SellableUnitNights(units, p)
	if sellable == 0 {
		return 0, nil
	}
	occupied := OccupiedUnitNights(reservations, p)
	return RoundRate(float64(occupied) / float64(sellable) * 100), nil
}

// AverageDailyRate is in-period room revenue over occupied unit-nights.
func (s *OccupancyService) AverageDailyRate(p Period) (float64, error) {
	reservations, _, err := s.loadPeriod(p)
	if err != nil {
		return 0, err
	}
	occupied := OccupiedUnitNights(reservations, p)
	if occupied == 0 {
		return 0, nil
	}
	return RoundRate(RoomRevenue(reservations, p) / float64(occupied)), nil
}

// RevPAR is in-period room revenue over sellable unit-nights.
func (s *OccupancyService) RevPAR(p Period) (float64, error) {
	reservations, units, err := s.loadPeriod(p)
	if err != nil {
		return 0, err
	}
	sellable := SellableUnitNights(units, p)
	if sellable == 0 {
		return 0, nil
	}
	return RoundRate(RoomRevenue(reservations, p) / float64(sellable)), nil
}

// TodayArrivals counts confirmed or checked-in reservations arriving on the
// given day.
func (s *OccupancyService) TodayArrivals(today time.Time) (int64, error) {
	var count int64
	err := s.DB.Model(&models.Reservation{}).
		Where("check_in = ? AND status IN ?", DateOnly(today), activeReservationStatuses).
		Count(&count).Error
	return count, err
}

// Snapshot computes all four KPIs in one pass over the period.
func (s *OccupancyService) Snapshot(p Period, today time.Time) (*DashboardSnapshot, error) {
	reservations, units, err := s.loadPeriod(p)
	if err != nil {
		return nil, err
	}
	arrivals, err := s.TodayArrivals(today)
	if err != nil {
		return nil, err
	}

	snap := &DashboardSnapshot{
		TodayArrivals: arrivals,
		PeriodStart:   p.Start.Format(constants.DateLayout),
		PeriodEnd:     p.End.Format(constants.DateLayout),
		GeneratedAt:   time.Now().UTC(),
	}

	occupied := OccupiedUnitNights(reservations, p)
	sellable := SellableUnitNights(units, p)
	revenue := RoomRevenue(reservations, p)

	if sellable > 0 {
		snap.OccupancyRate = RoundRate(float64(occupied) / float64(sellable) * 100)
		snap.RevPAR = RoundRate(revenue / float64(sellable))
	}
	if occupied > 0 {
		snap.AverageDailyRate = RoundRate(revenue / float64(occupied))
	}
	return snap, nil
}
