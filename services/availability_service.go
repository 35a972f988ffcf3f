package services

import (
	"errors"
	"time"

	"orion-pms/constants"
	"orion-pms/models"

	"gorm.io/gorm"
)

// activeReservationStatuses are the statuses that block a unit's dates.
var activeReservationStatuses = []string{
	constants.ReservationStatusConfirmed,
	constants.ReservationStatusCheckedIn,
}

// AvailabilityService answers whether units are free over half-open
// [check_in, check_out) ranges. Read-only.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// RangesOverlap is the half-open interval test: back-to-back ranges sharing
// only a boundary day do not overlap, so same-day turnover is allowed.
func RangesOverlap(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// IsAvailable reports whether the unit is free for [checkIn, checkOut).
// Units in maintenance or out of service are never available.
func (s *AvailabilityService) IsAvailable(unitID uint, checkIn, checkOut time.Time) (bool, error) {
	checkIn, checkOut = DateOnly(checkIn), DateOnly(checkOut)
	if !checkIn.Before(checkOut) {
		return false, ErrInvalidRange
	}

	var unit models.Unit
	if err := s.DB.First(&unit, unitID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrNotFound
		}
		return false, err
	}
	if unit.Status == constants.UnitStatusMaintenance || unit.Status == constants.UnitStatusOutOfService {
		return false, nil
	}

	var count int64
	err := s.DB.Model(&models.Reservation{}).
		Where("unit_id = ? AND status IN ?", unitID, activeReservationStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

// ListAvailableUnits filters the catalog by type and available status, then
// drops every unit with an overlapping active reservation. Ordering is by
// unit code.
func (s *AvailabilityService) ListAvailableUnits(unitType string, checkIn, checkOut time.Time) ([]models.Unit, error) {
	checkIn, checkOut = DateOnly(checkIn), DateOnly(checkOut)
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}

	query := s.DB.Where("status = ?", constants.UnitStatusAvailable)
	if unitType != "" {
		query = query.Where("type = ?", unitType)
	}
	var units []models.Unit
	if err := query.Order("code ASC").Find(&units).Error; err != nil {
		return nil, err
	}
	if len(units) == 0 {
		return []models.Unit{}, nil
	}

	ids := make([]uint, 0, len(units))
	for _, u := range units {
		ids = append(ids, u.ID)
	}

	var reservations []models.Reservation
	err := s.DB.
		Where("unit_id IN ? AND status IN ?", ids, activeReservationStatuses).
		Where("check_in < ? AND check_out > ?", checkOut, checkIn).
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}

	return FilterFreeUnits(units, reservations, checkIn, checkOut), nil
}

// FilterFreeUnits keeps the units without an overlapping reservation,
// preserving input order.
func FilterFreeUnits(units []models.Unit, reservations []models.Reservation, checkIn, checkOut time.Time) []models.Unit {
	blocked := make(map[uint]bool)
	for _, r := range reservations {
		if RangesOverlap(r.CheckIn, r.CheckOut, checkIn, checkOut) {
			blocked[r.UnitID] = true
		}
	}
	free := make([]models.Unit, 0, len(units))
	for _, u := range units {
		if !blocked[u.ID] {
			free = append(free, u)
		}
	}
	return free
}
