package services

import (
	"errors"
	"fmt"
	"time"

	"orion-pms/constants"
	"orion-pms/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// RateCalendarService maintains the per-(unit type, date) rate calendar.
// Writes go through upsert so the (unit_type, date) key stays unique.
type RateCalendarService struct {
	DB    *gorm.DB
	Units UnitCatalogSource
}

func NewRateCalendarService(db *gorm.DB, units UnitCatalogSource) *RateCalendarService {
	return &RateCalendarService{DB: db, Units: units}
}

// rateDayUpsertColumns are the columns an upsert on an existing key
// overwrites in place.
var rateDayUpsertColumns = []string{"rate", "min_stay", "max_stay", "stop_sell", "cutoff_days", "availability", "updated_at"}

// Lookup returns the RateDay for the exact (unitType, date) key, or nil when
// absent. Absence is an expected condition, not an error.
func (s *RateCalendarService) Lookup(unitType string, date time.Time) (*models.RateDay, error) {
	var rd models.RateDay
	err := s.DB.
		Where("unit_type = ? AND date = ?", unitType, DateOnly(date)).
		First(&rd).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("rate lookup failed: %w", err)
	}
	return &rd, nil
}

func (s *RateCalendarService) Upsert(rd models.RateDay) error {
	if err := validateRateDay(&rd); err != nil {
		return err
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "unit_type"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(rateDayUpsertColumns),
	}).Create(&rd).Error
}

func (s *RateCalendarService) UpsertBatch(days []models.RateDay) error {
	if len(days) == 0 {
		return nil
	}
	for i := range days {
		if err := validateRateDay(&days[i]); err != nil {
			return err
		}
	}
	return s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "unit_type"}, {Name: "date"}},
		DoUpdates: clause.AssignmentColumns(rateDayUpsertColumns),
	}).CreateInBatches(days, 200).Error
}

func validateRateDay(rd *models.RateDay) error {
	if rd.Rate <= 0 {
		return fmt.Errorf("validation: rate must be positive")
	}
	if rd.MinStay < 1 {
		rd.MinStay = 1
	}
	if rd.MaxStay < rd.MinStay {
		return fmt.Errorf("validation: max_stay %d below min_stay %d", rd.MaxStay, rd.MinStay)
	}
	if rd.CutoffDays < 0 {
		return fmt.Errorf("validation: cutoff_days must not be negative")
	}
	if rd.Availability < 0 {
		return fmt.Errorf("validation: availability must not be negative")
	}
	rd.Date = DateOnly(rd.Date)
	return nil
}

// IsSellable checks the stay-date restrictions for a booking placed on
// bookedAt. A missing RateDay imposes no restrictions.
func (s *RateCalendarService) IsSellable(unitType string, date, bookedAt time.Time) (bool, error) {
	rd, err := s.Lookup(unitType, date)
	if err != nil {
		return false, err
	}
	if rd == nil {
		return true, nil
	}
	return RateDaySellable(rd, bookedAt), nil
}

// RateDaySellable applies stop-sell, cutoff lead time and availability count.
func RateDaySellable(rd *models.RateDay, bookedAt time.Time) bool {
	if rd.StopSell {
		return false
	}
	if DaysBetween(bookedAt, rd.Date) < rd.CutoffDays {
		return false
	}
	if rd.Availability <= 0 {
		return false
	}
	return true
}

// BuildRateDays is the deterministic calendar factory: one RateDay per date
// for one unit type, weekend and holiday uplifts applied to the base rate.
func BuildRateDays(unitType string, baseRate float64, start time.Time, numDays int, weekendMult float64, holidays map[string]bool, holidayMult float64) []models.RateDay {
	days := make([]models.RateDay, 0, numDays)
	for i := 0; i < numDays; i++ {
		d := DateOnly(start).AddDate(0, 0, i)

		rate := baseRate
		if IsWeekend(d) {
			rate *= weekendMult
		}
		if holidays[d.Format(constants.DateLayout)] {
			rate *= holidayMult
		}

		days = append(days, models.RateDay{
			UnitType:     unitType,
			Date:         d,
			Rate:         RoundRate(rate),
			MinStay:      constants.DefaultMinStay,
			MaxStay:      constants.DefaultMaxStay,
			StopSell:     false,
			CutoffDays:   constants.DefaultCutoffDays,
			Availability: constants.DefaultAvailability,
		})
	}
	return days
}

// YearEndHolidays marks Dec 24, 25 and 31 within [start, start+numDays).
func YearEndHolidays(start time.Time, numDays int) map[string]bool {
	holidays := make(map[string]bool)
	for i := 0; i < numDays; i++ {
		d := DateOnly(start).AddDate(0, 0, i)
		if d.Month() == time.December && (d.Day() == 24 || d.Day() == 25 || d.Day() == 31) {
			holidays[d.Format(constants.DateLayout)] = true
		}
	}
	return holidays
}

// GenerateCalendar batch-builds and upserts a pricing horizon. Calling it
// twice with the same arguments leaves one row per key, the second call's
// values winning.
func (s *RateCalendarService) GenerateCalendar(unitTypes []string, start time.Time, numDays int, weekendMult float64, holidays map[string]bool, holidayMult float64) (int, error) {
	if numDays <= 0 {
		return 0, fmt.Errorf("validation: num_days must be positive")
	}
	if weekendMult <= 0 {
		weekendMult = constants.CalendarWeekendMultiplier
	}
	if holidayMult <= 0 {
		holidayMult = constants.DefaultHolidayMultiplier
	}

	total := 0
	for _, unitType := range unitTypes {
		baseRate, err := s.Units.DefaultBaseRate(unitType)
		if err != nil {
			return total, err
		}
		days := BuildRateDays(unitType, baseRate, start, numDays, weekendMult, holidays, holidayMult)
		if err := s.UpsertBatch(days); err != nil {
			return total, fmt.Errorf("calendar upsert for %s failed: %w", unitType, err)
		}
		total += len(days)
	}
	return total, nil
}

// EnsureHorizon fills any missing calendar days for every known unit type
// over [from, from+days). Unlike GenerateCalendar it never overwrites, so
// revenue-management overrides survive the nightly roll.
func (s *RateCalendarService) EnsureHorizon(from time.Time, days int) (int, error) {
	if days <= 0 {
		return 0, fmt.Errorf("validation: days must be positive")
	}
	types, err := s.Units.KnownTypes()
	if err != nil {
		return 0, err
	}

	holidays := YearEndHolidays(from, days)
	total := 0
	for _, unitType := range types {
		baseRate, err := s.Units.DefaultBaseRate(unitType)
		if err != nil {
			return total, err
		}
		rows := BuildRateDays(unitType, baseRate, from, days,
			constants.CalendarWeekendMultiplier, holidays, constants.DefaultHolidayMultiplier)
		err = s.DB.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "unit_type"}, {Name: "date"}},
			DoNothing: true,
		}).CreateInBatches(rows, 200).Error
		if err != nil {
			return total, fmt.Errorf("horizon fill for %s failed: %w", unitType, err)
		}
		total += len(rows)
	}
	return total, nil
}
