package models

import (
	"time"
)

// RateDay is the rate and stay restrictions for one unit type on one date.
// There is at most one row per (unit_type, date); writes go through upsert.
type RateDay struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	UnitType string    `gorm:"column:unit_type;type:varchar(50);not null;uniqueIndex:idx_rate_unit_type_date" json:"unitType"`
	Date     time.Time `gorm:"column:date;type:date;not null;uniqueIndex:idx_rate_unit_type_date" json:"date"`

	Rate         float64 `gorm:"column:rate;not null" json:"rate"`
	MinStay      int     `gorm:"column:min_stay;default:1" json:"minStay"`
	MaxStay      int     `gorm:"column:max_stay;default:30" json:"maxStay"`
	StopSell     bool    `gorm:"column:stop_sell;default:false" json:"stopSell"`
	CutoffDays   int     `gorm:"column:cutoff_days;default:0" json:"cutoffDays"`
	Availability int     `gorm:"column:availability;default:0" json:"availability"`
}
