package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Unit is a sellable room. Units referenced by reservations are never hard
// deleted; retiring a unit is a soft delete.
type Unit struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Code string `gorm:"column:code;uniqueIndex;type:varchar(50);not null" json:"code"`
	Name string `gorm:"column:name;type:varchar(120)" json:"name"`
	Type string `gorm:"column:type;type:varchar(50);index;not null" json:"type"`

	Floor       int     `gorm:"column:floor" json:"floor"`
	Capacity    int     `gorm:"column:capacity;default:2" json:"capacity"`
	MaxCapacity int     `gorm:"column:max_capacity;default:2" json:"maxCapacity"`
	BaseRate    float64 `gorm:"column:base_rate;not null" json:"baseRate"`
	Status      string  `gorm:"column:status;type:varchar(32);default:available" json:"status"`

	Amenities datatypes.JSON `gorm:"column:amenities" json:"amenities,omitempty"`
	ViewType  string         `gorm:"column:view_type;type:varchar(32)" json:"viewType"`

	CleaningTime    int        `gorm:"column:cleaning_time;default:30" json:"cleaningTime"`
	LastMaintenance *time.Time `gorm:"column:last_maintenance" json:"lastMaintenance,omitempty"`
	NextMaintenance *time.Time `gorm:"column:next_maintenance" json:"nextMaintenance,omitempty"`
}
