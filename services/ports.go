package services

import (
	"time"

	"orion-pms/models"
)

// RateLookup resolves the RateDay for an exact (unit type, date) key, nil
// when absent.
type RateLookup interface {
	Lookup(unitType string, date time.Time) (*models.RateDay, error)
}

// BaseRateSource resolves the fallback nightly rate for a unit type.
type BaseRateSource interface {
	DefaultBaseRate(unitType string) (float64, error)
}

// UnitCatalogSource is what the calendar needs from the unit catalog.
type UnitCatalogSource interface {
	BaseRateSource
	KnownTypes() ([]string, error)
}
