package services

import (
	"errors"
	"fmt"
	"strings"

	"orion-pms/constants"
	"orion-pms/models"

	"gorm.io/gorm"
)

// UnitService is the unit catalog: definitions, status and default rates.
type UnitService struct {
	DB *gorm.DB
}

func NewUnitService(db *gorm.DB) *UnitService {
	return &UnitService{DB: db}
}

var unitStatuses = map[string]bool{
	constants.UnitStatusAvailable:    true,
	constants.UnitStatusOccupied:     true,
	constants.UnitStatusMaintenance:  true,
	constants.UnitStatusOutOfService: true,
}

func (s *UnitService) Create(unit *models.Unit) error {
	unit.Code = strings.TrimSpace(unit.Code)
	if unit.Code == "" {
		return fmt.Errorf("validation: unit code is required")
	}
	if strings.TrimSpace(unit.Type) == "" {
		return fmt.Errorf("validation: unit type is required")
	}
	if unit.BaseRate <= 0 {
		return fmt.Errorf("validation: base rate must be positive")
	}
	if unit.Capacity <= 0 {
		unit.Capacity = 2
	}
	if unit.MaxCapacity < unit.Capacity {
		unit.MaxCapacity = unit.Capacity
	}
	if unit.Status == "" {
		unit.Status = constants.UnitStatusAvailable
	}
	if !unitStatuses[unit.Status] {
		return fmt.Errorf("validation: unknown unit status %q", unit.Status)
	}
	return s.DB.Create(unit).Error
}

func (s *UnitService) GetAll() ([]models.Unit, error) {
	var units []models.Unit
	err := s.DB.Order("code ASC").Find(&units).Error
	return units, err
}

func (s *UnitService) GetByID(id uint) (models.Unit, error) {
	var unit models.Unit
	if err := s.DB.First(&unit, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unit, ErrNotFound
		}
		return unit, err
	}
	return unit, nil
}

func (s *UnitService) GetByCode(code string) (models.Unit, error) {
	var unit models.Unit
	if err := s.DB.Where("code = ?", code).First(&unit).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return unit, ErrNotFound
		}
		return unit, err
	}
	return unit, nil
}

// Update applies a partial update, protecting identity and bookkeeping
// columns.
func (s *UnitService) Update(id uint, fields map[string]interface{}) error {
	delete(fields, "id")
	delete(fields, "code")
	delete(fields, "created_at")
	delete(fields, "updated_at")
	delete(fields, "deleted_at")

	res := s.DB.Model(&models.Unit{}).Where("id = ?", id).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *UnitService) UpdateStatus(id uint, status string) error {
	if !unitStatuses[status] {
		return fmt.Errorf("validation: unknown unit status %q", status)
	}
	res := s.DB.Model(&models.Unit{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Retire soft-deletes a unit. Reservations keep referencing the retired row.
func (s *UnitService) Retire(id uint) error {
	res := s.DB.Delete(&models.Unit{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DefaultBaseRate is the fallback rate for a unit type when no RateDay
// exists: the cheapest live unit of the type, or the seeded default.
func (s *UnitService) DefaultBaseRate(unitType string) (float64, error) {
	var rate float64
	err := s.DB.Model(&models.Unit{}).
		Where("type = ?", unitType).
		Select("MIN(base_rate)").
		Row().Scan(&rate)
	if err == nil && rate > 0 {
		return rate, nil
	}

	if def, ok := constants.DefaultBaseRates[unitType]; ok {
		return def, nil
	}
	return 0, ErrUnknownUnitType
}

// KnownTypes lists the distinct unit types in the catalog plus the built-in
// defaults.
func (s *UnitService) KnownTypes() ([]string, error) {
	var types []string
	if err := s.DB.Model(&models.Unit{}).Distinct("type").Pluck("type", &types).Error; err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(types))
	for _, t := range types {
		seen[t] = true
	}
	for t := range constants.DefaultBaseRates {
		if !seen[t] {
			types = append(types, t)
		}
	}
	return types, nil
}
