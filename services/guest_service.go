package services

import (
	"errors"
	"fmt"
	"strings"

	"orion-pms/models"

	"gorm.io/gorm"
)

// GuestService is plain profile CRUD. Loyalty points are off-limits here;
// they only move when a stay completes.
type GuestService struct {
	DB *gorm.DB
}

func NewGuestService(db *gorm.DB) *GuestService {
	return &GuestService{DB: db}
}

func (s *GuestService) Create(guest *models.Guest) error {
	guest.FirstName = strings.TrimSpace(guest.FirstName)
	guest.LastName = strings.TrimSpace(guest.LastName)
	if guest.FirstName == "" || guest.LastName == "" {
		return fmt.Errorf("validation: first and last name are required")
	}
	if guest.LoyaltyTier == "" {
		guest.LoyaltyTier = "Standard"
	}
	guest.LoyaltyPoints = 0
	return s.DB.Create(guest).Error
}

func (s *GuestService) GetAll() ([]models.Guest, error) {
	var guests []models.Guest
	err := s.DB.Order("last_name ASC, first_name ASC").Find(&guests).Error
	return guests, err
}

func (s *GuestService) GetByID(id uint) (models.Guest, error) {
	var guest models.Guest
	if err := s.DB.First(&guest, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return guest, ErrNotFound
		}
		return guest, err
	}
	return guest, nil
}
