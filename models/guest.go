package models

import (
	"time"
)

type Guest struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	FirstName string `gorm:"column:first_name;type:varchar(80);not null" json:"firstName"`
	LastName  string `gorm:"column:last_name;type:varchar(80);not null" json:"lastName"`

	Email string `gorm:"column:email;type:varchar(120)" json:"email"`
	Phone string `gorm:"column:phone;type:varchar(40)" json:"phone"`

	DocumentType   string  `gorm:"column:document_type;type:varchar(32)" json:"documentType"`
	DocumentNumber *string `gorm:"column:document_number;uniqueIndex;type:varchar(64)" json:"documentNumber,omitempty"`

	Nationality string     `gorm:"column:nationality;type:varchar(64)" json:"nationality"`
	DateOfBirth *time.Time `gorm:"column:date_of_birth;type:date" json:"dateOfBirth,omitempty"`

	Preferences string `gorm:"column:preferences;type:text" json:"preferences,omitempty"`

	// Loyalty points only move through stay completion, never through the API.
	LoyaltyTier   string `gorm:"column:loyalty_tier;type:varchar(32);default:Standard" json:"loyaltyTier"`
	LoyaltyPoints int    `gorm:"column:loyalty_points;default:0" json:"loyaltyPoints"`
}

func (g Guest) FullName() string {
	return g.FirstName + " " + g.LastName
}
