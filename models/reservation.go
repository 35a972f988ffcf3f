package models

import (
	"time"

	"gorm.io/gorm"
)

// Reservation is a stay on one unit over a half-open [check_in, check_out)
// range. Rate is a snapshot of the charged nightly rate and is immutable
// after creation.
type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	ConfirmationCode string `gorm:"column:confirmation_code;uniqueIndex;type:varchar(32)" json:"confirmationCode"`

	GuestID uint `gorm:"column:guest_id;index;not null" json:"guestId"`
	UnitID  uint `gorm:"column:unit_id;index;not null" json:"unitId"`

	CheckIn  time.Time `gorm:"column:check_in;type:date;not null" json:"checkIn"`
	CheckOut time.Time `gorm:"column:check_out;type:date;not null" json:"checkOut"`

	Adults   int `gorm:"column:adults;default:1" json:"adults"`
	Children int `gorm:"column:children;default:0" json:"children"`

	Status string `gorm:"column:status;type:varchar(32);default:confirmed;index" json:"status"`
	Source string `gorm:"column:source;type:varchar(50)" json:"source"`

	Rate        float64 `gorm:"column:rate;not null" json:"rate"`
	TotalAmount float64 `gorm:"column:total_amount" json:"totalAmount"`
	Currency    string  `gorm:"column:currency;type:varchar(8);default:BRL" json:"currency"`

	PaymentStatus string `gorm:"column:payment_status;type:varchar(32);default:pending" json:"paymentStatus"`
	PaymentMethod string `gorm:"column:payment_method;type:varchar(50)" json:"paymentMethod,omitempty"`

	SpecialRequests string `gorm:"column:special_requests;type:text" json:"specialRequests,omitempty"`
	Notes           string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CheckedInAt  *time.Time `gorm:"column:checked_in_at" json:"checkedInAt,omitempty"`
	CheckedOutAt *time.Time `gorm:"column:checked_out_at" json:"checkedOutAt,omitempty"`

	Guest Guest `gorm:"foreignKey:GuestID" json:"guest,omitempty"`
	Unit  Unit  `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}

// Nights is the length of stay in whole nights.
func (r Reservation) Nights() int {
	return int(r.CheckOut.Sub(r.CheckIn).Hours() / 24)
}

// Active reports whether the reservation blocks its unit's dates.
func (r Reservation) Active() bool {
	return r.Status == "confirmed" || r.Status == "checked-in"
}
