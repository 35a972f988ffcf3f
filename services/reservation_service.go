package services

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"orion-pms/constants"
	"orion-pms/models"
	"orion-pms/utils"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ReservationService owns the reservation ledger and its status transitions.
type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

type CreateReservationInput struct {
	GuestID  uint      `json:"guestId"`
	UnitID   uint      `json:"unitId"`
	CheckIn  time.Time `json:"checkIn"`
	CheckOut time.Time `json:"checkOut"`

	Adults   int `json:"adults"`
	Children int `json:"children"`

	Rate            float64 `json:"rate"`
	Source          string  `json:"source"`
	PaymentMethod   string  `json:"paymentMethod"`
	SpecialRequests string  `json:"specialRequests"`
}

func isDuplicateKeyErr(err error) bool {
	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique")
}

// Create books a stay. The no-overlap invariant is re-validated inside the
// transaction under a lock on the unit row, so concurrent attempts for the
// same unit serialize and at most one wins; losers get
// ErrAvailabilityConflict and must re-query before retrying.
func (s *ReservationService) Create(in CreateReservationInput) (*models.Reservation, error) {
	checkIn, checkOut := DateOnly(in.CheckIn), DateOnly(in.CheckOut)
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidRange
	}
	if in.Rate <= 0 {
		return nil, fmt.Errorf("validation: rate must be positive")
	}
	if in.Adults <= 0 {
		in.Adults = 1
	}
	if in.Children < 0 {
		in.Children = 0
	}

	nights := DaysBetween(checkIn, checkOut)
	var created models.Reservation

	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var guest models.Guest
		if err := tx.First(&guest, in.GuestID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		var unit models.Unit
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&unit, in.UnitID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if unit.Status == constants.UnitStatusMaintenance || unit.Status == constants.UnitStatusOutOfService {
			return ErrAvailabilityConflict
		}

		var overlapping int64
		err := tx.Model(&models.Reservation{}).
			Where("unit_id = ? AND status IN ?", in.UnitID, activeReservationStatuses).
			Where("check_in < ? AND check_out > ?", checkOut, checkIn).
			Count(&overlapping).Error
		if err != nil {
			return err
		}
		if overlapping > 0 {
			return ErrAvailabilityConflict
		}

		reservation := models.Reservation{
			GuestID:         in.GuestID,
			UnitID:          in.UnitID,
			CheckIn:         checkIn,
			CheckOut:        checkOut,
			Adults:          in.Adults,
			Children:        in.Children,
			Status:          constants.ReservationStatusConfirmed,
			Source:          in.Source,
			Rate:            in.Rate,
			TotalAmount:     RoundRate(in.Rate * float64(nights)),
			PaymentStatus:   constants.PaymentStatusPending,
			PaymentMethod:   in.PaymentMethod,
			SpecialRequests: in.SpecialRequests,
		}

		// Confirmation codes are random; retry on the rare collision.
		var createErr error
		for attempt := 0; attempt < 5; attempt++ {
			reservation.ConfirmationCode = utils.GenerateConfirmationCode()
			createErr = tx.Create(&reservation).Error
			if createErr == nil {
				break
			}
			if isDuplicateKeyErr(createErr) {
				log.Printf("confirmation code collision (attempt %d), retrying", attempt+1)
				reservation.ID = 0
				continue
			}
			return fmt.Errorf("failed to create reservation: %w", createErr)
		}
		if createErr != nil {
			return fmt.Errorf("failed to create reservation after retries: %w", createErr)
		}

		created = reservation
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}

	if err := s.DB.Preload("Guest").Preload("Unit").First(&created, created.ID).Error; err != nil {
		return nil, err
	}
	return &created, nil
}

func (s *ReservationService) GetByCode(code string) (*models.Reservation, error) {
	var r models.Reservation
	err := s.DB.Preload("Guest").Preload("Unit").
		Where("confirmation_code = ?", code).
		First(&r).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &r, nil
}

func (s *ReservationService) GetAll() ([]models.Reservation, error) {
	var list []models.Reservation
	err := s.DB.Preload("Guest").Preload("Unit").
		Order("created_at DESC").
		Find(&list).Error
	return list, err
}

// CheckIn moves a confirmed reservation to checked-in and marks the unit
// occupied, in one transaction.
func (s *ReservationService) CheckIn(code string, now time.Time) (*models.Reservation, error) {
	return s.transition(code, func(tx *gorm.DB, r *models.Reservation) error {
		if r.Status != constants.ReservationStatusConfirmed {
			return ErrInvalidTransition
		}
		ts := now.UTC()
		if err := tx.Model(r).Updates(map[string]interface{}{
			"status":        constants.ReservationStatusCheckedIn,
			"checked_in_at": ts,
		}).Error; err != nil {
			return err
		}
		return tx.Model(&models.Unit{}).Where("id = ?", r.UnitID).
			Update("status", constants.UnitStatusOccupied).Error
	})
}

// CheckOut completes the stay: the unit returns to available, a cleaning
// task is filed and the guest's loyalty points accrue, all in one
// transaction.
func (s *ReservationService) CheckOut(code string, now time.Time) (*models.Reservation, error) {
	return s.transition(code, func(tx *gorm.DB, r *models.Reservation) error {
		if r.Status != constants.ReservationStatusCheckedIn {
			return ErrInvalidTransition
		}
		ts := now.UTC()
		if err := tx.Model(r).Updates(map[string]interface{}{
			"status":         constants.ReservationStatusCheckedOut,
			"checked_out_at": ts,
		}).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Unit{}).Where("id = ?", r.UnitID).
			Update("status", constants.UnitStatusAvailable).Error; err != nil {
			return err
		}

		var unit models.Unit
		if err := tx.First(&unit, r.UnitID).Error; err != nil {
			return err
		}
		task := models.HousekeepingTask{
			UnitID:        r.UnitID,
			TaskType:      "checkout_cleaning",
			Status:        constants.TaskStatusPending,
			EstimatedTime: unit.CleaningTime,
		}
		if err := tx.Create(&task).Error; err != nil {
			return err
		}

		points := r.Nights() * constants.LoyaltyPointsPerNight
		return tx.Model(&models.Guest{}).Where("id = ?", r.GuestID).
			UpdateColumn("loyalty_points", gorm.Expr("loyalty_points + ?", points)).Error
	})
}

// Cancel releases the dates. A checked-in stay being cancelled also frees
// the unit.
func (s *ReservationService) Cancel(code string) (*models.Reservation, error) {
	return s.transition(code, func(tx *gorm.DB, r *models.Reservation) error {
		if !r.Active() {
			return ErrInvalidTransition
		}
		wasCheckedIn := r.Status == constants.ReservationStatusCheckedIn
		if err := tx.Model(r).Update("status", constants.ReservationStatusCancelled).Error; err != nil {
			return err
		}
		if wasCheckedIn {
			return tx.Model(&models.Unit{}).Where("id = ?", r.UnitID).
				Update("status", constants.UnitStatusAvailable).Error
		}
		return nil
	})
}

func (s *ReservationService) MarkNoShow(code string) (*models.Reservation, error) {
	return s.transition(code, func(tx *gorm.DB, r *models.Reservation) error {
		if r.Status != constants.ReservationStatusConfirmed {
			return ErrInvalidTransition
		}
		return tx.Model(r).Update("status", constants.ReservationStatusNoShow).Error
	})
}

// UpdatePayment touches the payment fields only; the rate snapshot and the
// stay itself stay immutable.
func (s *ReservationService) UpdatePayment(code, paymentStatus, paymentMethod string) (*models.Reservation, error) {
	valid := map[string]bool{
		constants.PaymentStatusPending:  true,
		constants.PaymentStatusPartial:  true,
		constants.PaymentStatusPaid:     true,
		constants.PaymentStatusRefunded: true,
	}
	if !valid[paymentStatus] {
		return nil, fmt.Errorf("validation: unknown payment status %q", paymentStatus)
	}
	return s.transition(code, func(tx *gorm.DB, r *models.Reservation) error {
		updates := map[string]interface{}{"payment_status": paymentStatus}
		if paymentMethod != "" {
			updates["payment_method"] = paymentMethod
		}
		return tx.Model(r).Updates(updates).Error
	})
}

func (s *ReservationService) transition(code string, apply func(tx *gorm.DB, r *models.Reservation) error) (*models.Reservation, error) {
	var result models.Reservation
	txErr := s.DB.Transaction(func(tx *gorm.DB) error {
		var r models.Reservation
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("confirmation_code = ?", code).
			First(&r).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if err := apply(tx, &r); err != nil {
			return err
		}
		result = r
		return nil
	})
	if txErr != nil {
		return nil, txErr
	}
	if err := s.DB.Preload("Guest").Preload("Unit").First(&result, result.ID).Error; err != nil {
		return nil, err
	}
	return &result, nil
}
