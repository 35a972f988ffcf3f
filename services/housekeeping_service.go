package services

import (
	"errors"
	"time"

	"orion-pms/constants"
	"orion-pms/models"

	"gorm.io/gorm"
)

// HousekeepingService consumes the unit-status transitions the ledger
// produces: checkout files a cleaning task, completing it readies the unit.
type HousekeepingService struct {
	DB *gorm.DB
}

func NewHousekeepingService(db *gorm.DB) *HousekeepingService {
	return &HousekeepingService{DB: db}
}

func (s *HousekeepingService) GetPending() ([]models.HousekeepingTask, error) {
	var tasks []models.HousekeepingTask
	err := s.DB.Preload("Unit").
		Where("status = ?", constants.TaskStatusPending).
		Order("created_at ASC").
		Find(&tasks).Error
	return tasks, err
}

func (s *HousekeepingService) Complete(id uint, actualTime int, now time.Time) (models.HousekeepingTask, error) {
	var task models.HousekeepingTask
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&task, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if task.Status == constants.TaskStatusCompleted {
			return ErrInvalidTransition
		}
		ts := now.UTC()
		return tx.Model(&task).Updates(map[string]interface{}{
			"status":       constants.TaskStatusCompleted,
			"actual_time":  actualTime,
			"completed_at": ts,
		}).Error
	})
	return task, err
}
