package models

import (
	"time"
)

// HousekeepingTask is filed against a unit, typically on checkout.
type HousekeepingTask struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time `json:"createdAt"`

	UnitID   uint   `gorm:"column:unit_id;index;not null" json:"unitId"`
	TaskType string `gorm:"column:task_type;type:varchar(50);not null" json:"taskType"`
	Status   string `gorm:"column:status;type:varchar(32);default:pending" json:"status"`

	AssignedTo    string `gorm:"column:assigned_to;type:varchar(80)" json:"assignedTo,omitempty"`
	EstimatedTime int    `gorm:"column:estimated_time" json:"estimatedTime"`
	ActualTime    int    `gorm:"column:actual_time" json:"actualTime"`
	Notes         string `gorm:"column:notes;type:text" json:"notes,omitempty"`

	CompletedAt *time.Time `gorm:"column:completed_at" json:"completedAt,omitempty"`

	Unit Unit `gorm:"foreignKey:UnitID" json:"unit,omitempty"`
}
