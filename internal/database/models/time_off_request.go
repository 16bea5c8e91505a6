package models

import (
	"time"

	"github.com/google/uuid"
)

// TimeOffRequest is a date range an employee has asked off. Only approved
// ranges block scheduling.
type TimeOffRequest struct {
	BaseModel
	EmployeeID uuid.UUID     `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDate  time.Time     `json:"start_date" gorm:"type:date;not null" validate:"required"`
	EndDate    time.Time     `json:"end_date" gorm:"type:date;not null" validate:"required"`
	Status     TimeOffStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
	Reason     string        `json:"reason" gorm:"size:200"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for TimeOffRequest
func (TimeOffRequest) TableName() string {
	return "time_off_requests"
}

// Contains reports whether date falls inside the range, inclusive of both ends.
func (t *TimeOffRequest) Contains(date time.Time) bool {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
	start := time.Date(t.StartDate.Year(), t.StartDate.Month(), t.StartDate.Day(), 0, 0, 0, 0, time.UTC)
	end := time.Date(t.EndDate.Year(), t.EndDate.Month(), t.EndDate.Day(), 0, 0, 0, 0, time.UTC)
	return !day.Before(start) && !day.After(end)
}
