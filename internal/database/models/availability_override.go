package models

import (
	"time"

	"github.com/google/uuid"
)

// AvailabilityOverride pins an employee's availability for one exact date.
// An override always wins over the weekly pattern.
type AvailabilityOverride struct {
	BaseModel
	EmployeeID uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index:idx_override_employee_date,unique" validate:"required"`
	Date       time.Time `json:"date" gorm:"type:date;not null;index:idx_override_employee_date,unique" validate:"required"`
	Available  bool      `json:"available" gorm:"not null"`
	Reason     string    `json:"reason" gorm:"size:200"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for AvailabilityOverride
func (AvailabilityOverride) TableName() string {
	return "availability_overrides"
}
