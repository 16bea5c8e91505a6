package models

import (
	"time"

	"github.com/google/uuid"
)

// RotationAssignment designates which employee fills a rotating role
// (juicer, primary lead) on a given date.
type RotationAssignment struct {
	BaseModel
	Date       time.Time        `json:"date" gorm:"type:date;not null;index:idx_rotation_date_category,unique" validate:"required"`
	Category   RotationCategory `json:"category" gorm:"type:varchar(20);not null;index:idx_rotation_date_category,unique" validate:"required"`
	EmployeeID uuid.UUID        `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`

	// Relationships
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for RotationAssignment
func (RotationAssignment) TableName() string {
	return "rotation_assignments"
}
