package models

import (
	"time"

	"github.com/google/uuid"
)

// Schedule links one event to one employee at a concrete start date-time.
// At most one active schedule exists per event; the date-time must fall
// within the event's valid scheduling window.
type Schedule struct {
	BaseModel
	EventID       uuid.UUID `json:"event_id" gorm:"type:uuid;not null;uniqueIndex" validate:"required"`
	EmployeeID    uuid.UUID `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDatetime time.Time `json:"start_datetime" gorm:"not null;index" validate:"required"`
	ExternalID    string    `json:"external_id" gorm:"size:60"`
	Version       int       `json:"version" gorm:"default:1"`

	// Relationships
	Event    Event    `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for Schedule
func (Schedule) TableName() string {
	return "schedules"
}

// End returns the schedule's end time given the event's estimated duration.
// Intervals are half-open: [start, start+duration).
func (s *Schedule) End() time.Time {
	return s.StartDatetime.Add(s.Event.Duration())
}
