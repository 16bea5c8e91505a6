package models

import (
	"time"
)

// Event represents a retail staffing event imported from the external
// scheduling system. The display name encodes a 6-digit event-number prefix
// plus a type tag (e.g. "606001-CORE-Widget"); the prefix is the correlation
// key used to find a paired companion event of a different type.
type Event struct {
	BaseModel
	RefNum           string      `json:"ref_num" gorm:"size:40;not null;uniqueIndex" validate:"required,max=40"`
	DisplayName      string      `json:"display_name" gorm:"size:200;not null;index" validate:"required,max=200"`
	EventType        EventType   `json:"event_type" gorm:"type:varchar(20);not null;index" validate:"required"`
	StartWindow      time.Time   `json:"start_window" gorm:"type:date;not null" validate:"required"`
	DueDate          time.Time   `json:"due_date" gorm:"type:date;not null;index" validate:"required"`
	EstimatedMinutes int         `json:"estimated_minutes" gorm:"default:120" validate:"min=1"`
	Status           EventStatus `json:"status" gorm:"type:varchar(20);not null;default:'Unstaffed';index"`
	IsScheduled      bool        `json:"is_scheduled" gorm:"default:false;index"`

	// Relationships
	Schedule *Schedule `json:"schedule,omitempty" gorm:"foreignKey:EventID"`
}

// TableName returns the table name for Event
func (Event) TableName() string {
	return "events"
}

// Duration returns the event's estimated duration
func (e *Event) Duration() time.Duration {
	return time.Duration(e.EstimatedMinutes) * time.Minute
}

// WindowContains reports whether t falls on a calendar date inside the
// event's valid scheduling window [start_window, due_date].
func (e *Event) WindowContains(t time.Time) bool {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	start := time.Date(e.StartWindow.Year(), e.StartWindow.Month(), e.StartWindow.Day(), 0, 0, 0, 0, t.Location())
	due := time.Date(e.DueDate.Year(), e.DueDate.Month(), e.DueDate.Day(), 0, 0, 0, 0, t.Location())
	return !day.Before(start) && !day.After(due)
}
