package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// DaySlot is one entry of an employee's weekly availability pattern.
// Start/End are "HH:MM" strings; empty means the whole day when Available.
type DaySlot struct {
	Available bool   `json:"available"`
	Start     string `json:"start,omitempty"`
	End       string `json:"end,omitempty"`
}

// Covers reports whether the clock time of t falls inside the slot's window.
// An empty bound leaves that side open.
func (s DaySlot) Covers(t time.Time) bool {
	minute := t.Hour()*60 + t.Minute()
	if s.Start != "" {
		if start, err := time.Parse("15:04", s.Start); err == nil && minute < start.Hour()*60+start.Minute() {
			return false
		}
	}
	if s.End != "" {
		if end, err := time.Parse("15:04", s.End); err == nil && minute >= end.Hour()*60+end.Minute() {
			return false
		}
	}
	return true
}

// WeeklyAvailability holds one DaySlot per weekday, indexed by time.Weekday
// (Sunday = 0). Stored as jsonb.
type WeeklyAvailability [7]DaySlot

// Value implements driver.Valuer for jsonb storage
func (w WeeklyAvailability) Value() (driver.Value, error) {
	return json.Marshal(w)
}

// Scan implements sql.Scanner for jsonb storage
func (w *WeeklyAvailability) Scan(value interface{}) error {
	if value == nil {
		*w = WeeklyAvailability{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for WeeklyAvailability", value)
	}
	return json.Unmarshal(b, w)
}

// ForDate returns the pattern slot for the weekday of date
func (w WeeklyAvailability) ForDate(date time.Time) DaySlot {
	return w[int(date.Weekday())]
}

// EventTypeList is a jsonb-stored list of event types
type EventTypeList []EventType

// Value implements driver.Valuer for jsonb storage
func (l EventTypeList) Value() (driver.Value, error) {
	if l == nil {
		l = EventTypeList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *EventTypeList) Scan(value interface{}) error {
	if value == nil {
		*l = EventTypeList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for EventTypeList", value)
	}
	return json.Unmarshal(b, l)
}

// Contains reports whether t is in the list
func (l EventTypeList) Contains(t EventType) bool {
	for _, entry := range l {
		if entry == t {
			return true
		}
	}
	return false
}

// Employee represents a staffable field employee. Employees with historical
// assignments are deactivated, never deleted.
type Employee struct {
	BaseModel
	EmployeeNumber        string             `json:"employee_number" gorm:"size:20;not null;uniqueIndex" validate:"required,max=20"`
	FirstName             string             `json:"first_name" gorm:"size:60;not null" validate:"required,max=60"`
	LastName              string             `json:"last_name" gorm:"size:60;not null" validate:"required,max=60"`
	Email                 string             `json:"email" gorm:"size:120" validate:"omitempty,email"`
	PhoneNumber           string             `json:"phone_number" gorm:"size:30"`
	IsActive              bool               `json:"is_active" gorm:"default:true;index"`
	CanJuicer             bool               `json:"can_juicer" gorm:"default:false"`
	CanPrimaryLead        bool               `json:"can_primary_lead" gorm:"default:false"`
	DisallowedEventTypes  EventTypeList      `json:"disallowed_event_types" gorm:"type:jsonb"`
	MaxEventsPerDay       int                `json:"max_events_per_day" gorm:"default:2" validate:"min=0"`
	MaxEventsPerWeek      int                `json:"max_events_per_week" gorm:"default:5" validate:"min=0"`
	PreferredEventsPerWeek int               `json:"preferred_events_per_week" gorm:"default:0" validate:"min=0"`
	PreferredTimeOfDay    TimeOfDay          `json:"preferred_time_of_day" gorm:"type:varchar(20);default:'any'"`
	WeeklyAvailability    WeeklyAvailability `json:"weekly_availability" gorm:"type:jsonb"`

	// Relationships
	Schedules []Schedule            `json:"schedules,omitempty" gorm:"foreignKey:EmployeeID"`
	Overrides []AvailabilityOverride `json:"overrides,omitempty" gorm:"foreignKey:EmployeeID"`
	TimeOff   []TimeOffRequest      `json:"time_off,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for Employee
func (Employee) TableName() string {
	return "employees"
}

// FullName returns the employee's display name
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// CanWork reports whether the employee has the capability an event type
// requires and is not explicitly disallowed from it.
func (e *Employee) CanWork(t EventType) bool {
	if e.DisallowedEventTypes.Contains(t) {
		return false
	}
	switch t {
	case EventTypeJuicer:
		return e.CanJuicer
	case EventTypeSupervisor:
		return e.CanPrimaryLead
	}
	return true
}
