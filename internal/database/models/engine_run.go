package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// RunFailure records one event the engine could not place, with the reasons
// from the last validation attempt. A failure is a normal outcome, not an error.
type RunFailure struct {
	EventID     string   `json:"event_id"`
	DisplayName string   `json:"display_name"`
	Reasons     []string `json:"reasons"`
}

// RunFailureList is a jsonb-stored list of run failures
type RunFailureList []RunFailure

// Value implements driver.Valuer for jsonb storage
func (l RunFailureList) Value() (driver.Value, error) {
	if l == nil {
		l = RunFailureList{}
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner for jsonb storage
func (l *RunFailureList) Scan(value interface{}) error {
	if value == nil {
		*l = RunFailureList{}
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return fmt.Errorf("unsupported type %T for RunFailureList", value)
	}
	return json.Unmarshal(b, l)
}

// EngineRun is the append-only audit record of one scheduling engine pass.
type EngineRun struct {
	BaseModel
	WindowStart time.Time      `json:"window_start" gorm:"type:date;not null"`
	WindowEnd   time.Time      `json:"window_end" gorm:"type:date;not null"`
	Processed   int            `json:"processed" gorm:"default:0"`
	Scheduled   int            `json:"scheduled" gorm:"default:0"`
	Failed      int            `json:"failed" gorm:"default:0"`
	Swapped     int            `json:"swapped" gorm:"default:0"`
	Failures    RunFailureList `json:"failures" gorm:"type:jsonb"`
	StartedAt   time.Time      `json:"started_at" gorm:"not null"`
	FinishedAt  time.Time      `json:"finished_at"`
}

// TableName returns the table name for EngineRun
func (EngineRun) TableName() string {
	return "engine_runs"
}
