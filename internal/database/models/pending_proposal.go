package models

import (
	"time"

	"github.com/google/uuid"
)

// PendingProposal is an engine-generated candidate assignment awaiting human
// review. Approved proposals are promoted into real Schedule records; rejected
// and submitted are terminal. Version guards against concurrent edits.
type PendingProposal struct {
	BaseModel
	EventID       uuid.UUID      `json:"event_id" gorm:"type:uuid;not null;index" validate:"required"`
	EmployeeID    uuid.UUID      `json:"employee_id" gorm:"type:uuid;not null;index" validate:"required"`
	StartDatetime time.Time      `json:"start_datetime" gorm:"not null" validate:"required"`
	Status        ProposalStatus `json:"status" gorm:"type:varchar(20);not null;default:'proposed';index"`
	Rationale     string         `json:"rationale" gorm:"type:text"`
	Score         float64        `json:"score" gorm:"default:0"`
	Flagged       bool           `json:"flagged" gorm:"default:false"`
	Version       int            `json:"version" gorm:"default:1"`
	EngineRunID   *uuid.UUID     `json:"engine_run_id" gorm:"type:uuid;index"`

	// Relationships
	Event    Event    `json:"event,omitempty" gorm:"foreignKey:EventID"`
	Employee Employee `json:"employee,omitempty" gorm:"foreignKey:EmployeeID"`
}

// TableName returns the table name for PendingProposal
func (PendingProposal) TableName() string {
	return "pending_proposals"
}
