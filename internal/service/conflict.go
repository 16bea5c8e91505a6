package service

import (
	"errors"
	"fmt"
	"time"

	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ConflictItem is one detected conflict or warning
type ConflictItem struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
	Detail  string        `json:"detail,omitempty"`
}

// ConflictReport is the result of checking a candidate assignment against an
// employee's other active schedules. CanProceed is true iff there are zero
// hard conflicts; warnings alone never block.
type ConflictReport struct {
	HasConflicts bool           `json:"has_conflicts"`
	HasWarnings  bool           `json:"has_warnings"`
	Conflicts    []ConflictItem `json:"conflicts"`
	Warnings     []ConflictItem `json:"warnings"`
	CanProceed   bool           `json:"can_proceed"`
}

// ConflictService answers "will this assignment work?" both for interactive
// checks before a manual assignment and for engine candidate scoring.
type ConflictService struct {
	constraint   *ConstraintService
	employeeRepo repository.EmployeeRepositoryInterface
	eventRepo    repository.EventRepositoryInterface
}

// NewConflictService creates a new conflict service
func NewConflictService(
	constraint *ConstraintService,
	employeeRepo repository.EmployeeRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
) *ConflictService {
	return &ConflictService{
		constraint:   constraint,
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
	}
}

// Detect re-runs the hard/soft checks for a candidate against the employee's
// other active schedules. excludeScheduleID supports the "move this schedule"
// case without self-conflicting.
func (s *ConflictService) Detect(employeeID, eventID uuid.UUID, candidate time.Time, excludeScheduleID *uuid.UUID) (*ConflictReport, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	event, err := s.eventRepo.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	result, err := s.constraint.ValidateExcluding(employee, event, candidate, excludeScheduleID)
	if err != nil {
		return nil, err
	}

	report := &ConflictReport{
		Conflicts: make([]ConflictItem, 0, len(result.Violations)),
		Warnings:  make([]ConflictItem, 0, len(result.Warnings)),
	}
	for _, v := range result.Violations {
		report.Conflicts = append(report.Conflicts, ConflictItem(v))
	}
	for _, w := range result.Warnings {
		report.Warnings = append(report.Warnings, ConflictItem(w))
	}

	report.HasConflicts = len(report.Conflicts) > 0
	report.HasWarnings = len(report.Warnings) > 0
	report.CanProceed = !report.HasConflicts
	return report, nil
}
