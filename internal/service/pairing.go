package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/logger"
	"staffing-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CompanionState is the three-way outcome of a companion lookup. The
// distinction between an absent companion and a present-but-unscheduled one is
// deliberate: audit records and the UI depend on which case occurred.
type CompanionState string

const (
	CompanionAbsent      CompanionState = "absent"
	CompanionUnscheduled CompanionState = "present_unscheduled"
	CompanionScheduled   CompanionState = "present_scheduled"
)

// CompanionLookup is the result of resolving a core event's paired supervisor
// event.
type CompanionLookup struct {
	State    CompanionState
	Event    *models.Event
	Schedule *models.Schedule
}

// PairingResult reports the outcome of a pairing-managed operation
type PairingResult struct {
	Success           bool            `json:"success"`
	CompanionAffected bool            `json:"companion_affected"`
	CompanionState    CompanionState  `json:"companion_state"`
	Schedule          *models.Schedule `json:"schedule,omitempty"`
	CompanionSchedule *models.Schedule `json:"companion_schedule,omitempty"`
}

// PairingService guarantees that a core event and its paired supervisor event
// are rescheduled or unscheduled together. Local changes and the external
// sync calls run inside one GORM transaction; the sync calls are the commit
// point, so any sync failure rolls back every local change. When invoked
// inside an enclosing transaction GORM nests via savepoints, so a pairing
// rollback does not abort the outer scope.
type PairingService struct {
	db           *gorm.DB
	sync         ExternalSchedulerInterface
	availability *AvailabilityService
	constraint   *ConstraintService
	cfg          *config.Config
	log          *logger.Logger
}

// NewPairingService creates a new pairing service
func NewPairingService(
	db *gorm.DB,
	sync ExternalSchedulerInterface,
	availability *AvailabilityService,
	constraint *ConstraintService,
	cfg *config.Config,
) *PairingService {
	return &PairingService{
		db:           db,
		sync:         sync,
		availability: availability,
		constraint:   constraint,
		cfg:          cfg,
		log:          logger.ForComponent("pairing"),
	}
}

// CompanionOffset returns the configured supervisor start offset
func (s *PairingService) CompanionOffset() time.Duration {
	return time.Duration(s.cfg.SupervisorOffsetHours) * time.Hour
}

// constraintInTx builds a validator whose reads go through the caller's
// transaction, so checks see assignments created earlier in the same
// uncommitted scope.
func (s *PairingService) constraintInTx(tx *gorm.DB) *ConstraintService {
	availability := NewAvailabilityService(
		repository.NewEmployeeRepository(tx),
		repository.NewAvailabilityOverrideRepository(tx),
		repository.NewTimeOffRepository(tx),
		repository.NewCompanyHolidayRepository(tx),
		s.cfg,
	)
	return NewConstraintService(availability, repository.NewScheduleRepository(tx), s.cfg)
}

// FindCompanion resolves the supervisor event paired with a core event.
// Absence of a token or a match is an expected, non-fatal condition.
func (s *PairingService) FindCompanion(event *models.Event) (*CompanionLookup, error) {
	return s.findCompanion(s.db, event)
}

func (s *PairingService) findCompanion(tx *gorm.DB, event *models.Event) (*CompanionLookup, error) {
	lookup := &CompanionLookup{State: CompanionAbsent}

	if event.EventType != models.EventTypeCore {
		return lookup, nil
	}

	token, ok := ParseEventNumber(event.DisplayName)
	if !ok || !token.MatchesType(models.EventTypeCore) {
		s.log.WithFields(map[string]interface{}{
			"event_id":     event.ID,
			"display_name": event.DisplayName,
		}).Debug("no event-number token, proceeding core-only")
		return lookup, nil
	}

	events := repository.NewEventRepository(tx)
	candidates, err := events.FindByEventNumber(token.Number)
	if err != nil {
		return nil, fmt.Errorf("companion search failed: %w", err)
	}

	var matches []models.Event
	for _, candidate := range candidates {
		candidateToken, ok := ParseEventNumber(candidate.DisplayName)
		if !ok || candidateToken.Number != token.Number {
			continue
		}
		if candidateToken.MatchesType(models.EventTypeSupervisor) {
			matches = append(matches, candidate)
		}
	}

	if len(matches) == 0 {
		s.log.WithFields(map[string]interface{}{
			"event_id":     event.ID,
			"event_number": token.Number,
		}).Debug("no supervisor companion found, proceeding core-only")
		return lookup, nil
	}
	if len(matches) > 1 {
		s.log.WithFields(map[string]interface{}{
			"event_id":     event.ID,
			"event_number": token.Number,
			"match_count":  len(matches),
		}).Warn("multiple supervisor companions share one event number, using first in stable order")
	}

	companion := matches[0]
	lookup.Event = &companion
	lookup.State = CompanionUnscheduled

	schedules := repository.NewScheduleRepository(tx)
	schedule, err := schedules.GetActiveByEventID(companion.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return lookup, nil
		}
		return nil, fmt.Errorf("companion schedule lookup failed: %w", err)
	}

	lookup.Schedule = schedule
	lookup.State = CompanionScheduled
	return lookup, nil
}

// Reschedule moves a core event's schedule to newStart and, when its
// supervisor companion is currently scheduled, moves the companion to
// newStart plus the configured offset in the same transaction. Both updated
// assignments are pushed to the external system before commit; a sync failure
// rolls back both local changes.
func (s *PairingService) Reschedule(scheduleID uuid.UUID, newStart time.Time) (*PairingResult, error) {
	var result *PairingResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		schedules := repository.NewScheduleRepository(tx)

		schedule, err := schedules.GetByID(scheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrScheduleNotFound
			}
			return fmt.Errorf("failed to get schedule: %w", err)
		}
		event := &schedule.Event

		if !event.WindowContains(newStart) {
			return apperrors.NewValidationError("start_datetime", "candidate date-time is outside the event's valid scheduling window")
		}

		oldStart := schedule.StartDatetime
		schedule.StartDatetime = newStart
		if err := schedules.UpdateVersioned(schedule); err != nil {
			return err
		}

		companion, err := s.findCompanion(tx, event)
		if err != nil {
			return err
		}

		companionAffected := false
		var companionOld time.Time
		if companion.State == CompanionScheduled {
			companionOld = companion.Schedule.StartDatetime
			companion.Schedule.StartDatetime = newStart.Add(s.CompanionOffset())
			if err := schedules.UpdateVersioned(companion.Schedule); err != nil {
				return err
			}
			companionAffected = true
		}

		// External sync is the commit point; local changes above are
		// provisional until both pushes succeed.
		ctx := context.Background()
		externalID, err := s.sync.ScheduleEvent(ctx, schedule.Employee.EmployeeNumber, event.RefNum, newStart)
		if err != nil {
			s.logDecision(event, companion.State, "reschedule rolled back", map[string]interface{}{
				"old_start": oldStart, "new_start": newStart, "cause": err.Error(),
			})
			return apperrors.NewSyncFailureError("reschedule", event.RefNum, err)
		}
		if err := tx.Model(schedule).Update("external_id", externalID).Error; err != nil {
			return err
		}

		if companionAffected {
			companionExternalID, err := s.sync.ScheduleEvent(ctx,
				companion.Schedule.Employee.EmployeeNumber,
				companion.Event.RefNum,
				companion.Schedule.StartDatetime)
			if err != nil {
				s.logDecision(event, companion.State, "reschedule rolled back", map[string]interface{}{
					"old_start":         oldStart,
					"new_start":         newStart,
					"companion_event":   companion.Event.ID,
					"companion_old":     companionOld,
					"cause":             err.Error(),
				})
				return apperrors.NewSyncFailureError("reschedule", companion.Event.RefNum, err)
			}
			if err := tx.Model(companion.Schedule).Update("external_id", companionExternalID).Error; err != nil {
				return err
			}
		}

		s.logDecision(event, companion.State, "reschedule committed", map[string]interface{}{
			"old_start":          oldStart,
			"new_start":          newStart,
			"companion_affected": companionAffected,
		})

		result = &PairingResult{
			Success:           true,
			CompanionAffected: companionAffected,
			CompanionState:    companion.State,
			Schedule:          schedule,
			CompanionSchedule: companion.Schedule,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// Unschedule clears a core event's schedule and status and, when the
// supervisor companion is currently scheduled, clears the companion in the
// same transaction. The external unschedule calls follow the same
// commit-point discipline as Reschedule.
func (s *PairingService) Unschedule(scheduleID uuid.UUID) (*PairingResult, error) {
	var result *PairingResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		schedules := repository.NewScheduleRepository(tx)
		events := repository.NewEventRepository(tx)

		schedule, err := schedules.GetByID(scheduleID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrScheduleNotFound
			}
			return fmt.Errorf("failed to get schedule: %w", err)
		}
		event := &schedule.Event

		companion, err := s.findCompanion(tx, event)
		if err != nil {
			return err
		}

		if err := s.clearAssignment(tx, schedules, events, schedule, event); err != nil {
			return err
		}

		companionAffected := false
		if companion.State == CompanionScheduled {
			if err := s.clearAssignment(tx, schedules, events, companion.Schedule, companion.Event); err != nil {
				return err
			}
			companionAffected = true
		}

		ctx := context.Background()
		if schedule.ExternalID != "" {
			if err := s.sync.UnscheduleEvent(ctx, schedule.ExternalID); err != nil {
				s.logDecision(event, companion.State, "unschedule rolled back", map[string]interface{}{
					"cause": err.Error(),
				})
				return apperrors.NewSyncFailureError("unschedule", event.RefNum, err)
			}
		}
		if companionAffected && companion.Schedule.ExternalID != "" {
			if err := s.sync.UnscheduleEvent(ctx, companion.Schedule.ExternalID); err != nil {
				s.logDecision(event, companion.State, "unschedule rolled back", map[string]interface{}{
					"companion_event": companion.Event.ID,
					"cause":           err.Error(),
				})
				return apperrors.NewSyncFailureError("unschedule", companion.Event.RefNum, err)
			}
		}

		s.logDecision(event, companion.State, "unschedule committed", map[string]interface{}{
			"companion_affected": companionAffected,
		})

		result = &PairingResult{
			Success:           true,
			CompanionAffected: companionAffected,
			CompanionState:    companion.State,
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// ScheduleEvent performs a manual/initial assignment of an event. For core
// events it attempts to auto-schedule an unstaffed supervisor companion with
// any capable, available employee at the configured offset; not finding one is
// logged and never blocks the core assignment. Both assignments are pushed to
// the external system before commit.
func (s *PairingService) ScheduleEvent(eventID, employeeID uuid.UUID, start time.Time) (*PairingResult, error) {
	var result *PairingResult
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res, err := s.PromoteInTx(tx, eventID, employeeID, start, true)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// PromoteInTx creates the committed schedule for an event inside the caller's
// transaction, running the companion cascade for core events. push controls
// whether the assignments are sent to the external system now (manual
// scheduling) or left for a later submission step (proposal approval).
func (s *PairingService) PromoteInTx(tx *gorm.DB, eventID, employeeID uuid.UUID, start time.Time, push bool) (*PairingResult, error) {
	events := repository.NewEventRepository(tx)
	employees := repository.NewEmployeeRepository(tx)
	schedules := repository.NewScheduleRepository(tx)

	event, err := events.GetByID(eventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	if event.IsScheduled {
		return nil, apperrors.ErrEventAlreadyScheduled
	}
	if !event.WindowContains(start) {
		return nil, apperrors.NewValidationError("start_datetime", "candidate date-time is outside the event's valid scheduling window")
	}

	employee, err := employees.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}

	// Hard constraints gate every promotion, whether it came from a manual
	// request or an approved proposal.
	constraint := s.constraintInTx(tx)
	check, err := constraint.Validate(employee, event, start)
	if err != nil {
		return nil, err
	}
	if !check.OK {
		return nil, apperrors.NewValidationError("assignment", strings.Join(check.Reasons(), "; "))
	}

	schedule, err := s.createAssignment(tx, schedules, events, event, employee, start)
	if err != nil {
		return nil, err
	}

	companion, err := s.findCompanion(tx, event)
	if err != nil {
		return nil, err
	}

	companionAffected := false
	var companionSchedule *models.Schedule
	if companion.State == CompanionUnscheduled {
		companionStart := start.Add(s.CompanionOffset())

		// An open proposal on the companion is a reviewer's (or the
		// engine's) explicit pairing choice and wins over a blind pick.
		companionEmployee, adopted, err := s.adoptCompanionProposal(tx, constraint, companion.Event)
		if err != nil {
			return nil, err
		}
		if adopted != nil {
			companionStart = adopted.StartDatetime
		} else {
			companionEmployee, err = s.pickCompanionEmployee(tx, constraint, companion.Event, companionStart)
			if err != nil {
				return nil, err
			}
		}

		if companionEmployee == nil {
			s.logDecision(event, companion.State, "companion auto-schedule skipped", map[string]interface{}{
				"companion_event": companion.Event.ID,
				"reason":          "no capable available employee",
			})
		} else {
			companionSchedule, err = s.createAssignment(tx, schedules, events, companion.Event, companionEmployee, companionStart)
			if err != nil {
				return nil, err
			}
			companionAffected = true
			if adopted != nil {
				adopted.Status = models.ProposalStatusApproved
				if err := repository.NewPendingProposalRepository(tx).UpdateVersioned(adopted); err != nil {
					return nil, err
				}
			}
		}
	}

	if push {
		ctx := context.Background()
		externalID, err := s.sync.ScheduleEvent(ctx, employee.EmployeeNumber, event.RefNum, start)
		if err != nil {
			s.logDecision(event, companion.State, "schedule rolled back", map[string]interface{}{
				"cause": err.Error(),
			})
			return nil, apperrors.NewSyncFailureError("schedule", event.RefNum, err)
		}
		if err := tx.Model(schedule).Update("external_id", externalID).Error; err != nil {
			return nil, err
		}

		if companionAffected {
			companionExternalID, err := s.sync.ScheduleEvent(ctx,
				companionSchedule.Employee.EmployeeNumber,
				companion.Event.RefNum,
				companionSchedule.StartDatetime)
			if err != nil {
				s.logDecision(event, companion.State, "schedule rolled back", map[string]interface{}{
					"companion_event": companion.Event.ID,
					"cause":           err.Error(),
				})
				return nil, apperrors.NewSyncFailureError("schedule", companion.Event.RefNum, err)
			}
			if err := tx.Model(companionSchedule).Update("external_id", companionExternalID).Error; err != nil {
				return nil, err
			}
		}
	}

	s.logDecision(event, companion.State, "schedule committed", map[string]interface{}{
		"start":              start,
		"companion_affected": companionAffected,
	})

	return &PairingResult{
		Success:           true,
		CompanionAffected: companionAffected,
		CompanionState:    companion.State,
		Schedule:          schedule,
		CompanionSchedule: companionSchedule,
	}, nil
}

// adoptCompanionProposal looks for an open, unflagged proposal on the
// companion event whose assignment still validates. Returns nils when no
// proposal qualifies.
func (s *PairingService) adoptCompanionProposal(tx *gorm.DB, constraint *ConstraintService, companion *models.Event) (*models.Employee, *models.PendingProposal, error) {
	proposals := repository.NewPendingProposalRepository(tx)
	open, err := proposals.GetOpenByEventID(companion.ID)
	if err != nil {
		return nil, nil, fmt.Errorf("companion proposal lookup failed: %w", err)
	}

	employees := repository.NewEmployeeRepository(tx)
	for i := range open {
		proposal := &open[i]
		if proposal.Flagged {
			continue
		}
		candidate, err := employees.GetByID(proposal.EmployeeID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, nil, fmt.Errorf("companion proposal employee lookup failed: %w", err)
		}
		result, err := constraint.Validate(candidate, companion, proposal.StartDatetime)
		if err != nil {
			return nil, nil, err
		}
		if result.OK {
			return candidate, proposal, nil
		}
	}
	return nil, nil, nil
}

// pickCompanionEmployee finds the first capable, available employee for the
// companion in stable employee-number order, or nil when nobody fits. Reads
// go through the transaction so the core assignment made moments earlier
// counts against the candidate.
func (s *PairingService) pickCompanionEmployee(tx *gorm.DB, constraint *ConstraintService, companion *models.Event, start time.Time) (*models.Employee, error) {
	employees := repository.NewEmployeeRepository(tx)
	candidates, err := employees.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load candidate pool: %w", err)
	}

	for i := range candidates {
		candidate := &candidates[i]
		if !candidate.CanWork(companion.EventType) {
			continue
		}
		result, err := constraint.Validate(candidate, companion, start)
		if err != nil {
			return nil, err
		}
		if result.OK {
			return candidate, nil
		}
	}
	return nil, nil
}

func (s *PairingService) createAssignment(tx *gorm.DB, schedules *repository.ScheduleRepository, events *repository.EventRepository, event *models.Event, employee *models.Employee, start time.Time) (*models.Schedule, error) {
	schedule := &models.Schedule{
		EventID:       event.ID,
		EmployeeID:    employee.ID,
		StartDatetime: start,
		Version:       1,
	}
	if err := schedules.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}
	schedule.Event = *event
	schedule.Employee = *employee

	event.Status = models.EventStatusScheduled
	event.IsScheduled = true
	if err := events.Update(event); err != nil {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}
	return schedule, nil
}

func (s *PairingService) clearAssignment(tx *gorm.DB, schedules *repository.ScheduleRepository, events *repository.EventRepository, schedule *models.Schedule, event *models.Event) error {
	if err := schedules.Delete(schedule.ID); err != nil {
		return fmt.Errorf("failed to delete schedule: %w", err)
	}
	event.Status = models.EventStatusUnstaffed
	event.IsScheduled = false
	if err := events.Update(event); err != nil {
		return fmt.Errorf("failed to update event status: %w", err)
	}
	return nil
}

func (s *PairingService) logDecision(event *models.Event, state CompanionState, outcome string, fields map[string]interface{}) {
	entry := s.log.WithFields(map[string]interface{}{
		"event_id":        event.ID,
		"event_ref":       event.RefNum,
		"display_name":    event.DisplayName,
		"companion_state": state,
	})
	if fields != nil {
		entry = entry.WithFields(fields)
	}
	entry.Info(outcome)
}
