package service

import (
	"errors"
	"fmt"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	"staffing-backend/internal/logger"
	"staffing-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EngineService generates staffing proposals for unstaffed events. It never
// writes Schedule records itself; every placement is a PendingProposal for
// human review, and every pass is recorded as an EngineRun whether or not
// anything could be placed.
type EngineService struct {
	db           *gorm.DB
	eventRepo    repository.EventRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	scheduleRepo repository.ScheduleRepositoryInterface
	proposalRepo repository.PendingProposalRepositoryInterface
	runRepo      repository.EngineRunRepositoryInterface
	rotationRepo repository.RotationAssignmentRepositoryInterface
	constraint   *ConstraintService
	pairing      *PairingService
	cfg          *config.Config
	log          *logger.Logger
}

// NewEngineService creates a new engine service
func NewEngineService(
	db *gorm.DB,
	eventRepo repository.EventRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	scheduleRepo repository.ScheduleRepositoryInterface,
	proposalRepo repository.PendingProposalRepositoryInterface,
	runRepo repository.EngineRunRepositoryInterface,
	rotationRepo repository.RotationAssignmentRepositoryInterface,
	constraint *ConstraintService,
	pairing *PairingService,
	cfg *config.Config,
) *EngineService {
	return &EngineService{
		db:           db,
		eventRepo:    eventRepo,
		employeeRepo: employeeRepo,
		scheduleRepo: scheduleRepo,
		proposalRepo: proposalRepo,
		runRepo:      runRepo,
		rotationRepo: rotationRepo,
		constraint:   constraint,
		pairing:      pairing,
		cfg:          cfg,
		log:          logger.ForComponent("engine"),
	}
}

// slotReservation is a time slot claimed for one employee by an open
// proposal, either from an earlier run or from earlier in this pass.
type slotReservation struct {
	start time.Time
	end   time.Time
}

// runState carries the in-flight bookkeeping of one engine pass: the roster,
// the workload ledger that counts both committed schedules and proposals made
// earlier in this same pass, the claimed time slots, and the run record
// being built.
type runState struct {
	run         *models.EngineRun
	roster      []models.Employee
	ledger      map[uuid.UUID]int64
	reserved    map[uuid.UUID][]slotReservation
	handled     map[uuid.UUID]bool
	windowStart time.Time
	windowEnd   time.Time
}

// reserve claims a time slot for the rest of the pass and bumps the
// workload ledger.
func (st *runState) reserve(employeeID uuid.UUID, start, end time.Time) {
	st.reserved[employeeID] = append(st.reserved[employeeID], slotReservation{start: start, end: end})
	st.ledger[employeeID]++
}

// slotTaken reports whether a candidate collides with a claimed slot or
// would push the employee past their daily cap counting claimed slots.
func (st *runState) slotTaken(employee *models.Employee, start, end time.Time) bool {
	sameDay := 0
	for _, r := range st.reserved[employee.ID] {
		if Overlaps(start, end, r.start, r.end) {
			return true
		}
		if sameDate(start, r.start) {
			sameDay++
		}
	}
	return employee.MaxEventsPerDay > 0 && sameDay+1 > employee.MaxEventsPerDay
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

// DefaultWindow returns the engine's default planning window, today through
// the configured number of days ahead.
func (s *EngineService) DefaultWindow() (time.Time, time.Time) {
	now := time.Now()
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, s.cfg.EngineWindowDays)
}

// RunOnce executes one engine pass over the window and returns the completed
// run record. Events that already have an open proposal are left alone, so
// repeated passes over the same window are idempotent. Unplaceable events are
// recorded as failures on the run, not returned as errors.
func (s *EngineService) RunOnce(windowStart, windowEnd time.Time) (*models.EngineRun, error) {
	if windowStart.IsZero() || windowEnd.IsZero() {
		windowStart, windowEnd = s.DefaultWindow()
	}
	if !windowEnd.After(windowStart) {
		return nil, fmt.Errorf("window end %s is not after window start %s",
			windowEnd.Format("2006-01-02"), windowStart.Format("2006-01-02"))
	}

	run := &models.EngineRun{
		WindowStart: windowStart,
		WindowEnd:   windowEnd,
		StartedAt:   time.Now(),
		Failures:    models.RunFailureList{},
	}
	if err := s.runRepo.Create(run); err != nil {
		return nil, fmt.Errorf("failed to create engine run: %w", err)
	}

	state, err := s.prepare(run, windowStart, windowEnd)
	if err != nil {
		return nil, err
	}

	events, err := s.eventRepo.GetUnstaffedInWindow(windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load unstaffed events: %w", err)
	}

	for i := range events {
		event := &events[i]
		if err := s.processEvent(state, event); err != nil {
			return nil, err
		}
	}

	run.FinishedAt = time.Now()
	if err := s.runRepo.Update(run); err != nil {
		return nil, fmt.Errorf("failed to finalize engine run: %w", err)
	}

	s.log.WithFields(map[string]interface{}{
		"run_id":    run.ID,
		"processed": run.Processed,
		"scheduled": run.Scheduled,
		"failed":    run.Failed,
	}).Info("engine pass complete")
	return run, nil
}

func (s *EngineService) prepare(run *models.EngineRun, windowStart, windowEnd time.Time) (*runState, error) {
	roster, err := s.employeeRepo.GetActive()
	if err != nil {
		return nil, fmt.Errorf("failed to load roster: %w", err)
	}

	ledger, err := s.scheduleRepo.CountActiveBetweenForEmployees(windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load workload counts: %w", err)
	}
	if ledger == nil {
		ledger = map[uuid.UUID]int64{}
	}

	// Open proposals from earlier runs already claim their slots; without
	// this a later pass would stack a second event onto the same time.
	open, err := s.proposalRepo.GetOpenBetween(windowStart, windowEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load open proposals: %w", err)
	}
	reserved := map[uuid.UUID][]slotReservation{}
	for i := range open {
		proposal := &open[i]
		reserved[proposal.EmployeeID] = append(reserved[proposal.EmployeeID], slotReservation{
			start: proposal.StartDatetime,
			end:   proposal.StartDatetime.Add(proposal.Event.Duration()),
		})
		ledger[proposal.EmployeeID]++
	}

	return &runState{
		run:         run,
		roster:      roster,
		ledger:      ledger,
		reserved:    reserved,
		handled:     map[uuid.UUID]bool{},
		windowStart: windowStart,
		windowEnd:   windowEnd,
	}, nil
}

func (s *EngineService) processEvent(state *runState, event *models.Event) error {
	if state.handled[event.ID] {
		return nil
	}
	state.run.Processed++

	open, err := s.proposalRepo.GetOpenByEventID(event.ID)
	if err != nil {
		return fmt.Errorf("failed to check open proposals: %w", err)
	}
	if len(open) > 0 {
		s.log.WithFields(map[string]interface{}{
			"event_id":  event.ID,
			"event_ref": event.RefNum,
		}).Debug("open proposal exists, skipping")
		return nil
	}

	placement, lastReasons, err := s.placeEvent(state, event)
	if err != nil {
		return err
	}
	if placement == nil {
		state.run.Failed++
		state.run.Failures = append(state.run.Failures, models.RunFailure{
			EventID:     event.ID.String(),
			DisplayName: event.DisplayName,
			Reasons:     lastReasons,
		})
		s.log.WithFields(map[string]interface{}{
			"event_id":  event.ID,
			"event_ref": event.RefNum,
			"reasons":   lastReasons,
		}).Info("no feasible placement")
		return nil
	}

	state.run.Scheduled++
	s.log.WithFields(map[string]interface{}{
		"event_id":    event.ID,
		"event_ref":   event.RefNum,
		"employee_id": placement.EmployeeID,
		"start":       placement.StartDatetime,
	}).Info("proposal created")

	if event.EventType == models.EventTypeCore {
		if err := s.proposeCompanion(state, event, placement.StartDatetime); err != nil {
			return err
		}
	}
	return nil
}

// placeEvent tries candidate dates earliest-first within the overlap of the
// run window and the event window, and for each date tries candidates in
// rotation-then-least-loaded order. The first fully valid pair wins. When
// nothing fits, the reasons of the last attempt come back for the run record.
func (s *EngineService) placeEvent(state *runState, event *models.Event) (*models.PendingProposal, []string, error) {
	from := event.StartWindow
	if state.windowStart.After(from) {
		from = state.windowStart
	}
	to := event.DueDate
	if state.windowEnd.Before(to) {
		to = state.windowEnd
	}

	lastReasons := []string{"no candidate dates inside the planning window"}
	for day := from; !day.After(to); day = day.AddDate(0, 0, 1) {
		candidate := time.Date(day.Year(), day.Month(), day.Day(),
			s.cfg.DefaultEventStartHour, 0, 0, 0, day.Location())

		candidates, err := s.candidatesFor(state, event, day)
		if err != nil {
			return nil, nil, err
		}
		if len(candidates) == 0 {
			lastReasons = []string{fmt.Sprintf("no employee is capable of %s events", event.EventType)}
			continue
		}

		candidateEnd := candidate.Add(event.Duration())
		for _, employee := range candidates {
			if state.slotTaken(employee, candidate, candidateEnd) {
				lastReasons = []string{"time slot already claimed by an open proposal"}
				continue
			}
			result, err := s.constraint.Validate(employee, event, candidate)
			if err != nil {
				return nil, nil, err
			}
			if !result.OK {
				lastReasons = result.Reasons()
				continue
			}

			proposal := &models.PendingProposal{
				EventID:       event.ID,
				EmployeeID:    employee.ID,
				StartDatetime: candidate,
				Status:        models.ProposalStatusProposed,
				Rationale: fmt.Sprintf("least-loaded capable employee (%d assignments in window), earliest open date %s",
					state.ledger[employee.ID], candidate.Format("2006-01-02")),
				Score:       1.0 / float64(1+state.ledger[employee.ID]),
				Version:     1,
				EngineRunID: &state.run.ID,
			}
			if err := s.proposalRepo.Create(proposal); err != nil {
				return nil, nil, fmt.Errorf("failed to create proposal: %w", err)
			}
			state.reserve(employee.ID, candidate, candidateEnd)
			return proposal, nil, nil
		}
	}
	return nil, lastReasons, nil
}

// candidatesFor orders the capable roster for one event and date: the day's
// rotation designate first when the event type is rotation-governed, then
// everyone else by current workload ascending with employee number as the
// stable tie-break.
func (s *EngineService) candidatesFor(state *runState, event *models.Event, day time.Time) ([]*models.Employee, error) {
	capable := make([]*models.Employee, 0, len(state.roster))
	for i := range state.roster {
		if state.roster[i].CanWork(event.EventType) {
			capable = append(capable, &state.roster[i])
		}
	}

	var designateID uuid.UUID
	if category := event.EventType.RotationCategory(); category != "" {
		rotation, err := s.rotationRepo.GetByDateAndCategory(day, category)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to look up rotation: %w", err)
		}
		if rotation != nil {
			designateID = rotation.EmployeeID
		}
	}

	ordered := make([]*models.Employee, 0, len(capable))
	for _, e := range capable {
		if e.ID == designateID {
			ordered = append(ordered, e)
		}
	}
	rest := make([]*models.Employee, 0, len(capable))
	for _, e := range capable {
		if e.ID != designateID {
			rest = append(rest, e)
		}
	}

	// Roster comes back in employee-number order, so a stable sort by load
	// preserves that as the tie-break.
	for i := 1; i < len(rest); i++ {
		for j := i; j > 0 && state.ledger[rest[j].ID] < state.ledger[rest[j-1].ID]; j-- {
			rest[j], rest[j-1] = rest[j-1], rest[j]
		}
	}
	return append(ordered, rest...), nil
}

// proposeCompanion creates the paired supervisor proposal for a core event's
// placement. A companion that cannot be placed is a failure entry for the run
// but never unwinds the core proposal.
func (s *EngineService) proposeCompanion(state *runState, event *models.Event, coreStart time.Time) error {
	companion, err := s.pairing.FindCompanion(event)
	if err != nil {
		return err
	}
	if companion.State != CompanionUnscheduled {
		return nil
	}

	open, err := s.proposalRepo.GetOpenByEventID(companion.Event.ID)
	if err != nil {
		return fmt.Errorf("failed to check companion proposals: %w", err)
	}
	if len(open) > 0 {
		return nil
	}

	// Count the companion here and mark it so the main loop does not count
	// it a second time when it reaches the supervisor row.
	state.run.Processed++
	state.handled[companion.Event.ID] = true
	companionStart := coreStart.Add(s.pairing.CompanionOffset())
	companionEnd := companionStart.Add(companion.Event.Duration())

	candidates, err := s.candidatesFor(state, companion.Event, companionStart)
	if err != nil {
		return err
	}

	lastReasons := []string{fmt.Sprintf("no employee is capable of %s events", companion.Event.EventType)}
	for _, employee := range candidates {
		if state.slotTaken(employee, companionStart, companionEnd) {
			lastReasons = []string{"time slot already claimed by an open proposal"}
			continue
		}
		result, err := s.constraint.Validate(employee, companion.Event, companionStart)
		if err != nil {
			return err
		}
		if !result.OK {
			lastReasons = result.Reasons()
			continue
		}

		proposal := &models.PendingProposal{
			EventID:       companion.Event.ID,
			EmployeeID:    employee.ID,
			StartDatetime: companionStart,
			Status:        models.ProposalStatusProposed,
			Rationale: fmt.Sprintf("supervisor pairing for %s, offset %s after the core event",
				event.DisplayName, s.pairing.CompanionOffset()),
			Score:       1.0 / float64(1+state.ledger[employee.ID]),
			Version:     1,
			EngineRunID: &state.run.ID,
		}
		if err := s.proposalRepo.Create(proposal); err != nil {
			return fmt.Errorf("failed to create companion proposal: %w", err)
		}

		state.run.Scheduled++
		state.reserve(employee.ID, companionStart, companionEnd)
		s.log.WithFields(map[string]interface{}{
			"event_id":    companion.Event.ID,
			"core_event":  event.ID,
			"employee_id": employee.ID,
			"start":       companionStart,
		}).Info("companion proposal created")
		return nil
	}

	state.run.Failed++
	state.run.Failures = append(state.run.Failures, models.RunFailure{
		EventID:     companion.Event.ID.String(),
		DisplayName: companion.Event.DisplayName,
		Reasons:     lastReasons,
	})
	return nil
}
