package service

import (
	"fmt"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	"staffing-backend/internal/repository"

	"github.com/google/uuid"
)

// ViolationKind is the machine-readable identity of a constraint violation
type ViolationKind string

// Hard constraint kinds; any of these rejects a candidate outright.
const (
	ViolationUnavailable         ViolationKind = "unavailable"
	ViolationMissingCapability   ViolationKind = "missing_capability"
	ViolationEventTypeRestricted ViolationKind = "event_type_restricted"
	ViolationOutsideWindow       ViolationKind = "outside_window"
	ViolationTimeOverlap         ViolationKind = "time_overlap"
	ViolationDailyLimit          ViolationKind = "daily_limit_exceeded"
	ViolationWeeklyLimit         ViolationKind = "weekly_limit_exceeded"
)

// Soft constraint kinds; recorded as warnings, never blocking on their own.
const (
	ViolationInsufficientRest  ViolationKind = "insufficient_rest"
	ViolationPreferredWorkload ViolationKind = "preferred_workload_exceeded"
	ViolationTimeOfDay         ViolationKind = "time_of_day_mismatch"
)

// Violation carries a machine-readable kind, a human-readable message, and a
// detail string such as the colliding event's name and time.
type Violation struct {
	Kind    ViolationKind `json:"kind"`
	Message string        `json:"message"`
	Detail  string        `json:"detail,omitempty"`
}

// ValidationResult is the outcome of evaluating one (employee, event,
// date-time) candidate. OK is true iff no hard constraint was violated.
type ValidationResult struct {
	OK         bool        `json:"ok"`
	Violations []Violation `json:"violations"`
	Warnings   []Violation `json:"warnings"`
}

// Reasons flattens the hard violations into message strings
func (r *ValidationResult) Reasons() []string {
	reasons := make([]string, 0, len(r.Violations))
	for _, v := range r.Violations {
		reasons = append(reasons, v.Message)
	}
	return reasons
}

// ConstraintService evaluates hard and soft scheduling constraints for a
// candidate assignment.
type ConstraintService struct {
	availability *AvailabilityService
	scheduleRepo repository.ScheduleRepositoryInterface
	cfg          *config.Config
}

// NewConstraintService creates a new constraint service
func NewConstraintService(
	availability *AvailabilityService,
	scheduleRepo repository.ScheduleRepositoryInterface,
	cfg *config.Config,
) *ConstraintService {
	return &ConstraintService{
		availability: availability,
		scheduleRepo: scheduleRepo,
		cfg:          cfg,
	}
}

// Validate evaluates a candidate with no schedule excluded
func (s *ConstraintService) Validate(employee *models.Employee, event *models.Event, candidate time.Time) (*ValidationResult, error) {
	return s.ValidateExcluding(employee, event, candidate, nil)
}

// ValidateExcluding evaluates a candidate while ignoring one existing
// schedule, which supports moving a schedule without it conflicting with
// itself.
func (s *ConstraintService) ValidateExcluding(employee *models.Employee, event *models.Event, candidate time.Time, excludeScheduleID *uuid.UUID) (*ValidationResult, error) {
	result := &ValidationResult{Violations: []Violation{}, Warnings: []Violation{}}

	available, reason, err := s.availability.Resolve(employee, candidate)
	if err != nil {
		return nil, err
	}
	if !available {
		result.Violations = append(result.Violations, Violation{
			Kind:    ViolationUnavailable,
			Message: fmt.Sprintf("%s is unavailable on %s", employee.FullName(), candidate.Format("2006-01-02")),
			Detail:  reason,
		})
	}

	if employee.DisallowedEventTypes.Contains(event.EventType) {
		result.Violations = append(result.Violations, Violation{
			Kind:    ViolationEventTypeRestricted,
			Message: fmt.Sprintf("%s is not allowed to work %s events", employee.FullName(), event.EventType),
		})
	} else if !employee.CanWork(event.EventType) {
		result.Violations = append(result.Violations, Violation{
			Kind:    ViolationMissingCapability,
			Message: fmt.Sprintf("%s lacks the capability for %s events", employee.FullName(), event.EventType),
		})
	}

	if !event.WindowContains(candidate) {
		result.Violations = append(result.Violations, Violation{
			Kind: ViolationOutsideWindow,
			Message: fmt.Sprintf("candidate date %s is outside the event window %s to %s",
				candidate.Format("2006-01-02"),
				event.StartWindow.Format("2006-01-02"),
				event.DueDate.Format("2006-01-02")),
		})
	}

	daySchedules, err := s.scheduleRepo.GetByEmployeeAndDate(employee.ID, candidate)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules for overlap check: %w", err)
	}
	daySchedules = excludeSchedule(daySchedules, excludeScheduleID)

	candidateEnd := candidate.Add(event.Duration())
	for i := range daySchedules {
		other := &daySchedules[i]
		if Overlaps(candidate, candidateEnd, other.StartDatetime, other.End()) {
			result.Violations = append(result.Violations, Violation{
				Kind:    ViolationTimeOverlap,
				Message: "candidate time overlaps an existing assignment",
				Detail: fmt.Sprintf("%s at %s", other.Event.DisplayName,
					other.StartDatetime.Format("2006-01-02 15:04")),
			})
			break
		}
	}

	if employee.MaxEventsPerDay > 0 && len(daySchedules)+1 > employee.MaxEventsPerDay {
		result.Violations = append(result.Violations, Violation{
			Kind:    ViolationDailyLimit,
			Message: fmt.Sprintf("daily maximum of %d events would be exceeded", employee.MaxEventsPerDay),
		})
	}

	weekStart, weekEnd := WeekBounds(candidate)
	weekSchedules, err := s.scheduleRepo.GetByEmployeeBetween(employee.ID, weekStart, weekEnd)
	if err != nil {
		return nil, fmt.Errorf("failed to load schedules for weekly count: %w", err)
	}
	weekSchedules = excludeSchedule(weekSchedules, excludeScheduleID)

	if employee.MaxEventsPerWeek > 0 && len(weekSchedules)+1 > employee.MaxEventsPerWeek {
		result.Violations = append(result.Violations, Violation{
			Kind:    ViolationWeeklyLimit,
			Message: fmt.Sprintf("weekly maximum of %d events would be exceeded", employee.MaxEventsPerWeek),
		})
	}

	// Soft constraints below: recorded, never blocking.
	if employee.PreferredEventsPerWeek > 0 && len(weekSchedules)+1 > employee.PreferredEventsPerWeek {
		result.Warnings = append(result.Warnings, Violation{
			Kind:    ViolationPreferredWorkload,
			Message: fmt.Sprintf("preferred weekly workload of %d events would be exceeded", employee.PreferredEventsPerWeek),
		})
	}

	if warning := s.restWarning(employee, candidate, candidateEnd, excludeScheduleID); warning != nil {
		result.Warnings = append(result.Warnings, *warning)
	}

	if employee.PreferredTimeOfDay != "" && employee.PreferredTimeOfDay != models.TimeOfDayAny {
		if timeOfDayFor(candidate) != employee.PreferredTimeOfDay {
			result.Warnings = append(result.Warnings, Violation{
				Kind:    ViolationTimeOfDay,
				Message: fmt.Sprintf("candidate time is outside %s's preferred %s slot", employee.FullName(), employee.PreferredTimeOfDay),
			})
		}
	}

	result.OK = len(result.Violations) == 0
	return result, nil
}

// restWarning checks the configured minimum rest period against assignments
// on the adjacent days.
func (s *ConstraintService) restWarning(employee *models.Employee, candidate, candidateEnd time.Time, excludeScheduleID *uuid.UUID) *Violation {
	minRest := time.Duration(s.cfg.MinRestHours) * time.Hour
	if minRest <= 0 {
		return nil
	}

	for _, delta := range []int{-1, 1} {
		adjacent, err := s.scheduleRepo.GetByEmployeeAndDate(employee.ID, candidate.AddDate(0, 0, delta))
		if err != nil {
			continue
		}
		adjacent = excludeSchedule(adjacent, excludeScheduleID)
		for i := range adjacent {
			other := &adjacent[i]
			var gap time.Duration
			if delta < 0 {
				gap = candidate.Sub(other.End())
			} else {
				gap = other.StartDatetime.Sub(candidateEnd)
			}
			if gap < minRest {
				return &Violation{
					Kind:    ViolationInsufficientRest,
					Message: fmt.Sprintf("less than %d hours rest around an adjacent-day assignment", s.cfg.MinRestHours),
					Detail:  other.Event.DisplayName,
				}
			}
		}
	}
	return nil
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && bStart.Before(aEnd)
}

// WeekBounds returns the Monday-to-Monday half-open range containing date
func WeekBounds(date time.Time) (time.Time, time.Time) {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	offset := (int(day.Weekday()) + 6) % 7
	start := day.AddDate(0, 0, -offset)
	return start, start.AddDate(0, 0, 7)
}

func excludeSchedule(schedules []models.Schedule, excludeID *uuid.UUID) []models.Schedule {
	if excludeID == nil {
		return schedules
	}
	filtered := schedules[:0]
	for _, s := range schedules {
		if s.ID != *excludeID {
			filtered = append(filtered, s)
		}
	}
	return filtered
}

func timeOfDayFor(t time.Time) models.TimeOfDay {
	if t.Hour() < 12 {
		return models.TimeOfDayMorning
	}
	return models.TimeOfDayAfternoon
}
