package service

import (
	"errors"
	"fmt"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AvailabilityService resolves whether an employee can work a given date.
// Pure reads; no side effects.
type AvailabilityService struct {
	employeeRepo repository.EmployeeRepositoryInterface
	overrideRepo repository.AvailabilityOverrideRepositoryInterface
	timeOffRepo  repository.TimeOffRepositoryInterface
	holidayRepo  repository.CompanyHolidayRepositoryInterface
	cfg          *config.Config
}

// NewAvailabilityService creates a new availability service
func NewAvailabilityService(
	employeeRepo repository.EmployeeRepositoryInterface,
	overrideRepo repository.AvailabilityOverrideRepositoryInterface,
	timeOffRepo repository.TimeOffRepositoryInterface,
	holidayRepo repository.CompanyHolidayRepositoryInterface,
	cfg *config.Config,
) *AvailabilityService {
	return &AvailabilityService{
		employeeRepo: employeeRepo,
		overrideRepo: overrideRepo,
		timeOffRepo:  timeOffRepo,
		holidayRepo:  holidayRepo,
		cfg:          cfg,
	}
}

// IsAvailable resolves availability for an employee on a date.
// Resolution order: weekly pattern, exact-date override (wins over the
// pattern), approved time off (blocks regardless), company holiday per the
// configured policy.
func (s *AvailabilityService) IsAvailable(employeeID uuid.UUID, date time.Time) (bool, string, error) {
	employee, err := s.employeeRepo.GetByID(employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, "", apperrors.ErrEmployeeNotFound
		}
		return false, "", fmt.Errorf("failed to get employee: %w", err)
	}
	return s.Resolve(employee, date)
}

// Resolve is the loaded-employee variant used by engine loops to avoid
// refetching the roster per candidate.
func (s *AvailabilityService) Resolve(employee *models.Employee, date time.Time) (bool, string, error) {
	if !employee.IsActive {
		return false, "employee is inactive", nil
	}

	slot := employee.WeeklyAvailability.ForDate(date)
	available := slot.Available
	reason := fmt.Sprintf("weekly pattern for %s", date.Weekday())
	if available && hasClockTime(date) && !slot.Covers(date) {
		available = false
		reason = fmt.Sprintf("outside the %s availability window", date.Weekday())
	}

	override, err := s.overrideRepo.GetForDate(employee.ID, date)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, "", fmt.Errorf("failed to look up availability override: %w", err)
	}
	if override != nil {
		available = override.Available
		reason = "date override"
		if override.Reason != "" {
			reason = "date override: " + override.Reason
		}
	}

	timeOff, err := s.timeOffRepo.GetApprovedForDate(employee.ID, date)
	if err != nil {
		return false, "", fmt.Errorf("failed to look up time off: %w", err)
	}
	if len(timeOff) > 0 {
		return false, "approved time off", nil
	}

	if s.cfg.HolidayPolicy == config.HolidayPolicyClosed {
		holiday, err := s.holidayRepo.IsHoliday(date)
		if err != nil {
			return false, "", fmt.Errorf("failed to look up company holiday: %w", err)
		}
		if holiday {
			return false, "company holiday", nil
		}
	}

	if !available {
		return false, reason, nil
	}
	return true, reason, nil
}

// hasClockTime distinguishes datetime queries from date-only queries, which
// arrive normalized to midnight and are answered at day granularity.
func hasClockTime(t time.Time) bool {
	return t.Hour() != 0 || t.Minute() != 0
}
