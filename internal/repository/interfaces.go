package repository

import (
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// EmployeeRepositoryInterface defines the interface for employee repository operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetByEmployeeNumber(number string) (*models.Employee, error)
	GetAll(limit, offset int) ([]models.Employee, int64, error)
	GetActive() ([]models.Employee, error)
	Update(employee *models.Employee) error
}

// EventRepositoryInterface defines the interface for event repository operations
type EventRepositoryInterface interface {
	Create(event *models.Event) error
	GetByID(id uuid.UUID) (*models.Event, error)
	GetByRefNum(refNum string) (*models.Event, error)
	GetAll(limit, offset int) ([]models.Event, int64, error)
	GetUnstaffedInWindow(windowStart, windowEnd time.Time) ([]models.Event, error)
	FindByEventNumber(number string) ([]models.Event, error)
	Update(event *models.Event) error
}

// ScheduleRepositoryInterface defines the interface for schedule repository operations
type ScheduleRepositoryInterface interface {
	Create(schedule *models.Schedule) error
	GetByID(id uuid.UUID) (*models.Schedule, error)
	GetActiveByEventID(eventID uuid.UUID) (*models.Schedule, error)
	GetByEmployeeAndDate(employeeID uuid.UUID, date time.Time) ([]models.Schedule, error)
	GetByEmployeeBetween(employeeID uuid.UUID, from, to time.Time) ([]models.Schedule, error)
	CountActiveOnDate(employeeID uuid.UUID, date time.Time) (int64, error)
	CountActiveInRange(employeeID uuid.UUID, from, to time.Time) (int64, error)
	CountActiveBetweenForEmployees(from, to time.Time) (map[uuid.UUID]int64, error)
	Update(schedule *models.Schedule) error
	UpdateVersioned(schedule *models.Schedule) error
	Delete(id uuid.UUID) error
}

// PendingProposalRepositoryInterface defines the interface for proposal repository operations
type PendingProposalRepositoryInterface interface {
	Create(proposal *models.PendingProposal) error
	GetByID(id uuid.UUID) (*models.PendingProposal, error)
	GetByStatus(status models.ProposalStatus, limit, offset int) ([]models.PendingProposal, int64, error)
	GetOpenByEventID(eventID uuid.UUID) ([]models.PendingProposal, error)
	GetOpenBetween(start, end time.Time) ([]models.PendingProposal, error)
	GetByEngineRunID(runID uuid.UUID) ([]models.PendingProposal, error)
	UpdateVersioned(proposal *models.PendingProposal) error
}

// EngineRunRepositoryInterface defines the interface for engine run repository operations
type EngineRunRepositoryInterface interface {
	Create(run *models.EngineRun) error
	GetByID(id uuid.UUID) (*models.EngineRun, error)
	GetAll(limit, offset int) ([]models.EngineRun, int64, error)
	Update(run *models.EngineRun) error
}

// RotationAssignmentRepositoryInterface defines the interface for rotation lookups
type RotationAssignmentRepositoryInterface interface {
	GetByDateAndCategory(date time.Time, category models.RotationCategory) (*models.RotationAssignment, error)
	Create(assignment *models.RotationAssignment) error
}

// TimeOffRepositoryInterface defines the interface for time-off lookups
type TimeOffRepositoryInterface interface {
	Create(request *models.TimeOffRequest) error
	GetApprovedForDate(employeeID uuid.UUID, date time.Time) ([]models.TimeOffRequest, error)
	GetByEmployeeID(employeeID uuid.UUID, limit, offset int) ([]models.TimeOffRequest, int64, error)
}

// CompanyHolidayRepositoryInterface defines the interface for holiday lookups
type CompanyHolidayRepositoryInterface interface {
	IsHoliday(date time.Time) (bool, error)
	FirstOrCreate(holiday *models.CompanyHoliday) error
	GetAll() ([]models.CompanyHoliday, error)
}

// AvailabilityOverrideRepositoryInterface defines the interface for override lookups
type AvailabilityOverrideRepositoryInterface interface {
	Create(override *models.AvailabilityOverride) error
	GetForDate(employeeID uuid.UUID, date time.Time) (*models.AvailabilityOverride, error)
}
