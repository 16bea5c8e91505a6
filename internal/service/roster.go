package service

import (
	"errors"
	"fmt"
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RosterService provides employee roster business logic: the employees
// themselves plus the calendars that feed availability resolution (overrides,
// time off, rotation designations).
type RosterService struct {
	employeeRepo repository.EmployeeRepositoryInterface
	overrideRepo repository.AvailabilityOverrideRepositoryInterface
	timeOffRepo  repository.TimeOffRepositoryInterface
	rotationRepo repository.RotationAssignmentRepositoryInterface
	validator    *validator.Validate
}

// NewRosterService creates a new RosterService
func NewRosterService(
	employeeRepo repository.EmployeeRepositoryInterface,
	overrideRepo repository.AvailabilityOverrideRepositoryInterface,
	timeOffRepo repository.TimeOffRepositoryInterface,
	rotationRepo repository.RotationAssignmentRepositoryInterface,
	validator *validator.Validate,
) *RosterService {
	return &RosterService{
		employeeRepo: employeeRepo,
		overrideRepo: overrideRepo,
		timeOffRepo:  timeOffRepo,
		rotationRepo: rotationRepo,
		validator:    validator,
	}
}

// CreateEmployeeRequest represents the request to create an employee
type CreateEmployeeRequest struct {
	EmployeeNumber         string                    `json:"employee_number" validate:"required,max=20"`
	FirstName              string                    `json:"first_name" validate:"required,max=60"`
	LastName               string                    `json:"last_name" validate:"required,max=60"`
	Email                  string                    `json:"email" validate:"omitempty,email"`
	PhoneNumber            string                    `json:"phone_number" validate:"max=30"`
	CanJuicer              bool                      `json:"can_juicer"`
	CanPrimaryLead         bool                      `json:"can_primary_lead"`
	DisallowedEventTypes   models.EventTypeList      `json:"disallowed_event_types"`
	MaxEventsPerDay        int                       `json:"max_events_per_day" validate:"min=0"`
	MaxEventsPerWeek       int                       `json:"max_events_per_week" validate:"min=0"`
	PreferredEventsPerWeek int                       `json:"preferred_events_per_week" validate:"min=0"`
	PreferredTimeOfDay     models.TimeOfDay          `json:"preferred_time_of_day" validate:"omitempty,oneof=morning afternoon any"`
	WeeklyAvailability     models.WeeklyAvailability `json:"weekly_availability"`
}

// UpdateEmployeeRequest represents the request to update an employee
type UpdateEmployeeRequest struct {
	FirstName              *string                    `json:"first_name" validate:"omitempty,max=60"`
	LastName               *string                    `json:"last_name" validate:"omitempty,max=60"`
	Email                  *string                    `json:"email" validate:"omitempty,email"`
	PhoneNumber            *string                    `json:"phone_number" validate:"omitempty,max=30"`
	IsActive               *bool                      `json:"is_active"`
	CanJuicer              *bool                      `json:"can_juicer"`
	CanPrimaryLead         *bool                      `json:"can_primary_lead"`
	DisallowedEventTypes   *models.EventTypeList      `json:"disallowed_event_types"`
	MaxEventsPerDay        *int                       `json:"max_events_per_day" validate:"omitempty,min=0"`
	MaxEventsPerWeek       *int                       `json:"max_events_per_week" validate:"omitempty,min=0"`
	PreferredEventsPerWeek *int                       `json:"preferred_events_per_week" validate:"omitempty,min=0"`
	PreferredTimeOfDay     *models.TimeOfDay          `json:"preferred_time_of_day" validate:"omitempty,oneof=morning afternoon any"`
	WeeklyAvailability     *models.WeeklyAvailability `json:"weekly_availability"`
}

// EmployeeListResponse represents a paginated list of employees
type EmployeeListResponse struct {
	Employees []models.Employee `json:"employees"`
	Total     int64             `json:"total"`
	Page      int               `json:"page"`
	PageSize  int               `json:"page_size"`
}

// SetOverrideRequest pins availability for one exact date
type SetOverrideRequest struct {
	Date      time.Time `json:"date" validate:"required"`
	Available bool      `json:"available"`
	Reason    string    `json:"reason" validate:"max=200"`
}

// TimeOffCreateRequest represents a new time-off request
type TimeOffCreateRequest struct {
	StartDate time.Time            `json:"start_date" validate:"required"`
	EndDate   time.Time            `json:"end_date" validate:"required"`
	Status    models.TimeOffStatus `json:"status" validate:"omitempty,oneof=pending approved denied"`
	Reason    string               `json:"reason" validate:"max=200"`
}

// RotationRequest designates a rotating role for one date
type RotationRequest struct {
	Date       time.Time               `json:"date" validate:"required"`
	Category   models.RotationCategory `json:"category" validate:"required,oneof=juicer primary_lead"`
	EmployeeID uuid.UUID               `json:"employee_id" validate:"required"`
}

// Create creates a new employee
func (s *RosterService) Create(req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	employee := &models.Employee{
		EmployeeNumber:         req.EmployeeNumber,
		FirstName:              req.FirstName,
		LastName:               req.LastName,
		Email:                  req.Email,
		PhoneNumber:            req.PhoneNumber,
		IsActive:               true,
		CanJuicer:              req.CanJuicer,
		CanPrimaryLead:         req.CanPrimaryLead,
		DisallowedEventTypes:   req.DisallowedEventTypes,
		MaxEventsPerDay:        req.MaxEventsPerDay,
		MaxEventsPerWeek:       req.MaxEventsPerWeek,
		PreferredEventsPerWeek: req.PreferredEventsPerWeek,
		PreferredTimeOfDay:     req.PreferredTimeOfDay,
		WeeklyAvailability:     req.WeeklyAvailability,
	}
	if employee.PreferredTimeOfDay == "" {
		employee.PreferredTimeOfDay = models.TimeOfDayAny
	}

	if err := s.employeeRepo.Create(employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// GetByID retrieves an employee by ID
func (s *RosterService) GetByID(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// GetAll retrieves employees with pagination
func (s *RosterService) GetAll(page, pageSize int) (*EmployeeListResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}

	offset := (page - 1) * pageSize
	employees, total, err := s.employeeRepo.GetAll(pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to get employees: %w", err)
	}

	return &EmployeeListResponse{
		Employees: employees,
		Total:     total,
		Page:      page,
		PageSize:  pageSize,
	}, nil
}

// Update applies a partial update to an employee
func (s *RosterService) Update(id uuid.UUID, req *UpdateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	employee, err := s.GetByID(id)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		employee.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		employee.LastName = *req.LastName
	}
	if req.Email != nil {
		employee.Email = *req.Email
	}
	if req.PhoneNumber != nil {
		employee.PhoneNumber = *req.PhoneNumber
	}
	if req.IsActive != nil {
		employee.IsActive = *req.IsActive
	}
	if req.CanJuicer != nil {
		employee.CanJuicer = *req.CanJuicer
	}
	if req.CanPrimaryLead != nil {
		employee.CanPrimaryLead = *req.CanPrimaryLead
	}
	if req.DisallowedEventTypes != nil {
		employee.DisallowedEventTypes = *req.DisallowedEventTypes
	}
	if req.MaxEventsPerDay != nil {
		employee.MaxEventsPerDay = *req.MaxEventsPerDay
	}
	if req.MaxEventsPerWeek != nil {
		employee.MaxEventsPerWeek = *req.MaxEventsPerWeek
	}
	if req.PreferredEventsPerWeek != nil {
		employee.PreferredEventsPerWeek = *req.PreferredEventsPerWeek
	}
	if req.PreferredTimeOfDay != nil {
		employee.PreferredTimeOfDay = *req.PreferredTimeOfDay
	}
	if req.WeeklyAvailability != nil {
		employee.WeeklyAvailability = *req.WeeklyAvailability
	}

	if err := s.employeeRepo.Update(employee); err != nil {
		return nil, fmt.Errorf("failed to update employee: %w", err)
	}
	return employee, nil
}

// Deactivate marks an employee inactive. Employees with history are never
// deleted.
func (s *RosterService) Deactivate(id uuid.UUID) (*models.Employee, error) {
	inactive := false
	return s.Update(id, &UpdateEmployeeRequest{IsActive: &inactive})
}

// SetOverride pins an employee's availability for one exact date
func (s *RosterService) SetOverride(employeeID uuid.UUID, req *SetOverrideRequest) (*models.AvailabilityOverride, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if _, err := s.GetByID(employeeID); err != nil {
		return nil, err
	}

	override := &models.AvailabilityOverride{
		EmployeeID: employeeID,
		Date:       req.Date,
		Available:  req.Available,
		Reason:     req.Reason,
	}
	if err := s.overrideRepo.Create(override); err != nil {
		return nil, fmt.Errorf("failed to create availability override: %w", err)
	}
	return override, nil
}

// CreateTimeOff records a time-off request for an employee
func (s *RosterService) CreateTimeOff(employeeID uuid.UUID, req *TimeOffCreateRequest) (*models.TimeOffRequest, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if req.EndDate.Before(req.StartDate) {
		return nil, apperrors.NewValidationError("end_date", "end date is before start date")
	}
	if _, err := s.GetByID(employeeID); err != nil {
		return nil, err
	}

	request := &models.TimeOffRequest{
		EmployeeID: employeeID,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Status:     req.Status,
		Reason:     req.Reason,
	}
	if request.Status == "" {
		request.Status = models.TimeOffStatusPending
	}
	if err := s.timeOffRepo.Create(request); err != nil {
		return nil, fmt.Errorf("failed to create time-off request: %w", err)
	}
	return request, nil
}

// ListTimeOff retrieves an employee's time-off requests with pagination
func (s *RosterService) ListTimeOff(employeeID uuid.UUID, page, pageSize int) ([]models.TimeOffRequest, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 200 {
		pageSize = 50
	}
	return s.timeOffRepo.GetByEmployeeID(employeeID, pageSize, (page-1)*pageSize)
}

// AssignRotation designates which employee fills a rotating role on a date
func (s *RosterService) AssignRotation(req *RotationRequest) (*models.RotationAssignment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	employee, err := s.GetByID(req.EmployeeID)
	if err != nil {
		return nil, err
	}
	switch req.Category {
	case models.RotationCategoryJuicer:
		if !employee.CanJuicer {
			return nil, apperrors.NewValidationError("employee_id", fmt.Sprintf("%s lacks the juicer capability", employee.FullName()))
		}
	case models.RotationCategoryPrimaryLead:
		if !employee.CanPrimaryLead {
			return nil, apperrors.NewValidationError("employee_id", fmt.Sprintf("%s lacks the primary lead capability", employee.FullName()))
		}
	}

	assignment := &models.RotationAssignment{
		Date:       req.Date,
		Category:   req.Category,
		EmployeeID: req.EmployeeID,
	}
	if err := s.rotationRepo.Create(assignment); err != nil {
		return nil, fmt.Errorf("failed to create rotation assignment: %w", err)
	}
	return assignment, nil
}
