package testutils

import (
	"fmt"
	"time"

	"staffing-backend/internal/database/models"

	"github.com/google/uuid"
)

// FullWeekAvailability returns a pattern with every day available
func FullWeekAvailability() models.WeeklyAvailability {
	var week models.WeeklyAvailability
	for i := range week {
		week[i] = models.DaySlot{Available: true}
	}
	return week
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a test Employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	// Unique employee number derived from the UUID to avoid conflicts
	number := "E" + id.String()[:6]

	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EmployeeNumber:     number,
		FirstName:          "Jane",
		LastName:           "Doe",
		Email:              fmt.Sprintf("%s@test.com", number),
		IsActive:           true,
		MaxEventsPerDay:    2,
		MaxEventsPerWeek:   5,
		PreferredTimeOfDay: models.TimeOfDayAny,
		WeeklyAvailability: FullWeekAvailability(),
	}
}

// WithNumber sets a custom employee number
func (f *EmployeeFactory) WithNumber(number string) *models.Employee {
	employee := f.Create()
	employee.EmployeeNumber = number
	employee.Email = number + "@test.com"
	return employee
}

// WithCapabilities sets the juicer and primary lead capabilities
func (f *EmployeeFactory) WithCapabilities(juicer, primaryLead bool) *models.Employee {
	employee := f.Create()
	employee.CanJuicer = juicer
	employee.CanPrimaryLead = primaryLead
	return employee
}

// Inactive creates a deactivated employee
func (f *EmployeeFactory) Inactive() *models.Employee {
	employee := f.Create()
	employee.IsActive = false
	return employee
}

// EventFactory provides methods to create test Event data
type EventFactory struct{}

// NewEventFactory creates a new EventFactory
func NewEventFactory() *EventFactory {
	return &EventFactory{}
}

// Create creates a test Core event with a one-week scheduling window
// starting today.
func (f *EventFactory) Create() *models.Event {
	id := uuid.New()
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	return &models.Event{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: now,
			UpdatedAt: now,
		},
		RefNum:           "REF-" + id.String()[:8],
		DisplayName:      "606001-CORE-Test Event",
		EventType:        models.EventTypeCore,
		StartWindow:      today,
		DueDate:          today.AddDate(0, 0, 7),
		EstimatedMinutes: 120,
		Status:           models.EventStatusUnstaffed,
	}
}

// WithDisplayName sets a custom display name
func (f *EventFactory) WithDisplayName(name string) *models.Event {
	event := f.Create()
	event.DisplayName = name
	return event
}

// WithType sets the event type and a matching display name tag
func (f *EventFactory) WithType(t models.EventType) *models.Event {
	event := f.Create()
	event.EventType = t
	event.DisplayName = fmt.Sprintf("606001-%s-Test Event", t)
	return event
}

// WithWindow sets a custom scheduling window
func (f *EventFactory) WithWindow(start, due time.Time) *models.Event {
	event := f.Create()
	event.StartWindow = start
	event.DueDate = due
	return event
}

// ScheduleFactory provides methods to create test Schedule data
type ScheduleFactory struct{}

// NewScheduleFactory creates a new ScheduleFactory
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{}
}

// Create creates a test Schedule linking an event and employee
func (f *ScheduleFactory) Create(eventID, employeeID uuid.UUID, start time.Time) *models.Schedule {
	return &models.Schedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:       eventID,
		EmployeeID:    employeeID,
		StartDatetime: start,
		Version:       1,
	}
}

// ProposalFactory provides methods to create test PendingProposal data
type ProposalFactory struct{}

// NewProposalFactory creates a new ProposalFactory
func NewProposalFactory() *ProposalFactory {
	return &ProposalFactory{}
}

// Create creates a test proposal in the initial proposed state
func (f *ProposalFactory) Create(eventID, employeeID uuid.UUID, start time.Time) *models.PendingProposal {
	return &models.PendingProposal{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		EventID:       eventID,
		EmployeeID:    employeeID,
		StartDatetime: start,
		Status:        models.ProposalStatusProposed,
		Version:       1,
	}
}

// WithStatus creates a proposal in a specific state
func (f *ProposalFactory) WithStatus(eventID, employeeID uuid.UUID, start time.Time, status models.ProposalStatus) *models.PendingProposal {
	proposal := f.Create(eventID, employeeID, start)
	proposal.Status = status
	return proposal
}
