package service

import (
	"testing"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	"staffing-backend/internal/mocks"
	"staffing-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

const hour = time.Hour

func mustTime(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse(time.RFC3339, value)
	require.NoError(t, err)
	return parsed
}

func testConfig() *config.Config {
	return &config.Config{
		HolidayPolicy:         config.HolidayPolicyClosed,
		SupervisorOffsetHours: 2,
		MinRestHours:          12,
		EngineWindowDays:      21,
		DefaultEventStartHour: 10,
	}
}

// constraintFixture wires a ConstraintService over mocked repositories with
// permissive defaults: full availability, no overrides, no time off, no
// holidays, no existing schedules.
type constraintFixture struct {
	service      *ConstraintService
	overrideRepo *mocks.MockAvailabilityOverrideRepositoryInterface
	timeOffRepo  *mocks.MockTimeOffRepositoryInterface
	holidayRepo  *mocks.MockCompanyHolidayRepositoryInterface
	scheduleRepo *mocks.MockScheduleRepositoryInterface
}

func newConstraintFixture(t *testing.T, cfg *config.Config) *constraintFixture {
	ctrl := gomock.NewController(t)

	employeeRepo := mocks.NewMockEmployeeRepositoryInterface(ctrl)
	overrideRepo := mocks.NewMockAvailabilityOverrideRepositoryInterface(ctrl)
	timeOffRepo := mocks.NewMockTimeOffRepositoryInterface(ctrl)
	holidayRepo := mocks.NewMockCompanyHolidayRepositoryInterface(ctrl)
	scheduleRepo := mocks.NewMockScheduleRepositoryInterface(ctrl)

	availability := NewAvailabilityService(employeeRepo, overrideRepo, timeOffRepo, holidayRepo, cfg)

	return &constraintFixture{
		service:      NewConstraintService(availability, scheduleRepo, cfg),
		overrideRepo: overrideRepo,
		timeOffRepo:  timeOffRepo,
		holidayRepo:  holidayRepo,
		scheduleRepo: scheduleRepo,
	}
}

func (f *constraintFixture) allowDefaults() {
	f.overrideRepo.EXPECT().GetForDate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
	f.timeOffRepo.EXPECT().GetApprovedForDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.holidayRepo.EXPECT().IsHoliday(gomock.Any()).Return(false, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func availableEmployee() *models.Employee {
	return testutils.NewEmployeeFactory().Create()
}

func coreEventAround(candidate time.Time) *models.Event {
	event := testutils.NewEventFactory().Create()
	event.StartWindow = candidate.AddDate(0, 0, -3)
	event.DueDate = candidate.AddDate(0, 0, 3)
	return event
}

func violationKinds(violations []Violation) []ViolationKind {
	kinds := make([]ViolationKind, 0, len(violations))
	for _, v := range violations {
		kinds = append(kinds, v.Kind)
	}
	return kinds
}

func TestValidatePassesCleanCandidate(t *testing.T) {
	f := newConstraintFixture(t, testConfig())
	f.allowDefaults()

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	result, err := f.service.Validate(availableEmployee(), coreEventAround(candidate), candidate)
	require.NoError(t, err)

	assert.True(t, result.OK)
	assert.Empty(t, result.Violations)
	assert.Empty(t, result.Warnings)
}

func TestValidateMissingCapability(t *testing.T) {
	f := newConstraintFixture(t, testConfig())
	f.allowDefaults()

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	event := coreEventAround(candidate)
	event.EventType = models.EventTypeSupervisor

	employee := availableEmployee()
	employee.CanPrimaryLead = false

	result, err := f.service.Validate(employee, event, candidate)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Contains(t, violationKinds(result.Violations), ViolationMissingCapability)
}

func TestValidateEventTypeRestricted(t *testing.T) {
	f := newConstraintFixture(t, testConfig())
	f.allowDefaults()

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	event := coreEventAround(candidate)

	employee := availableEmployee()
	employee.DisallowedEventTypes = models.EventTypeList{models.EventTypeCore}

	result, err := f.service.Validate(employee, event, candidate)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Contains(t, violationKinds(result.Violations), ViolationEventTypeRestricted)
}

func TestValidateOutsideWindow(t *testing.T) {
	f := newConstraintFixture(t, testConfig())
	f.allowDefaults()

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	event := coreEventAround(candidate)
	event.StartWindow = candidate.AddDate(0, 0, 1)
	event.DueDate = candidate.AddDate(0, 0, 5)

	result, err := f.service.Validate(availableEmployee(), event, candidate)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Contains(t, violationKinds(result.Violations), ViolationOutsideWindow)
}

func TestValidateUnavailableByPattern(t *testing.T) {
	f := newConstraintFixture(t, testConfig())
	f.allowDefaults()

	candidate := mustTime(t, "2026-08-12T10:00:00Z") // Wednesday
	employee := availableEmployee()
	employee.WeeklyAvailability[int(time.Wednesday)] = models.DaySlot{Available: false}

	result, err := f.service.Validate(employee, coreEventAround(candidate), candidate)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Contains(t, violationKinds(result.Violations), ViolationUnavailable)
}

func TestValidateTimeOverlap(t *testing.T) {
	f := newConstraintFixture(t, testConfig())

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	employee := availableEmployee()
	event := coreEventAround(candidate)

	otherEvent := testutils.NewEventFactory().Create()
	existing := testutils.NewScheduleFactory().Create(otherEvent.ID, employee.ID, candidate.Add(hour))
	existing.Event = *otherEvent

	f.overrideRepo.EXPECT().GetForDate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
	f.timeOffRepo.EXPECT().GetApprovedForDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.holidayRepo.EXPECT().IsHoliday(gomock.Any()).Return(false, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(employee.ID, candidate).Return([]models.Schedule{*existing}, nil)
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Schedule{*existing}, nil).AnyTimes()

	result, err := f.service.Validate(employee, event, candidate)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Contains(t, violationKinds(result.Violations), ViolationTimeOverlap)
}

func TestValidateExcludingIgnoresOwnSchedule(t *testing.T) {
	f := newConstraintFixture(t, testConfig())

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	employee := availableEmployee()
	event := coreEventAround(candidate)

	own := testutils.NewScheduleFactory().Create(event.ID, employee.ID, candidate)
	own.Event = *event

	f.overrideRepo.EXPECT().GetForDate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
	f.timeOffRepo.EXPECT().GetApprovedForDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.holidayRepo.EXPECT().IsHoliday(gomock.Any()).Return(false, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(employee.ID, candidate).Return([]models.Schedule{*own}, nil)
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Schedule{*own}, nil).AnyTimes()

	result, err := f.service.ValidateExcluding(employee, event, candidate, &own.ID)
	require.NoError(t, err)

	assert.True(t, result.OK)
}

func TestValidateDailyLimit(t *testing.T) {
	f := newConstraintFixture(t, testConfig())

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	employee := availableEmployee()
	employee.MaxEventsPerDay = 1
	event := coreEventAround(candidate)

	otherEvent := testutils.NewEventFactory().Create()
	// Far enough away not to overlap; it still counts against the daily cap.
	existing := testutils.NewScheduleFactory().Create(otherEvent.ID, employee.ID, candidate.Add(5*hour))
	existing.Event = *otherEvent

	f.overrideRepo.EXPECT().GetForDate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
	f.timeOffRepo.EXPECT().GetApprovedForDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.holidayRepo.EXPECT().IsHoliday(gomock.Any()).Return(false, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(employee.ID, candidate).Return([]models.Schedule{*existing}, nil)
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Schedule{*existing}, nil).AnyTimes()

	result, err := f.service.Validate(employee, event, candidate)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Contains(t, violationKinds(result.Violations), ViolationDailyLimit)
}

func TestValidateWeeklyLimit(t *testing.T) {
	f := newConstraintFixture(t, testConfig())

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	employee := availableEmployee()
	employee.MaxEventsPerWeek = 2
	event := coreEventAround(candidate)

	week := make([]models.Schedule, 0, 2)
	for day := 0; day < 2; day++ {
		other := testutils.NewEventFactory().Create()
		sched := testutils.NewScheduleFactory().Create(other.ID, employee.ID, candidate.AddDate(0, 0, -day-1))
		sched.Event = *other
		week = append(week, *sched)
	}

	f.overrideRepo.EXPECT().GetForDate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
	f.timeOffRepo.EXPECT().GetApprovedForDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.holidayRepo.EXPECT().IsHoliday(gomock.Any()).Return(false, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return(week, nil).AnyTimes()

	result, err := f.service.Validate(employee, event, candidate)
	require.NoError(t, err)

	assert.False(t, result.OK)
	assert.Contains(t, violationKinds(result.Violations), ViolationWeeklyLimit)
}

func TestValidateSoftConstraintsWarnOnly(t *testing.T) {
	f := newConstraintFixture(t, testConfig())

	candidate := mustTime(t, "2026-08-12T14:00:00Z")
	employee := availableEmployee()
	employee.PreferredEventsPerWeek = 1
	employee.PreferredTimeOfDay = models.TimeOfDayMorning
	event := coreEventAround(candidate)

	other := testutils.NewEventFactory().Create()
	existing := testutils.NewScheduleFactory().Create(other.ID, employee.ID, candidate.AddDate(0, 0, -1))
	existing.Event = *other

	// An assignment ending eleven hours before the candidate trips the
	// twelve-hour rest warning.
	priorEvening := testutils.NewEventFactory().Create()
	late := testutils.NewScheduleFactory().Create(priorEvening.ID, employee.ID, candidate.Add(-13*hour))
	late.Event = *priorEvening

	f.overrideRepo.EXPECT().GetForDate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
	f.timeOffRepo.EXPECT().GetApprovedForDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
	f.holidayRepo.EXPECT().IsHoliday(gomock.Any()).Return(false, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(employee.ID, candidate).Return(nil, nil)
	f.scheduleRepo.EXPECT().GetByEmployeeAndDate(gomock.Any(), gomock.Any()).Return([]models.Schedule{*late}, nil).AnyTimes()
	f.scheduleRepo.EXPECT().GetByEmployeeBetween(gomock.Any(), gomock.Any(), gomock.Any()).Return([]models.Schedule{*existing}, nil).AnyTimes()

	result, err := f.service.Validate(employee, event, candidate)
	require.NoError(t, err)

	assert.True(t, result.OK, "soft constraints must never block")
	kinds := violationKinds(result.Warnings)
	assert.Contains(t, kinds, ViolationPreferredWorkload)
	assert.Contains(t, kinds, ViolationInsufficientRest)
	assert.Contains(t, kinds, ViolationTimeOfDay)
}

func TestValidateUnavailableCollectsOtherViolations(t *testing.T) {
	f := newConstraintFixture(t, testConfig())
	f.allowDefaults()

	candidate := mustTime(t, "2026-08-12T10:00:00Z")
	event := coreEventAround(candidate)
	event.EventType = models.EventTypeJuicer

	employee := availableEmployee()
	employee.CanJuicer = false
	employee.WeeklyAvailability[int(time.Wednesday)] = models.DaySlot{Available: false}

	result, err := f.service.Validate(employee, event, candidate)
	require.NoError(t, err)

	// All hard violations are reported together, not just the first.
	assert.False(t, result.OK)
	kinds := violationKinds(result.Violations)
	assert.Contains(t, kinds, ViolationUnavailable)
	assert.Contains(t, kinds, ViolationMissingCapability)
}

func TestValidateReasonsFlattening(t *testing.T) {
	result := &ValidationResult{
		Violations: []Violation{
			{Kind: ViolationUnavailable, Message: "Jane Doe is unavailable on 2026-08-12"},
			{Kind: ViolationDailyLimit, Message: "daily maximum of 2 events would be exceeded"},
		},
	}
	reasons := result.Reasons()
	assert.Len(t, reasons, 2)
	assert.Equal(t, "Jane Doe is unavailable on 2026-08-12", reasons[0])
}
