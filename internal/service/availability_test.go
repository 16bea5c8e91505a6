package service

import (
	"testing"
	"time"

	"staffing-backend/internal/config"
	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/mocks"
	"staffing-backend/internal/testutils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type availabilityFixture struct {
	service      *AvailabilityService
	employeeRepo *mocks.MockEmployeeRepositoryInterface
	overrideRepo *mocks.MockAvailabilityOverrideRepositoryInterface
	timeOffRepo  *mocks.MockTimeOffRepositoryInterface
	holidayRepo  *mocks.MockCompanyHolidayRepositoryInterface
}

func newAvailabilityFixture(t *testing.T, cfg *config.Config) *availabilityFixture {
	ctrl := gomock.NewController(t)

	f := &availabilityFixture{
		employeeRepo: mocks.NewMockEmployeeRepositoryInterface(ctrl),
		overrideRepo: mocks.NewMockAvailabilityOverrideRepositoryInterface(ctrl),
		timeOffRepo:  mocks.NewMockTimeOffRepositoryInterface(ctrl),
		holidayRepo:  mocks.NewMockCompanyHolidayRepositoryInterface(ctrl),
	}
	f.service = NewAvailabilityService(f.employeeRepo, f.overrideRepo, f.timeOffRepo, f.holidayRepo, cfg)
	return f
}

func (f *availabilityFixture) noOverrides() {
	f.overrideRepo.EXPECT().GetForDate(gomock.Any(), gomock.Any()).Return(nil, gorm.ErrRecordNotFound).AnyTimes()
}

func (f *availabilityFixture) noTimeOff() {
	f.timeOffRepo.EXPECT().GetApprovedForDate(gomock.Any(), gomock.Any()).Return(nil, nil).AnyTimes()
}

func (f *availabilityFixture) noHolidays() {
	f.holidayRepo.EXPECT().IsHoliday(gomock.Any()).Return(false, nil).AnyTimes()
}

func TestResolveInactiveEmployee(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())

	employee := testutils.NewEmployeeFactory().Inactive()
	available, reason, err := f.service.Resolve(employee, mustTime(t, "2026-08-12T00:00:00Z"))
	require.NoError(t, err)

	assert.False(t, available)
	assert.Equal(t, "employee is inactive", reason)
}

func TestResolveWeeklyPattern(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())
	f.noOverrides()
	f.noTimeOff()
	f.noHolidays()

	employee := availableEmployee()
	employee.WeeklyAvailability[int(time.Wednesday)] = models.DaySlot{Available: false}

	wednesday := mustTime(t, "2026-08-12T00:00:00Z")
	available, reason, err := f.service.Resolve(employee, wednesday)
	require.NoError(t, err)
	assert.False(t, available)
	assert.Contains(t, reason, "weekly pattern")

	thursday := mustTime(t, "2026-08-13T00:00:00Z")
	available, _, err = f.service.Resolve(employee, thursday)
	require.NoError(t, err)
	assert.True(t, available)
}

func TestResolveDailyWindowSlot(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())
	f.noOverrides()
	f.noTimeOff()
	f.noHolidays()

	employee := availableEmployee()
	// 2026-08-12 is a Wednesday.
	employee.WeeklyAvailability[int(time.Wednesday)] = models.DaySlot{
		Available: true,
		Start:     "09:00",
		End:       "17:00",
	}

	inside, _, err := f.service.Resolve(employee, mustTime(t, "2026-08-12T10:00:00Z"))
	require.NoError(t, err)
	assert.True(t, inside)

	outside, reason, err := f.service.Resolve(employee, mustTime(t, "2026-08-12T18:00:00Z"))
	require.NoError(t, err)
	assert.False(t, outside)
	assert.Contains(t, reason, "availability window")

	// Date-only lookups are answered at day granularity.
	wholeDay, _, err := f.service.Resolve(employee, mustTime(t, "2026-08-12T00:00:00Z"))
	require.NoError(t, err)
	assert.True(t, wholeDay)
}

func TestResolveOverrideWinsOverPattern(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())
	f.noTimeOff()
	f.noHolidays()

	employee := availableEmployee()
	employee.WeeklyAvailability[int(time.Wednesday)] = models.DaySlot{Available: false}
	wednesday := mustTime(t, "2026-08-12T00:00:00Z")

	f.overrideRepo.EXPECT().GetForDate(employee.ID, wednesday).Return(&models.AvailabilityOverride{
		EmployeeID: employee.ID,
		Date:       wednesday,
		Available:  true,
		Reason:     "covering a colleague",
	}, nil)

	available, reason, err := f.service.Resolve(employee, wednesday)
	require.NoError(t, err)
	assert.True(t, available)
	assert.Equal(t, "date override: covering a colleague", reason)
}

func TestResolveOverrideBlocksAvailableDay(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())
	f.noTimeOff()
	f.noHolidays()

	employee := availableEmployee()
	thursday := mustTime(t, "2026-08-13T00:00:00Z")

	f.overrideRepo.EXPECT().GetForDate(employee.ID, thursday).Return(&models.AvailabilityOverride{
		EmployeeID: employee.ID,
		Date:       thursday,
		Available:  false,
	}, nil)

	available, reason, err := f.service.Resolve(employee, thursday)
	require.NoError(t, err)
	assert.False(t, available)
	assert.Equal(t, "date override", reason)
}

func TestResolveApprovedTimeOffBlocksOverride(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())
	f.noHolidays()

	employee := availableEmployee()
	day := mustTime(t, "2026-08-13T00:00:00Z")

	// Even an explicit available-override loses to approved time off.
	f.overrideRepo.EXPECT().GetForDate(employee.ID, day).Return(&models.AvailabilityOverride{
		EmployeeID: employee.ID,
		Date:       day,
		Available:  true,
	}, nil)
	f.timeOffRepo.EXPECT().GetApprovedForDate(employee.ID, day).Return([]models.TimeOffRequest{
		{EmployeeID: employee.ID, StartDate: day, EndDate: day, Status: models.TimeOffStatusApproved},
	}, nil)

	available, reason, err := f.service.Resolve(employee, day)
	require.NoError(t, err)
	assert.False(t, available)
	assert.Equal(t, "approved time off", reason)
}

func TestResolveHolidayPolicy(t *testing.T) {
	day := mustTime(t, "2026-12-25T00:00:00Z")

	t.Run("closed policy blocks holidays", func(t *testing.T) {
		f := newAvailabilityFixture(t, testConfig())
		f.noOverrides()
		f.noTimeOff()
		f.holidayRepo.EXPECT().IsHoliday(day).Return(true, nil)

		available, reason, err := f.service.Resolve(availableEmployee(), day)
		require.NoError(t, err)
		assert.False(t, available)
		assert.Equal(t, "company holiday", reason)
	})

	t.Run("open policy ignores holidays", func(t *testing.T) {
		cfg := testConfig()
		cfg.HolidayPolicy = config.HolidayPolicyOpen

		f := newAvailabilityFixture(t, cfg)
		f.noOverrides()
		f.noTimeOff()
		// No IsHoliday expectation: the lookup must be skipped entirely.

		available, _, err := f.service.Resolve(availableEmployee(), day)
		require.NoError(t, err)
		assert.True(t, available)
	})
}

func TestIsAvailableUnknownEmployee(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())

	employee := availableEmployee()
	f.employeeRepo.EXPECT().GetByID(employee.ID).Return(nil, gorm.ErrRecordNotFound)

	_, _, err := f.service.IsAvailable(employee.ID, mustTime(t, "2026-08-12T00:00:00Z"))
	assert.ErrorIs(t, err, apperrors.ErrEmployeeNotFound)
}

func TestIsAvailableLoadsEmployee(t *testing.T) {
	f := newAvailabilityFixture(t, testConfig())
	f.noOverrides()
	f.noTimeOff()
	f.noHolidays()

	employee := availableEmployee()
	f.employeeRepo.EXPECT().GetByID(employee.ID).Return(employee, nil)

	available, _, err := f.service.IsAvailable(employee.ID, mustTime(t, "2026-08-12T00:00:00Z"))
	require.NoError(t, err)
	assert.True(t, available)
}
