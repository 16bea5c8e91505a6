package service

import (
	"testing"
	"time"

	"staffing-backend/internal/database/models"
	"staffing-backend/internal/mocks"
	"staffing-backend/internal/repository"
	"staffing-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EngineServiceTestSuite struct {
	*testutils.BaseTestSuite
	service *EngineService
}

func TestEngineServiceTestSuite(t *testing.T) {
	suite.Run(t, &EngineServiceTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}

func (s *EngineServiceTestSuite) SetupTest() {
	s.CleanTestDB()

	ctrl := gomock.NewController(s.T())
	syncMock := mocks.NewMockExternalSchedulerInterface(ctrl)

	availability := NewAvailabilityService(
		repository.NewEmployeeRepository(s.DB),
		repository.NewAvailabilityOverrideRepository(s.DB),
		repository.NewTimeOffRepository(s.DB),
		repository.NewCompanyHolidayRepository(s.DB),
		s.Config,
	)
	constraint := NewConstraintService(availability, repository.NewScheduleRepository(s.DB), s.Config)
	pairing := NewPairingService(s.DB, syncMock, availability, constraint, s.Config)

	s.service = NewEngineService(
		s.DB,
		repository.NewEventRepository(s.DB),
		repository.NewEmployeeRepository(s.DB),
		repository.NewScheduleRepository(s.DB),
		repository.NewPendingProposalRepository(s.DB),
		repository.NewEngineRunRepository(s.DB),
		repository.NewRotationAssignmentRepository(s.DB),
		constraint,
		pairing,
		s.Config,
	)
}

func (s *EngineServiceTestSuite) create(value interface{}) {
	s.Require().NoError(s.DB.Create(value).Error)
}

// busy gives an employee one committed assignment inside the planning window.
func (s *EngineServiceTestSuite) busy(employee *models.Employee) {
	event := testutils.NewEventFactory().WithDisplayName("Busy Filler Demo")
	event.Status = models.EventStatusScheduled
	event.IsScheduled = true
	s.create(event)

	start := event.StartWindow.AddDate(0, 0, 1).Add(10 * time.Hour)
	s.create(testutils.NewScheduleFactory().Create(event.ID, employee.ID, start))
}

func (s *EngineServiceTestSuite) proposalsFor(eventID interface{}) []models.PendingProposal {
	var proposals []models.PendingProposal
	s.Require().NoError(s.DB.Where("event_id = ?", eventID).Find(&proposals).Error)
	return proposals
}

func (s *EngineServiceTestSuite) TestRunPrefersLeastLoadedEmployee() {
	idle := testutils.NewEmployeeFactory().WithNumber("E001")
	loaded := testutils.NewEmployeeFactory().WithNumber("E002")
	s.create(idle)
	s.create(loaded)
	s.busy(loaded)

	event := testutils.NewEventFactory().WithDisplayName("Standalone Core Demo")
	s.create(event)

	run, err := s.service.RunOnce(time.Time{}, time.Time{})
	s.Require().NoError(err)

	s.Equal(1, run.Processed)
	s.Equal(1, run.Scheduled)
	s.Equal(0, run.Failed)

	proposals := s.proposalsFor(event.ID)
	s.Require().Len(proposals, 1)
	s.Equal(idle.ID, proposals[0].EmployeeID)
	s.Equal(models.ProposalStatusProposed, proposals[0].Status)
	s.Require().NotNil(proposals[0].EngineRunID)
	s.Equal(run.ID, *proposals[0].EngineRunID)
	s.Equal(s.Config.DefaultEventStartHour, proposals[0].StartDatetime.Hour())
}

func (s *EngineServiceTestSuite) TestRunTieBreaksByEmployeeNumber() {
	second := testutils.NewEmployeeFactory().WithNumber("E202")
	first := testutils.NewEmployeeFactory().WithNumber("E101")
	s.create(second)
	s.create(first)

	event := testutils.NewEventFactory().WithDisplayName("Standalone Core Demo")
	s.create(event)

	_, err := s.service.RunOnce(time.Time{}, time.Time{})
	s.Require().NoError(err)

	proposals := s.proposalsFor(event.ID)
	s.Require().Len(proposals, 1)
	s.Equal(first.ID, proposals[0].EmployeeID)
}

func (s *EngineServiceTestSuite) TestRunPrefersRotationDesignate() {
	regular := testutils.NewEmployeeFactory().WithNumber("E001")
	regular.CanJuicer = true
	designate := testutils.NewEmployeeFactory().WithNumber("E002")
	designate.CanJuicer = true
	s.create(regular)
	s.create(designate)

	event := testutils.NewEventFactory().WithDisplayName("Juice Bar Demo")
	event.EventType = models.EventTypeJuicer
	s.create(event)

	s.create(&models.RotationAssignment{
		Date:       event.StartWindow,
		Category:   models.RotationCategoryJuicer,
		EmployeeID: designate.ID,
	})

	// Pin the window to the event's own so the first candidate date is the
	// rotation date.
	_, err := s.service.RunOnce(event.StartWindow, event.StartWindow.AddDate(0, 0, 14))
	s.Require().NoError(err)

	proposals := s.proposalsFor(event.ID)
	s.Require().Len(proposals, 1)
	s.Equal(designate.ID, proposals[0].EmployeeID)
}

func (s *EngineServiceTestSuite) TestRunRecordsUnplaceableEvents() {
	unavailable := testutils.NewEmployeeFactory().Create()
	unavailable.WeeklyAvailability = models.WeeklyAvailability{}
	s.create(unavailable)

	event := testutils.NewEventFactory().WithDisplayName("Impossible Demo")
	s.create(event)

	run, err := s.service.RunOnce(time.Time{}, time.Time{})
	s.Require().NoError(err)

	s.Equal(1, run.Processed)
	s.Equal(0, run.Scheduled)
	s.Equal(1, run.Failed)
	s.Require().Len(run.Failures, 1)
	s.Equal(event.ID.String(), run.Failures[0].EventID)
	s.Require().NotEmpty(run.Failures[0].Reasons)
	s.Contains(run.Failures[0].Reasons[0], "unavailable")

	s.Empty(s.proposalsFor(event.ID))

	// The run record survives with its failure detail.
	var persisted models.EngineRun
	s.Require().NoError(s.DB.First(&persisted, "id = ?", run.ID).Error)
	s.Equal(1, persisted.Failed)
	s.Require().Len(persisted.Failures, 1)
	s.False(persisted.FinishedAt.IsZero())
}

func (s *EngineServiceTestSuite) TestRunIsIdempotentWhileProposalsAreOpen() {
	s.create(testutils.NewEmployeeFactory().Create())
	event := testutils.NewEventFactory().WithDisplayName("Standalone Core Demo")
	s.create(event)

	first, err := s.service.RunOnce(time.Time{}, time.Time{})
	s.Require().NoError(err)
	s.Equal(1, first.Scheduled)

	second, err := s.service.RunOnce(time.Time{}, time.Time{})
	s.Require().NoError(err)
	s.Equal(1, second.Processed)
	s.Equal(0, second.Scheduled)
	s.Equal(0, second.Failed)

	s.Len(s.proposalsFor(event.ID), 1)
}

func (s *EngineServiceTestSuite) TestRunProposesSupervisorCompanion() {
	worker := testutils.NewEmployeeFactory().WithNumber("E001")
	lead := testutils.NewEmployeeFactory().WithNumber("E002")
	lead.CanPrimaryLead = true
	s.create(worker)
	s.create(lead)

	core := testutils.NewEventFactory().WithDisplayName("606010-CORE-Paired Demo")
	// An earlier due date puts the core event first in the pass.
	core.DueDate = core.StartWindow.AddDate(0, 0, 5)
	s.create(core)

	companion := testutils.NewEventFactory().WithDisplayName("606010-Supervisor-Paired Demo")
	companion.EventType = models.EventTypeSupervisor
	s.create(companion)

	run, err := s.service.RunOnce(time.Time{}, time.Time{})
	s.Require().NoError(err)

	coreProposals := s.proposalsFor(core.ID)
	s.Require().Len(coreProposals, 1)
	companionProposals := s.proposalsFor(companion.ID)
	s.Require().Len(companionProposals, 1)

	offset := time.Duration(s.Config.SupervisorOffsetHours) * time.Hour
	s.True(companionProposals[0].StartDatetime.Equal(coreProposals[0].StartDatetime.Add(offset)))
	s.Equal(lead.ID, companionProposals[0].EmployeeID)
	s.Contains(companionProposals[0].Rationale, "supervisor pairing")

	// The core event and its companion cascade, each counted once.
	s.Equal(2, run.Processed)
	s.Equal(2, run.Scheduled)
	s.Equal(0, run.Failed)
}

func (s *EngineServiceTestSuite) TestRunDoesNotDoubleBookEmployee() {
	only := testutils.NewEmployeeFactory().Create()
	s.create(only)

	first := testutils.NewEventFactory().WithDisplayName("Standalone Core Demo")
	second := testutils.NewEventFactory().WithDisplayName("Another Core Demo")
	s.create(first)
	s.create(second)

	run, err := s.service.RunOnce(first.StartWindow, first.StartWindow.AddDate(0, 0, 14))
	s.Require().NoError(err)
	s.Equal(2, run.Scheduled)

	a := s.proposalsFor(first.ID)
	b := s.proposalsFor(second.ID)
	s.Require().Len(a, 1)
	s.Require().Len(b, 1)
	s.Equal(only.ID, a[0].EmployeeID)
	s.Equal(only.ID, b[0].EmployeeID)
	s.False(a[0].StartDatetime.Equal(b[0].StartDatetime))
}

func (s *EngineServiceTestSuite) TestRunRespectsEarlierOpenProposals() {
	only := testutils.NewEmployeeFactory().Create()
	s.create(only)

	first := testutils.NewEventFactory().WithDisplayName("Standalone Core Demo")
	s.create(first)

	window := first.StartWindow
	_, err := s.service.RunOnce(window, window.AddDate(0, 0, 14))
	s.Require().NoError(err)

	second := testutils.NewEventFactory().WithDisplayName("Another Core Demo")
	s.create(second)

	_, err = s.service.RunOnce(window, window.AddDate(0, 0, 14))
	s.Require().NoError(err)

	a := s.proposalsFor(first.ID)
	b := s.proposalsFor(second.ID)
	s.Require().Len(a, 1)
	s.Require().Len(b, 1)
	s.False(a[0].StartDatetime.Equal(b[0].StartDatetime))
}
