package service

import (
	"fmt"
	"testing"
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/mocks"
	"staffing-backend/internal/repository"
	"staffing-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReviewServiceTestSuite struct {
	*testutils.BaseTestSuite
	syncMock *mocks.MockExternalSchedulerInterface
	service  *ReviewService
}

func TestReviewServiceTestSuite(t *testing.T) {
	suite.Run(t, &ReviewServiceTestSuite{BaseTestSuite: testutils.SetupTestSuite(t)})
}

func (s *ReviewServiceTestSuite) SetupTest() {
	s.CleanTestDB()

	ctrl := gomock.NewController(s.T())
	s.syncMock = mocks.NewMockExternalSchedulerInterface(ctrl)

	availability := NewAvailabilityService(
		repository.NewEmployeeRepository(s.DB),
		repository.NewAvailabilityOverrideRepository(s.DB),
		repository.NewTimeOffRepository(s.DB),
		repository.NewCompanyHolidayRepository(s.DB),
		s.Config,
	)
	constraint := NewConstraintService(availability, repository.NewScheduleRepository(s.DB), s.Config)
	pairing := NewPairingService(s.DB, s.syncMock, availability, constraint, s.Config)

	s.service = NewReviewService(
		s.DB,
		repository.NewPendingProposalRepository(s.DB),
		repository.NewScheduleRepository(s.DB),
		repository.NewEmployeeRepository(s.DB),
		repository.NewEventRepository(s.DB),
		constraint,
		pairing,
		s.syncMock,
	)
}

func (s *ReviewServiceTestSuite) create(value interface{}) {
	s.Require().NoError(s.DB.Create(value).Error)
}

// seedProposal persists an orphan core event, an employee, and a proposed
// assignment one day into the event window.
func (s *ReviewServiceTestSuite) seedProposal() (*models.Event, *models.Employee, *models.PendingProposal) {
	event := testutils.NewEventFactory().WithDisplayName("Standalone Core Demo")
	employee := testutils.NewEmployeeFactory().Create()
	s.create(event)
	s.create(employee)

	start := event.StartWindow.AddDate(0, 0, 1).Add(10 * time.Hour)
	proposal := testutils.NewProposalFactory().Create(event.ID, employee.ID, start)
	s.create(proposal)
	return event, employee, proposal
}

func (s *ReviewServiceTestSuite) reloadProposal(id uuid.UUID) *models.PendingProposal {
	var proposal models.PendingProposal
	s.Require().NoError(s.DB.First(&proposal, "id = ?", id).Error)
	return &proposal
}

func (s *ReviewServiceTestSuite) TestEditRevalidatesAndBumpsVersion() {
	event, _, proposal := s.seedProposal()

	newStart := event.StartWindow.AddDate(0, 0, 2).Add(11 * time.Hour)
	edited, err := s.service.Edit(proposal.ID, &EditProposalRequest{
		StartDatetime: &newStart,
		Version:       proposal.Version,
	})
	s.Require().NoError(err)

	s.Equal(models.ProposalStatusUserEdited, edited.Status)
	s.False(edited.Flagged)

	stored := s.reloadProposal(proposal.ID)
	s.Equal(models.ProposalStatusUserEdited, stored.Status)
	s.True(stored.StartDatetime.Equal(newStart))
	s.Equal(2, stored.Version)
}

func (s *ReviewServiceTestSuite) TestEditWithNothingToChange() {
	_, _, proposal := s.seedProposal()

	_, err := s.service.Edit(proposal.ID, &EditProposalRequest{Version: proposal.Version})
	s.True(apperrors.IsValidation(err))
}

func (s *ReviewServiceTestSuite) TestEditHardViolationNeedsOverride() {
	event, _, proposal := s.seedProposal()
	badStart := event.DueDate.AddDate(0, 0, 3)

	_, err := s.service.Edit(proposal.ID, &EditProposalRequest{
		StartDatetime: &badStart,
		Version:       proposal.Version,
	})
	s.True(apperrors.IsValidation(err))
	s.Equal(models.ProposalStatusProposed, s.reloadProposal(proposal.ID).Status)

	edited, err := s.service.Edit(proposal.ID, &EditProposalRequest{
		StartDatetime: &badStart,
		Version:       proposal.Version,
		Override:      true,
	})
	s.Require().NoError(err)
	s.True(edited.Flagged)

	// A flagged proposal cannot be approved until a clean re-edit clears it.
	_, err = s.service.Approve(proposal.ID, &ProposalDecisionRequest{Version: edited.Version})
	s.ErrorIs(err, apperrors.ErrProposalFlagged)

	goodStart := event.StartWindow.AddDate(0, 0, 1).Add(10 * time.Hour)
	stored := s.reloadProposal(proposal.ID)
	edited, err = s.service.Edit(proposal.ID, &EditProposalRequest{
		StartDatetime: &goodStart,
		Version:       stored.Version,
	})
	s.Require().NoError(err)
	s.False(edited.Flagged)
}

func (s *ReviewServiceTestSuite) TestEditStaleVersion() {
	event, _, proposal := s.seedProposal()

	newStart := event.StartWindow.AddDate(0, 0, 2).Add(10 * time.Hour)
	_, err := s.service.Edit(proposal.ID, &EditProposalRequest{
		StartDatetime: &newStart,
		Version:       proposal.Version + 5,
	})
	s.True(apperrors.IsConcurrentModification(err))
}

func (s *ReviewServiceTestSuite) TestApprovePromotesWithoutPush() {
	event, employee, proposal := s.seedProposal()

	// No sync expectations: approval must not reach the external system.
	approved, err := s.service.Approve(proposal.ID, &ProposalDecisionRequest{Version: proposal.Version})
	s.Require().NoError(err)
	s.Equal(models.ProposalStatusApproved, approved.Status)

	var schedule models.Schedule
	s.Require().NoError(s.DB.Where("event_id = ?", event.ID).First(&schedule).Error)
	s.Equal(employee.ID, schedule.EmployeeID)
	s.Empty(schedule.ExternalID)

	var reloaded models.Event
	s.Require().NoError(s.DB.First(&reloaded, "id = ?", event.ID).Error)
	s.True(reloaded.IsScheduled)
}

func (s *ReviewServiceTestSuite) TestApproveCascadesToCompanion() {
	core := testutils.NewEventFactory().WithDisplayName("606020-CORE-Paired Demo")
	companion := testutils.NewEventFactory().WithDisplayName("606020-Supervisor-Paired Demo")
	companion.EventType = models.EventTypeSupervisor
	worker := testutils.NewEmployeeFactory().WithNumber("E001")
	lead := testutils.NewEmployeeFactory().WithCapabilities(false, true)
	s.create(core)
	s.create(companion)
	s.create(worker)
	s.create(lead)

	start := core.StartWindow.AddDate(0, 0, 1).Add(10 * time.Hour)
	proposal := testutils.NewProposalFactory().Create(core.ID, worker.ID, start)
	s.create(proposal)

	_, err := s.service.Approve(proposal.ID, &ProposalDecisionRequest{Version: proposal.Version})
	s.Require().NoError(err)

	var companionSchedule models.Schedule
	s.Require().NoError(s.DB.Where("event_id = ?", companion.ID).First(&companionSchedule).Error)
	s.Equal(lead.ID, companionSchedule.EmployeeID)
	s.True(companionSchedule.StartDatetime.Equal(start.Add(2 * time.Hour)))
}

func (s *ReviewServiceTestSuite) TestApproveRejectsOverlappingAssignment() {
	event, employee, proposal := s.seedProposal()

	// The employee picked up a committed assignment at the same time after
	// the proposal was generated.
	other := testutils.NewEventFactory().WithDisplayName("Competing Core Demo")
	s.create(other)
	s.create(testutils.NewScheduleFactory().Create(other.ID, employee.ID, proposal.StartDatetime))

	_, err := s.service.Approve(proposal.ID, &ProposalDecisionRequest{Version: proposal.Version})
	s.True(apperrors.IsValidation(err))

	var count int64
	s.DB.Model(&models.Schedule{}).Where("event_id = ?", event.ID).Count(&count)
	s.Equal(int64(0), count)

	var reloaded models.Event
	s.Require().NoError(s.DB.First(&reloaded, "id = ?", event.ID).Error)
	s.False(reloaded.IsScheduled)
	s.Equal(models.ProposalStatusProposed, s.reloadProposal(proposal.ID).Status)
}

func (s *ReviewServiceTestSuite) TestApprovePrefersOpenCompanionProposal() {
	core := testutils.NewEventFactory().WithDisplayName("606030-CORE-Paired Demo")
	companion := testutils.NewEventFactory().WithDisplayName("606030-Supervisor-Paired Demo")
	companion.EventType = models.EventTypeSupervisor
	worker := testutils.NewEmployeeFactory().WithNumber("E001")
	// The blind pick would take the lead with the lowest employee number;
	// the companion proposal names the other one.
	firstLead := testutils.NewEmployeeFactory().WithNumber("E002")
	firstLead.CanPrimaryLead = true
	chosenLead := testutils.NewEmployeeFactory().WithNumber("E003")
	chosenLead.CanPrimaryLead = true
	s.create(core)
	s.create(companion)
	s.create(worker)
	s.create(firstLead)
	s.create(chosenLead)

	start := core.StartWindow.AddDate(0, 0, 1).Add(10 * time.Hour)
	coreProposal := testutils.NewProposalFactory().Create(core.ID, worker.ID, start)
	s.create(coreProposal)

	companionStart := start.Add(2 * time.Hour)
	companionProposal := testutils.NewProposalFactory().Create(companion.ID, chosenLead.ID, companionStart)
	s.create(companionProposal)

	_, err := s.service.Approve(coreProposal.ID, &ProposalDecisionRequest{Version: coreProposal.Version})
	s.Require().NoError(err)

	var companionSchedule models.Schedule
	s.Require().NoError(s.DB.Where("event_id = ?", companion.ID).First(&companionSchedule).Error)
	s.Equal(chosenLead.ID, companionSchedule.EmployeeID)
	s.True(companionSchedule.StartDatetime.Equal(companionStart))

	s.Equal(models.ProposalStatusApproved, s.reloadProposal(companionProposal.ID).Status)
}

func (s *ReviewServiceTestSuite) TestApproveManyContinuesPastFailures() {
	_, _, good := s.seedProposal()

	event := testutils.NewEventFactory().WithDisplayName("Another Core Demo")
	employee := testutils.NewEmployeeFactory().Create()
	s.create(event)
	s.create(employee)
	rejected := testutils.NewProposalFactory().WithStatus(event.ID, employee.ID,
		event.StartWindow.Add(10*time.Hour), models.ProposalStatusRejected)
	s.create(rejected)

	results, err := s.service.ApproveMany(&ApproveManyRequest{
		ProposalIDs: []uuid.UUID{rejected.ID, good.ID},
	})
	s.Require().NoError(err)
	s.Require().Len(results, 2)

	s.False(results[0].Approved)
	s.NotEmpty(results[0].Error)
	s.True(results[1].Approved)

	s.Equal(models.ProposalStatusApproved, s.reloadProposal(good.ID).Status)
}

func (s *ReviewServiceTestSuite) TestRejectReleasesEvent() {
	event, _, proposal := s.seedProposal()

	rejectedProposal, err := s.service.Reject(proposal.ID, &ProposalDecisionRequest{Version: proposal.Version})
	s.Require().NoError(err)
	s.Equal(models.ProposalStatusRejected, rejectedProposal.Status)

	// The event stays unstaffed and free for the next engine pass.
	var reloaded models.Event
	s.Require().NoError(s.DB.First(&reloaded, "id = ?", event.ID).Error)
	s.False(reloaded.IsScheduled)
	s.Equal(models.EventStatusUnstaffed, reloaded.Status)
}

func (s *ReviewServiceTestSuite) TestSubmitPushesApprovedSchedule() {
	event, employee, proposal := s.seedProposal()

	_, err := s.service.Approve(proposal.ID, &ProposalDecisionRequest{Version: proposal.Version})
	s.Require().NoError(err)

	s.syncMock.EXPECT().
		ScheduleEvent(gomock.Any(), employee.EmployeeNumber, event.RefNum, gomock.Any()).
		Return("EXT-42", nil)

	submitted, err := s.service.Submit(proposal.ID)
	s.Require().NoError(err)
	s.Equal(models.ProposalStatusSubmitted, submitted.Status)

	var schedule models.Schedule
	s.Require().NoError(s.DB.Where("event_id = ?", event.ID).First(&schedule).Error)
	s.Equal("EXT-42", schedule.ExternalID)
}

func (s *ReviewServiceTestSuite) TestSubmitFailureKeepsLocalSchedule() {
	event, employee, proposal := s.seedProposal()

	_, err := s.service.Approve(proposal.ID, &ProposalDecisionRequest{Version: proposal.Version})
	s.Require().NoError(err)

	s.syncMock.EXPECT().
		ScheduleEvent(gomock.Any(), employee.EmployeeNumber, event.RefNum, gomock.Any()).
		Return("", fmt.Errorf("gateway timeout"))

	_, err = s.service.Submit(proposal.ID)
	s.True(apperrors.IsSyncFailure(err))
	s.Equal(models.ProposalStatusSubmitFailed, s.reloadProposal(proposal.ID).Status)

	// The local schedule is kept so a later submission can retry.
	var schedule models.Schedule
	s.Require().NoError(s.DB.Where("event_id = ?", event.ID).First(&schedule).Error)
	s.Empty(schedule.ExternalID)

	s.syncMock.EXPECT().
		ScheduleEvent(gomock.Any(), employee.EmployeeNumber, event.RefNum, gomock.Any()).
		Return("EXT-RETRY", nil)

	submitted, err := s.service.Submit(proposal.ID)
	s.Require().NoError(err)
	s.Equal(models.ProposalStatusSubmitted, submitted.Status)
}

func (s *ReviewServiceTestSuite) TestSubmitWithoutScheduleFails() {
	_, _, proposal := s.seedProposal()

	// Force the proposal into an approved state with no backing schedule.
	s.Require().NoError(s.DB.Model(proposal).Update("status", models.ProposalStatusApproved).Error)

	_, err := s.service.Submit(proposal.ID)
	s.ErrorIs(err, apperrors.ErrEventNotScheduled)
}
