package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"staffing-backend/internal/database/models"
	apperrors "staffing-backend/internal/errors"
	"staffing-backend/internal/logger"
	"staffing-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// EditProposalRequest changes the employee and/or start time of an open
// proposal. Version must match the stored record. Override accepts an edit
// that fails hard validation, leaving the proposal flagged for the approver.
type EditProposalRequest struct {
	EmployeeID    *uuid.UUID `json:"employee_id"`
	StartDatetime *time.Time `json:"start_datetime"`
	Version       int        `json:"version" validate:"required,min=1"`
	Override      bool       `json:"override"`
}

// ProposalDecisionRequest carries the version guard for approve and reject
type ProposalDecisionRequest struct {
	Version int `json:"version" validate:"required,min=1"`
}

// ApproveManyRequest approves a batch of proposals in one call
type ApproveManyRequest struct {
	ProposalIDs []uuid.UUID `json:"proposal_ids" validate:"required,min=1"`
}

// ApproveManyResult reports the per-proposal outcome of a batch approval
type ApproveManyResult struct {
	ProposalID uuid.UUID `json:"proposal_id"`
	Approved   bool      `json:"approved"`
	Error      string    `json:"error,omitempty"`
}

// ReviewService owns the proposal lifecycle: listing for review, edits with
// re-validation, approval (which promotes the proposal into a committed
// schedule), rejection, and submission to the external system.
type ReviewService struct {
	db           *gorm.DB
	proposalRepo repository.PendingProposalRepositoryInterface
	scheduleRepo repository.ScheduleRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	eventRepo    repository.EventRepositoryInterface
	constraint   *ConstraintService
	pairing      *PairingService
	sync         ExternalSchedulerInterface
	validator    *validator.Validate
	log          *logger.Logger
}

// NewReviewService creates a new review service
func NewReviewService(
	db *gorm.DB,
	proposalRepo repository.PendingProposalRepositoryInterface,
	scheduleRepo repository.ScheduleRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	eventRepo repository.EventRepositoryInterface,
	constraint *ConstraintService,
	pairing *PairingService,
	sync ExternalSchedulerInterface,
) *ReviewService {
	return &ReviewService{
		db:           db,
		proposalRepo: proposalRepo,
		scheduleRepo: scheduleRepo,
		employeeRepo: employeeRepo,
		eventRepo:    eventRepo,
		constraint:   constraint,
		pairing:      pairing,
		sync:         sync,
		validator:    validator.New(),
		log:          logger.ForComponent("review"),
	}
}

// List returns proposals in a given status, newest first
func (s *ReviewService) List(status models.ProposalStatus, limit, offset int) ([]models.PendingProposal, int64, error) {
	if status != "" && !status.IsValid() {
		return nil, 0, apperrors.NewValidationError("status", fmt.Sprintf("invalid proposal status: %s", status))
	}
	return s.proposalRepo.GetByStatus(status, limit, offset)
}

// Get returns one proposal by ID
func (s *ReviewService) Get(id uuid.UUID) (*models.PendingProposal, error) {
	proposal, err := s.proposalRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProposalNotFound
		}
		return nil, fmt.Errorf("failed to get proposal: %w", err)
	}
	return proposal, nil
}

// Edit changes an open proposal's employee or start time and re-validates the
// result. An edit that fails hard validation is rejected unless Override is
// set, in which case it is saved flagged; a clean edit clears any flag.
func (s *ReviewService) Edit(id uuid.UUID, req *EditProposalRequest) (*models.PendingProposal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}
	if req.EmployeeID == nil && req.StartDatetime == nil {
		return nil, apperrors.NewValidationError("request", "nothing to change")
	}

	proposal, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !proposal.Status.CanTransitionTo(models.ProposalStatusUserEdited) {
		return nil, apperrors.ErrIllegalProposalTransition
	}

	if req.EmployeeID != nil {
		proposal.EmployeeID = *req.EmployeeID
	}
	if req.StartDatetime != nil {
		proposal.StartDatetime = *req.StartDatetime
	}

	employee, err := s.employeeRepo.GetByID(proposal.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	event, err := s.eventRepo.GetByID(proposal.EventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	result, err := s.constraint.Validate(employee, event, proposal.StartDatetime)
	if err != nil {
		return nil, err
	}
	if !result.OK && !req.Override {
		return nil, apperrors.NewValidationError("proposal", strings.Join(result.Reasons(), "; "))
	}
	proposal.Flagged = !result.OK

	proposal.Status = models.ProposalStatusUserEdited
	proposal.Version = req.Version
	if err := s.proposalRepo.UpdateVersioned(proposal); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"proposal_id": proposal.ID,
		"employee_id": proposal.EmployeeID,
		"start":       proposal.StartDatetime,
		"flagged":     proposal.Flagged,
	}).Info("proposal edited")
	return proposal, nil
}

// Approve promotes a proposal into a committed schedule. The promotion and
// the paired-event cascade for core events run in one transaction; the
// external push is deferred to Submit. Flagged proposals must be re-edited to
// a clean state first.
func (s *ReviewService) Approve(id uuid.UUID, req *ProposalDecisionRequest) (*models.PendingProposal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	proposal, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !proposal.Status.CanTransitionTo(models.ProposalStatusApproved) {
		return nil, apperrors.ErrIllegalProposalTransition
	}
	if proposal.Flagged {
		return nil, apperrors.ErrProposalFlagged
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if _, err := s.pairing.PromoteInTx(tx, proposal.EventID, proposal.EmployeeID, proposal.StartDatetime, false); err != nil {
			return err
		}

		proposals := repository.NewPendingProposalRepository(tx)
		proposal.Status = models.ProposalStatusApproved
		proposal.Version = req.Version
		return proposals.UpdateVersioned(proposal)
	})
	if err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"proposal_id": proposal.ID,
		"event_id":    proposal.EventID,
	}).Info("proposal approved")
	return proposal, nil
}

// ApproveMany approves a batch of proposals, each in its own transaction, and
// reports per-proposal outcomes. One failure never aborts the rest.
func (s *ReviewService) ApproveMany(req *ApproveManyRequest) ([]ApproveManyResult, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	results := make([]ApproveManyResult, 0, len(req.ProposalIDs))
	for _, id := range req.ProposalIDs {
		proposal, err := s.Get(id)
		if err != nil {
			results = append(results, ApproveManyResult{ProposalID: id, Error: err.Error()})
			continue
		}
		if _, err := s.Approve(id, &ProposalDecisionRequest{Version: proposal.Version}); err != nil {
			results = append(results, ApproveManyResult{ProposalID: id, Error: err.Error()})
			continue
		}
		results = append(results, ApproveManyResult{ProposalID: id, Approved: true})
	}
	return results, nil
}

// Reject marks a proposal rejected, releasing its event for future engine passes
func (s *ReviewService) Reject(id uuid.UUID, req *ProposalDecisionRequest) (*models.PendingProposal, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("request", err.Error())
	}

	proposal, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !proposal.Status.CanTransitionTo(models.ProposalStatusRejected) {
		return nil, apperrors.ErrIllegalProposalTransition
	}

	proposal.Status = models.ProposalStatusRejected
	proposal.Version = req.Version
	if err := s.proposalRepo.UpdateVersioned(proposal); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"proposal_id": proposal.ID,
		"event_id":    proposal.EventID,
	}).Info("proposal rejected")
	return proposal, nil
}

// Submit pushes an approved proposal's schedule to the external system. On
// failure the proposal moves to submit_failed and the local schedule is kept,
// so a later Submit can retry without re-approval.
func (s *ReviewService) Submit(id uuid.UUID) (*models.PendingProposal, error) {
	proposal, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	if !proposal.Status.CanTransitionTo(models.ProposalStatusSubmitted) {
		return nil, apperrors.ErrIllegalProposalTransition
	}

	schedule, err := s.scheduleRepo.GetActiveByEventID(proposal.EventID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEventNotScheduled
		}
		return nil, fmt.Errorf("failed to get schedule for submission: %w", err)
	}

	externalID, syncErr := s.sync.ScheduleEvent(context.Background(),
		schedule.Employee.EmployeeNumber, schedule.Event.RefNum, schedule.StartDatetime)
	if syncErr != nil {
		proposal.Status = models.ProposalStatusSubmitFailed
		if err := s.proposalRepo.UpdateVersioned(proposal); err != nil {
			return nil, err
		}
		s.log.WithFields(map[string]interface{}{
			"proposal_id": proposal.ID,
			"event_id":    proposal.EventID,
		}).WithError(syncErr).Warn("submission failed, local schedule kept")
		return proposal, apperrors.NewSyncFailureError("submit", schedule.Event.RefNum, syncErr)
	}

	schedule.ExternalID = externalID
	if err := s.scheduleRepo.Update(schedule); err != nil {
		return nil, fmt.Errorf("failed to record external ID: %w", err)
	}

	proposal.Status = models.ProposalStatusSubmitted
	if err := s.proposalRepo.UpdateVersioned(proposal); err != nil {
		return nil, err
	}

	s.log.WithFields(map[string]interface{}{
		"proposal_id": proposal.ID,
		"event_id":    proposal.EventID,
		"external_id": externalID,
	}).Info("proposal submitted")
	return proposal, nil
}
